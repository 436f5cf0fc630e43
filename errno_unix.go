//go:build unix

package neterr

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// FromErrno maps a native errno to its Winsock counterpart in the socket
// domain. It reports false for errnos with no socket-layer equivalent.
func FromErrno(errno syscall.Errno) (Code, bool) {
	switch errno {
	case unix.EINTR:
		return WSAEINTR, true
	case unix.EBADF:
		return WSAEBADF, true
	case unix.EACCES:
		return WSAEACCES, true
	case unix.EFAULT:
		return WSAEFAULT, true
	case unix.EINVAL:
		return WSAEINVAL, true
	case unix.EMFILE:
		return WSAEMFILE, true
	case unix.EWOULDBLOCK:
		return WSAEWOULDBLOCK, true
	case unix.EINPROGRESS:
		return WSAEINPROGRESS, true
	case unix.EALREADY:
		return WSAEALREADY, true
	case unix.ENOTSOCK:
		return WSAENOTSOCK, true
	case unix.EDESTADDRREQ:
		return WSAEDESTADDRREQ, true
	case unix.EMSGSIZE:
		return WSAEMSGSIZE, true
	case unix.EPROTOTYPE:
		return WSAEPROTOTYPE, true
	case unix.ENOPROTOOPT:
		return WSAENOPROTOOPT, true
	case unix.EPROTONOSUPPORT:
		return WSAEPROTONOSUPPORT, true
	case unix.ESOCKTNOSUPPORT:
		return WSAESOCKTNOSUPPORT, true
	case unix.EOPNOTSUPP:
		return WSAEOPNOTSUPP, true
	case unix.EPFNOSUPPORT:
		return WSAEPFNOSUPPORT, true
	case unix.EAFNOSUPPORT:
		return WSAEAFNOSUPPORT, true
	case unix.EADDRINUSE:
		return WSAEADDRINUSE, true
	case unix.EADDRNOTAVAIL:
		return WSAEADDRNOTAVAIL, true
	case unix.ENETDOWN:
		return WSAENETDOWN, true
	case unix.ENETUNREACH:
		return WSAENETUNREACH, true
	case unix.ENETRESET:
		return WSAENETRESET, true
	case unix.ECONNABORTED:
		return WSAECONNABORTED, true
	case unix.ECONNRESET:
		return WSAECONNRESET, true
	case unix.ENOBUFS:
		return WSAENOBUFS, true
	case unix.EISCONN:
		return WSAEISCONN, true
	case unix.ENOTCONN:
		return WSAENOTCONN, true
	case unix.ESHUTDOWN:
		return WSAESHUTDOWN, true
	case unix.ETOOMANYREFS:
		return WSAETOOMANYREFS, true
	case unix.ETIMEDOUT:
		return WSAETIMEDOUT, true
	case unix.ECONNREFUSED:
		return WSAECONNREFUSED, true
	case unix.ELOOP:
		return WSAELOOP, true
	case unix.ENAMETOOLONG:
		return WSAENAMETOOLONG, true
	case unix.EHOSTDOWN:
		return WSAEHOSTDOWN, true
	case unix.EHOSTUNREACH:
		return WSAEHOSTUNREACH, true
	default:
		return 0, false
	}
}

// toErrno is the inverse of FromErrno.
func toErrno(code Code) (syscall.Errno, bool) {
	switch code {
	case WSAEINTR:
		return unix.EINTR, true
	case WSAEBADF:
		return unix.EBADF, true
	case WSAEACCES:
		return unix.EACCES, true
	case WSAEFAULT:
		return unix.EFAULT, true
	case WSAEINVAL:
		return unix.EINVAL, true
	case WSAEMFILE:
		return unix.EMFILE, true
	case WSAEWOULDBLOCK:
		return unix.EWOULDBLOCK, true
	case WSAEINPROGRESS:
		return unix.EINPROGRESS, true
	case WSAEALREADY:
		return unix.EALREADY, true
	case WSAENOTSOCK:
		return unix.ENOTSOCK, true
	case WSAEDESTADDRREQ:
		return unix.EDESTADDRREQ, true
	case WSAEMSGSIZE:
		return unix.EMSGSIZE, true
	case WSAEPROTOTYPE:
		return unix.EPROTOTYPE, true
	case WSAENOPROTOOPT:
		return unix.ENOPROTOOPT, true
	case WSAEPROTONOSUPPORT:
		return unix.EPROTONOSUPPORT, true
	case WSAESOCKTNOSUPPORT:
		return unix.ESOCKTNOSUPPORT, true
	case WSAEOPNOTSUPP:
		return unix.EOPNOTSUPP, true
	case WSAEPFNOSUPPORT:
		return unix.EPFNOSUPPORT, true
	case WSAEAFNOSUPPORT:
		return unix.EAFNOSUPPORT, true
	case WSAEADDRINUSE:
		return unix.EADDRINUSE, true
	case WSAEADDRNOTAVAIL:
		return unix.EADDRNOTAVAIL, true
	case WSAENETDOWN:
		return unix.ENETDOWN, true
	case WSAENETUNREACH:
		return unix.ENETUNREACH, true
	case WSAENETRESET:
		return unix.ENETRESET, true
	case WSAECONNABORTED:
		return unix.ECONNABORTED, true
	case WSAECONNRESET:
		return unix.ECONNRESET, true
	case WSAENOBUFS:
		return unix.ENOBUFS, true
	case WSAEISCONN:
		return unix.EISCONN, true
	case WSAENOTCONN:
		return unix.ENOTCONN, true
	case WSAESHUTDOWN:
		return unix.ESHUTDOWN, true
	case WSAETOOMANYREFS:
		return unix.ETOOMANYREFS, true
	case WSAETIMEDOUT:
		return unix.ETIMEDOUT, true
	case WSAECONNREFUSED:
		return unix.ECONNREFUSED, true
	case WSAELOOP:
		return unix.ELOOP, true
	case WSAENAMETOOLONG:
		return unix.ENAMETOOLONG, true
	case WSAEHOSTDOWN:
		return unix.EHOSTDOWN, true
	case WSAEHOSTUNREACH:
		return unix.EHOSTUNREACH, true
	default:
		return 0, false
	}
}

// platformMessage reports false: socket codes use the Winsock numbering and
// the native strerror would misread them. Native errnos reach the tables
// through FromErrno instead.
func platformMessage(Code) (string, bool) {
	return "", false
}
