package neterr

import (
	"sort"

	"github.com/input-output-hk/catalyst-forge-libs/neterr/errors"
)

// entry binds a code to its message and failure class.
type entry struct {
	code    Code
	message string
	kind    errors.ErrorCode
}

// Tables are sorted by code and never written after initialization.

var addressResolutionTable = [...]entry{
	{EAI_MEMORY, "Memory allocation failure.", errors.CodeResourceExhausted},
	{EAI_BADFLAGS, "Invalid value for ai_flags.", errors.CodeInvalidInput},
	{EAI_SOCKTYPE, "The ai_socktype member is not supported.", errors.CodeInvalidInput},
	{EAI_FAMILY, "The ai_family member is not supported.", errors.CodeInvalidInput},
	{EAI_SERVICE, "The servname parameter is not supported for ai_socktype.", errors.CodeInvalidInput},
	{EAI_NONAME, "Neither nodename nor servname provided, or not known.", errors.CodeNameResolution},
	{EAI_AGAIN, "Temporary failure in name resolution.", errors.CodeTemporary},
	{EAI_FAIL, "Nonrecoverable failure in name resolution.", errors.CodeNameResolution},
	{EAI_NODATA, "No address associated with nodename.", errors.CodeNameResolution},
}

var socketTable = [...]entry{
	{WSAEINTR, "Interrupted system call", errors.CodeTemporary},
	{WSAEBADF, "Bad file number", errors.CodeInvalidInput},
	{WSAEACCES, "Permission denied", errors.CodePermissionDenied},
	{WSAEFAULT, "Bad address", errors.CodeInvalidInput},
	{WSAEINVAL, "Invalid argument", errors.CodeInvalidInput},
	{WSAEMFILE, "Too many open files", errors.CodeResourceExhausted},
	{WSAEWOULDBLOCK, "Operation would block", errors.CodeTemporary},
	{WSAEINPROGRESS, "Operation now in progress", errors.CodeTemporary},
	{WSAEALREADY, "Operation already in progress", errors.CodeTemporary},
	{WSAENOTSOCK, "Socket operation on nonsocket", errors.CodeInvalidInput},
	{WSAEDESTADDRREQ, "Destination address required", errors.CodeInvalidInput},
	{WSAEMSGSIZE, "Message too long", errors.CodeInvalidInput},
	{WSAEPROTOTYPE, "Protocol wrong type for socket", errors.CodeInvalidInput},
	{WSAENOPROTOOPT, "Protocol not available", errors.CodeInvalidInput},
	{WSAEPROTONOSUPPORT, "Protocol not supported", errors.CodeInvalidInput},
	{WSAESOCKTNOSUPPORT, "Socket type not supported", errors.CodeInvalidInput},
	{WSAEOPNOTSUPP, "Operation not supported on socket", errors.CodeInvalidInput},
	{WSAEPFNOSUPPORT, "Protocol family not supported", errors.CodeInvalidInput},
	{WSAEAFNOSUPPORT, "Address family not supported by protocol family", errors.CodeInvalidInput},
	{WSAEADDRINUSE, "Address already in use", errors.CodeAddressUnavailable},
	{WSAEADDRNOTAVAIL, "Cannot assign requested address", errors.CodeAddressUnavailable},
	{WSAENETDOWN, "Network is down", errors.CodeUnreachable},
	{WSAENETUNREACH, "Network is unreachable", errors.CodeUnreachable},
	{WSAENETRESET, "Network dropped connection on reset", errors.CodeConnectionReset},
	{WSAECONNABORTED, "Software caused connection abort", errors.CodeConnectionReset},
	{WSAECONNRESET, "Connection reset by peer", errors.CodeConnectionReset},
	{WSAENOBUFS, "No buffer space available", errors.CodeResourceExhausted},
	{WSAEISCONN, "Socket is already connected", errors.CodeInvalidInput},
	{WSAENOTCONN, "Socket is not connected", errors.CodeInvalidInput},
	{WSAESHUTDOWN, "Cannot send after socket shutdown", errors.CodeConnectionReset},
	{WSAETOOMANYREFS, "Too many references: cannot splice", errors.CodeResourceExhausted},
	{WSAETIMEDOUT, "Connection timed out", errors.CodeTimeout},
	{WSAECONNREFUSED, "Connection refused", errors.CodeConnectionRefused},
	{WSAELOOP, "Too many levels of symbolic links", errors.CodeInvalidInput},
	{WSAENAMETOOLONG, "File name too long", errors.CodeInvalidInput},
	{WSAEHOSTDOWN, "Host is down", errors.CodeUnreachable},
	{WSAEHOSTUNREACH, "No route to host", errors.CodeUnreachable},
	{WSASYSNOTREADY, "Returned by WSAStartup(), indicating that " +
		"the network subsystem is unusable", errors.CodeNotInitialized},
	{WSAVERNOTSUPPORTED, "Returned by WSAStartup(), indicating that " +
		"the Windows Sockets DLL cannot support " +
		"this application", errors.CodeNotInitialized},
	{WSANOTINITIALISED, "Winsock not initialized", errors.CodeNotInitialized},
	{WSAEDISCON, "Disconnected", errors.CodeConnectionReset},
	{HOST_NOT_FOUND, "Host not found", errors.CodeNameResolution},
	{TRY_AGAIN, "Nonauthoritative host not found", errors.CodeTemporary},
	{NO_RECOVERY, "Nonrecoverable error", errors.CodeNameResolution},
	{NO_DATA, "Valid name, no data record of requested type", errors.CodeNameResolution},
}

// lookup binary-searches a sorted table.
func lookup(table []entry, code Code) (entry, bool) {
	i := sort.Search(len(table), func(i int) bool { return table[i].code >= code })
	if i < len(table) && table[i].code == code {
		return table[i], true
	}
	return entry{}, false
}

// tableFor returns the table backing d, or nil for an unknown domain.
func tableFor(d Domain) []entry {
	switch d {
	case DomainAddressResolution:
		return addressResolutionTable[:]
	case DomainSocket:
		return socketTable[:]
	default:
		return nil
	}
}
