//go:build windows

package neterr

import (
	"strings"
	"syscall"

	"golang.org/x/sys/windows"
)

// FromErrno maps a Winsock errno into the socket domain. Win32 errors that
// the runtime reports in place of their Winsock equivalents are translated.
// It reports false for errnos with no socket-layer equivalent.
func FromErrno(errno syscall.Errno) (Code, bool) {
	switch errno {
	case windows.ERROR_CONNECTION_REFUSED:
		return WSAECONNREFUSED, true
	case windows.ERROR_NETNAME_DELETED:
		return WSAECONNRESET, true
	}
	code := Code(errno)
	if _, ok := SocketMessage(code); !ok {
		return 0, false
	}
	return code, true
}

// toErrno returns the Winsock errno for a socket code. Winsock codes are
// native here, so only membership in the socket table is checked.
func toErrno(code Code) (syscall.Errno, bool) {
	if _, ok := SocketMessage(code); !ok {
		return 0, false
	}
	return syscall.Errno(code), true
}

// platformMessage renders code with FormatMessage.
func platformMessage(code Code) (string, bool) {
	if code <= 0 {
		return "", false
	}
	msg := syscall.Errno(code).Error()
	if strings.HasPrefix(msg, "winapi error #") {
		return "", false
	}
	return msg, true
}
