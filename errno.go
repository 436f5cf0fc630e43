//go:build !plan9

package neterr

import (
	stderrors "errors"
	"syscall"
)

// errnoCode finds a syscall.Errno in err's chain and maps it into the
// socket domain.
func errnoCode(err error) (Code, bool) {
	var errno syscall.Errno
	if !stderrors.As(err, &errno) {
		return 0, false
	}
	return FromErrno(errno)
}

// codeErrno returns the native errno for a socket code, or nil.
func codeErrno(code Code) error {
	errno, ok := toErrno(code)
	if !ok {
		return nil
	}
	return errno
}
