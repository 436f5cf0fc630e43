//go:build !unix && !windows && !plan9

package neterr

import "syscall"

// FromErrno has no errno mapping on this platform and always reports false.
func FromErrno(syscall.Errno) (Code, bool) {
	return 0, false
}

func toErrno(Code) (syscall.Errno, bool) {
	return 0, false
}

func platformMessage(Code) (string, bool) {
	return "", false
}
