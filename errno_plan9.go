package neterr

// Plan 9 reports errors as strings, so no error chain carries a code.

func errnoCode(error) (Code, bool) {
	return 0, false
}

func codeErrno(Code) error {
	return nil
}

func platformMessage(Code) (string, bool) {
	return "", false
}
