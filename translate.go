package neterr

// UnknownAddressResolutionMessage is returned by AddressResolutionMessage for
// codes outside the address-resolution table.
const UnknownAddressResolutionMessage = "Unknown error."

// AddressResolutionMessage returns the message for a getaddrinfo error code.
// It never fails: unrecognized codes yield UnknownAddressResolutionMessage.
func AddressResolutionMessage(code Code) string {
	if e, ok := lookup(addressResolutionTable[:], code); ok {
		return e.message
	}
	return UnknownAddressResolutionMessage
}

// SocketMessage returns the message for a socket error code.
// The boolean is false when the code is not recognized; callers are expected
// to fall back to another renderer in that case.
func SocketMessage(code Code) (string, bool) {
	e, ok := lookup(socketTable[:], code)
	return e.message, ok
}

// Message looks code up in the table for d. Unlike AddressResolutionMessage,
// it reports false for unrecognized codes in every domain, including unknown
// domains.
func Message(d Domain, code Code) (string, bool) {
	e, ok := lookup(tableFor(d), code)
	return e.message, ok
}

// Known returns the recognized codes of d in ascending order.
// The returned slice belongs to the caller.
func Known(d Domain) []Code {
	table := tableFor(d)
	codes := make([]Code, len(table))
	for i, e := range table {
		codes[i] = e.code
	}
	return codes
}
