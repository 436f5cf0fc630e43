package neterr

// Code is a platform error code. Its meaning depends on the Domain it is
// interpreted in.
type Code int

// Domain selects the table a Code is looked up in.
type Domain int

const (
	// DomainAddressResolution covers getaddrinfo failures.
	DomainAddressResolution Domain = iota + 1

	// DomainSocket covers socket creation, connection and I/O failures,
	// including the resolver h_errno codes.
	DomainSocket
)

// String returns the string representation of the Domain.
func (d Domain) String() string {
	switch d {
	case DomainAddressResolution:
		return "address-resolution"
	case DomainSocket:
		return "socket"
	default:
		return "unknown"
	}
}
