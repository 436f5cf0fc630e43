// Package neterr translates numeric address-resolution and socket error codes
// into fixed, human-readable messages.
//
// The platform routines that do this (gai_strerror and friends) are either not
// thread-safe or missing on some systems. This package replaces them with pure
// lookups over immutable tables, so any number of goroutines may call it
// concurrently.
//
// # Code Domains
//
// Codes belong to one of two closed domains:
//
//   - DomainAddressResolution: getaddrinfo failures (EAI_AGAIN, EAI_NONAME, ...)
//   - DomainSocket: socket-layer failures (WSAECONNREFUSED, WSAETIMEDOUT, ...)
//     including the resolver codes HOST_NOT_FOUND, TRY_AGAIN, NO_RECOVERY and NO_DATA
//
// Both domains use the Winsock numbering. The constants are plain Go values, so
// lookups behave identically on every platform. Native errnos on Linux and
// Darwin can be brought into the socket domain with FromErrno.
//
// # Lookups
//
// The two lookups differ on purpose in how they treat unknown codes:
//
//	msg := neterr.AddressResolutionMessage(neterr.EAI_NONAME)
//	// "Neither nodename nor servname provided, or not known."
//
//	msg = neterr.AddressResolutionMessage(999999)
//	// "Unknown error."
//
//	msg, ok := neterr.SocketMessage(neterr.WSAECONNREFUSED)
//	// "Connection refused", true
//
//	_, ok = neterr.SocketMessage(999999)
//	// "", false: the caller picks its own fallback
//
// # Fallback Chain
//
// Describer implements the usual caller-side chain for socket codes: the
// table first, then an optional custom renderer, then the platform's own
// message, then a generic text:
//
//	d := neterr.NewDescriber(neterr.WithLogger(slog.Default()))
//	fmt.Println(d.Socket(10061))          // Connection refused
//	fmt.Println(d.Describe(someDialErr))  // renders any errno in the chain
//
// # Error Values
//
// Error wraps a (domain, code) pair with the operation that failed. It
// implements error, unwraps to the native errno for socket codes, and carries an
// errors.ErrorCode classification for callers that branch on failure class.
package neterr
