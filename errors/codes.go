// Package errors provides the coded error taxonomy used by neterr.
// It extends Go's standard error handling with structured error codes, retry classification,
// and context preservation for network failures.
package errors

// ErrorCode represents a class of network failure.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Connection errors.

	// CodeConnectionRefused indicates the remote peer actively refused the connection.
	CodeConnectionRefused ErrorCode = "CONNECTION_REFUSED"

	// CodeConnectionReset indicates an established connection was dropped or aborted.
	CodeConnectionReset ErrorCode = "CONNECTION_RESET"

	// CodeUnreachable indicates the network or host cannot be reached.
	CodeUnreachable ErrorCode = "UNREACHABLE"

	// CodeAddressUnavailable indicates a local address is in use or cannot be assigned.
	CodeAddressUnavailable ErrorCode = "ADDRESS_UNAVAILABLE"

	// CodeTimeout indicates an operation exceeded its time limit.
	CodeTimeout ErrorCode = "TIMEOUT"

	// Resolution errors.

	// CodeNameResolution indicates a host or service name could not be resolved.
	CodeNameResolution ErrorCode = "NAME_RESOLUTION_FAILED"

	// Transient errors.

	// CodeTemporary indicates a condition expected to clear on its own.
	CodeTemporary ErrorCode = "TEMPORARY_FAILURE"

	// CodeResourceExhausted indicates the local stack ran out of descriptors, buffers or memory.
	CodeResourceExhausted ErrorCode = "RESOURCE_EXHAUSTED"

	// Caller errors.

	// CodeInvalidInput indicates the operation was called with invalid arguments or socket state.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodePermissionDenied indicates the operation was not permitted.
	CodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// System errors.

	// CodeNotInitialized indicates the socket subsystem is missing, unusable or not started.
	CodeNotInitialized ErrorCode = "NOT_INITIALIZED"

	// CodeNetwork indicates a recognized network failure outside the classes above.
	CodeNetwork ErrorCode = "NETWORK_ERROR"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// String returns the string representation of the ErrorCode.
func (c ErrorCode) String() string {
	return string(c)
}

// Retryable reports whether failures of this class are usually transient.
func (c ErrorCode) Retryable() bool {
	switch c {
	case CodeTimeout, CodeTemporary, CodeConnectionReset, CodeUnreachable:
		return true
	default:
		return false
	}
}
