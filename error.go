package neterr

import (
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/input-output-hk/catalyst-forge-libs/neterr/errors"
)

// Error reports a failed operation together with the code it failed with.
type Error struct {
	Op     string // Operation that failed, e.g. "connect"; may be empty
	Domain Domain // Domain Code belongs to
	Code   Code   // Platform error code
}

// New creates an Error for op.
func New(op string, domain Domain, code Code) *Error {
	return &Error{Op: op, Domain: domain, Code: code}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op == "" {
		return e.message()
	}
	return e.Op + ": " + e.message()
}

// Unwrap returns the native errno equivalent to a socket code, so errors.Is
// matches the platform's own errno values. It returns nil for other domains
// and for codes with no native equivalent.
func (e *Error) Unwrap() error {
	if e.Domain != DomainSocket {
		return nil
	}
	return codeErrno(e.Code)
}

// Known reports whether the code is recognized in its domain.
func (e *Error) Known() bool {
	_, ok := Message(e.Domain, e.Code)
	return ok
}

// Kind classifies the failure. Unrecognized codes are errors.CodeUnknown.
func (e *Error) Kind() errors.ErrorCode {
	return Kind(e.Domain, e.Code)
}

// Retryable reports whether the failure class is usually transient.
func (e *Error) Retryable() bool {
	return e.Kind().Retryable()
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 4)
	if e.Op != "" {
		attrs = append(attrs, slog.String("op", e.Op))
	}
	attrs = append(attrs,
		slog.String("domain", e.Domain.String()),
		slog.Int("code", int(e.Code)),
		slog.String("message", e.message()),
	)
	return slog.GroupValue(attrs...)
}

func (e *Error) message() string {
	switch e.Domain {
	case DomainAddressResolution:
		return AddressResolutionMessage(e.Code)
	case DomainSocket:
		if msg, ok := SocketMessage(e.Code); ok {
			return msg
		}
		return fmt.Sprintf("unknown socket error %d", int(e.Code))
	default:
		return fmt.Sprintf("unknown %s error %d", e.Domain, int(e.Code))
	}
}

// Kind classifies code in domain d. Unrecognized codes are errors.CodeUnknown.
func Kind(d Domain, code Code) errors.ErrorCode {
	if e, ok := lookup(tableFor(d), code); ok {
		return e.kind
	}
	return errors.CodeUnknown
}

// Wrap annotates err with a coded platform error when its chain holds a
// socket errno this package recognizes. The message is rendered from the
// socket table and the result still matches err with errors.Is. Other errors
// are returned unchanged; a nil err returns nil.
func Wrap(err error, op string) error {
	if err == nil {
		return nil
	}
	code, ok := errnoCode(err)
	if !ok {
		return err
	}
	netErr := New(op, DomainSocket, code)
	return errors.WrapWithContext(
		err,
		netErr.Kind(),
		netErr.Error(),
		map[string]interface{}{
			"domain": netErr.Domain.String(),
			"code":   int(code),
		},
	)
}

// Classify returns the failure class of err. A coded platform error in the
// chain wins, then an *Error, then a recognized socket errno.
func Classify(err error) errors.ErrorCode {
	if err == nil {
		return errors.CodeUnknown
	}
	if code := errors.CodeOf(err); code != errors.CodeUnknown {
		return code
	}
	var netErr *Error
	if stderrors.As(err, &netErr) {
		return netErr.Kind()
	}
	if code, ok := errnoCode(err); ok {
		return Kind(DomainSocket, code)
	}
	return errors.CodeUnknown
}
