package errors

import (
	"errors"
	"fmt"
	"maps"
)

// PlatformError is an error carrying an ErrorCode and optional structured context.
// All PlatformErrors can be inspected with errors.Is() and errors.As().
type PlatformError interface {
	error

	// Code returns the classification of the failure.
	Code() ErrorCode

	// Message returns the human-readable message without the wrapped cause.
	Message() string

	// Context returns a copy of the structured context attached to the error.
	Context() map[string]interface{}

	// Unwrap returns the underlying cause, if any.
	Unwrap() error
}

type platformError struct {
	code    ErrorCode
	message string
	context map[string]interface{}
	cause   error
}

// Error implements the error interface.
func (e *platformError) Error() string {
	if e.cause == nil {
		return e.message
	}
	if e.message == "" {
		return e.cause.Error()
	}
	return fmt.Sprintf("%s: %v", e.message, e.cause)
}

func (e *platformError) Code() ErrorCode { return e.code }

func (e *platformError) Message() string { return e.message }

func (e *platformError) Context() map[string]interface{} {
	if e.context == nil {
		return nil
	}
	return maps.Clone(e.context)
}

func (e *platformError) Unwrap() error { return e.cause }

// New creates a PlatformError with the given code and message.
func New(code ErrorCode, message string) PlatformError {
	return &platformError{code: code, message: message}
}

// Wrap wraps err with a code and message while preserving the ability to
// check the cause with errors.Is(). Wrapping a nil error returns nil.
func Wrap(err error, code ErrorCode, message string) PlatformError {
	return WrapWithContext(err, code, message, nil)
}

// WrapWithContext is Wrap with structured context attached.
// The context map is copied; later changes by the caller are not observed.
func WrapWithContext(err error, code ErrorCode, message string, context map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}
	var ctx map[string]interface{}
	if len(context) > 0 {
		ctx = maps.Clone(context)
	}
	return &platformError{
		code:    code,
		message: message,
		context: ctx,
		cause:   err,
	}
}

// CodeOf returns the code of the outermost PlatformError in err's chain,
// or CodeUnknown when there is none.
func CodeOf(err error) ErrorCode {
	var pe PlatformError
	if errors.As(err, &pe) {
		return pe.Code()
	}
	return CodeUnknown
}

// IsRetryable reports whether err carries a code that is usually transient.
func IsRetryable(err error) bool {
	return CodeOf(err).Retryable()
}

// Is reports whether any error in err's chain matches target. It is errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target. It is errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
