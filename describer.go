package neterr

import (
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/input-output-hk/catalyst-forge-libs/neterr/errors"
)

// Describer renders codes and errors through a chain of renderers:
// the tables, an optional fallback, the platform message and finally a
// generic text. Its configuration is fixed at construction, so a Describer
// is safe for concurrent use.
type Describer struct {
	logger         *slog.Logger
	fallback       FallbackFunc
	unknownMessage string
	platform       bool
}

// NewDescriber creates a Describer with the given options.
//
// Example:
//
//	d := neterr.NewDescriber(
//	    neterr.WithLogger(slog.Default()),
//	    neterr.WithUnknownMessage("unrecognized network failure"),
//	)
func NewDescriber(opts ...Option) *Describer {
	options := defaultOptions()
	applyOptions(options, opts)

	return &Describer{
		logger:         options.logger,
		fallback:       options.fallback,
		unknownMessage: options.unknownMessage,
		platform:       options.platform,
	}
}

// Socket renders a socket code. It never returns an empty string.
func (d *Describer) Socket(code Code) string {
	if msg, ok := SocketMessage(code); ok {
		return msg
	}
	if d.fallback != nil {
		if msg, ok := d.fallback(code); ok && msg != "" {
			return msg
		}
	}
	if d.platform {
		if msg, ok := platformMessage(code); ok {
			return msg
		}
	}
	d.logUnknown(DomainSocket, code)
	return d.unknownMessage
}

// AddressResolution renders a getaddrinfo code. Unknown codes get the
// table's own generic message, as with AddressResolutionMessage.
func (d *Describer) AddressResolution(code Code) string {
	if msg, ok := Message(DomainAddressResolution, code); ok {
		return msg
	}
	d.logUnknown(DomainAddressResolution, code)
	return UnknownAddressResolutionMessage
}

// Describe renders err for diagnostics. An *Error or a recognized
// syscall.Errno anywhere in the chain is rendered from the tables; any other
// error renders as err.Error(). A nil error renders as "".
func (d *Describer) Describe(err error) string {
	if err == nil {
		return ""
	}

	var netErr *Error
	if stderrors.As(err, &netErr) {
		return d.describeError(netErr)
	}

	var pe errors.PlatformError
	if stderrors.As(err, &pe) && pe.Message() != "" {
		return pe.Message()
	}

	if code, ok := errnoCode(err); ok {
		return d.Socket(code)
	}

	return err.Error()
}

func (d *Describer) describeError(e *Error) string {
	var msg string
	switch e.Domain {
	case DomainAddressResolution:
		msg = d.AddressResolution(e.Code)
	case DomainSocket:
		msg = d.Socket(e.Code)
	default:
		d.logUnknown(e.Domain, e.Code)
		msg = d.unknownMessage
	}
	if e.Op == "" {
		return msg
	}
	return e.Op + ": " + msg
}

func (d *Describer) logUnknown(domain Domain, code Code) {
	if d.logger == nil {
		return
	}
	d.logger.LogAttrs(context.Background(), slog.LevelDebug, "unrecognized error code",
		slog.String("domain", domain.String()),
		slog.Int("code", int(code)),
	)
}
