package neterr

import "log/slog"

// DefaultUnknownMessage is the last resort of a Describer when no renderer
// recognizes a code.
const DefaultUnknownMessage = "Unknown error."

// FallbackFunc renders a socket code the tables do not know.
// It reports false when it has no message either.
type FallbackFunc func(code Code) (string, bool)

// describerOptions holds configuration options for a Describer.
type describerOptions struct {
	logger         *slog.Logger
	fallback       FallbackFunc
	unknownMessage string
	platform       bool
}

// Option is a functional option for configuring a Describer.
type Option func(*describerOptions)

// WithLogger configures the Describer with a custom logger.
// If logger is nil, logging will be disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *describerOptions) {
		opts.logger = logger
	}
}

// WithFallback adds a renderer consulted after the socket table and before
// the platform message. If fn is nil, no extra renderer is used.
func WithFallback(fn FallbackFunc) Option {
	return func(opts *describerOptions) {
		opts.fallback = fn
	}
}

// WithUnknownMessage overrides the text returned when nothing recognizes a
// code. An empty message keeps the default.
func WithUnknownMessage(message string) Option {
	return func(opts *describerOptions) {
		if message != "" {
			opts.unknownMessage = message
		}
	}
}

// WithPlatformMessages enables or disables the platform message step.
// It is enabled by default. Only Windows renders Winsock codes natively;
// elsewhere the step never produces a message.
func WithPlatformMessages(enabled bool) Option {
	return func(opts *describerOptions) {
		opts.platform = enabled
	}
}

// defaultOptions returns the default configuration options.
func defaultOptions() *describerOptions {
	return &describerOptions{
		logger:         nil, // No default logger
		fallback:       nil,
		unknownMessage: DefaultUnknownMessage,
		platform:       true,
	}
}

// applyOptions applies the given options to the describer options.
func applyOptions(opts *describerOptions, options []Option) {
	for _, option := range options {
		option(opts)
	}
}
