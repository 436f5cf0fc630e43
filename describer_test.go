package neterr

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/neterr/errors"
)

func TestNewDescriber_Options(t *testing.T) {
	tests := []struct {
		name     string
		options  []Option
		validate func(t *testing.T, d *Describer)
	}{
		{
			name:    "defaults",
			options: nil,
			validate: func(t *testing.T, d *Describer) {
				assert.Nil(t, d.logger)
				assert.Nil(t, d.fallback)
				assert.Equal(t, DefaultUnknownMessage, d.unknownMessage)
				assert.True(t, d.platform)
			},
		},
		{
			name:    "with logger",
			options: []Option{WithLogger(slog.New(slog.NewTextHandler(nil, nil)))},
			validate: func(t *testing.T, d *Describer) {
				assert.NotNil(t, d.logger)
			},
		},
		{
			name:    "with nil logger",
			options: []Option{WithLogger(nil)},
			validate: func(t *testing.T, d *Describer) {
				assert.Nil(t, d.logger)
			},
		},
		{
			name:    "empty unknown message keeps default",
			options: []Option{WithUnknownMessage("")},
			validate: func(t *testing.T, d *Describer) {
				assert.Equal(t, DefaultUnknownMessage, d.unknownMessage)
			},
		},
		{
			name:    "last option wins",
			options: []Option{WithUnknownMessage("first"), WithUnknownMessage("second"), WithPlatformMessages(false)},
			validate: func(t *testing.T, d *Describer) {
				assert.Equal(t, "second", d.unknownMessage)
				assert.False(t, d.platform)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDescriber(tt.options...)
			require.NotNil(t, d)
			tt.validate(t, d)
		})
	}
}

func TestDescriber_Socket(t *testing.T) {
	fallback := func(code Code) (string, bool) {
		if code == 424242 {
			return "custom message", true
		}
		return "", false
	}

	tests := []struct {
		name     string
		options  []Option
		code     Code
		expected string
	}{
		{"table hit", nil, WSAECONNREFUSED, "Connection refused"},
		{"table beats fallback", []Option{WithFallback(func(Code) (string, bool) { return "nope", true })}, WSAECONNREFUSED, "Connection refused"},
		{"fallback hit", []Option{WithFallback(fallback)}, 424242, "custom message"},
		{"fallback miss", []Option{WithFallback(fallback), WithPlatformMessages(false)}, 999999, DefaultUnknownMessage},
		{"empty fallback message ignored", []Option{WithFallback(func(Code) (string, bool) { return "", true }), WithPlatformMessages(false)}, 999999, DefaultUnknownMessage},
		{"custom unknown", []Option{WithUnknownMessage("no idea"), WithPlatformMessages(false)}, 999999, "no idea"},
		{"platform has nothing for winsock range", nil, 999999, DefaultUnknownMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDescriber(tt.options...)
			assert.Equal(t, tt.expected, d.Socket(tt.code))
		})
	}
}

func TestDescriber_AddressResolution(t *testing.T) {
	d := NewDescriber()

	assert.Equal(t, "Temporary failure in name resolution.", d.AddressResolution(EAI_AGAIN))
	assert.Equal(t, UnknownAddressResolutionMessage, d.AddressResolution(999999))
}

func TestDescriber_LogsUnknownCodes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	d := NewDescriber(WithLogger(logger), WithPlatformMessages(false))

	d.Socket(WSAECONNRESET)
	assert.Empty(t, buf.String(), "known codes should not be logged")

	d.Socket(999999)
	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, `msg="unrecognized error code"`)
	assert.Contains(t, out, "domain=socket")
	assert.Contains(t, out, "code=999999")

	buf.Reset()
	d.AddressResolution(123)
	assert.Contains(t, buf.String(), "domain=address-resolution")
}

func TestDescriber_Describe(t *testing.T) {
	d := NewDescriber(WithPlatformMessages(false))

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, ""},
		{"plain error", stderrors.New("boom"), "boom"},
		{"neterr socket", New("connect", DomainSocket, WSAECONNREFUSED), "connect: Connection refused"},
		{"neterr wrapped", fmt.Errorf("dial tcp: %w", New("", DomainSocket, WSAETIMEDOUT)), "Connection timed out"},
		{"neterr unknown socket", New("send", DomainSocket, 999999), "send: " + DefaultUnknownMessage},
		{"neterr address resolution", New("getaddrinfo", DomainAddressResolution, EAI_SERVICE), "getaddrinfo: The servname parameter is not supported for ai_socktype."},
		{"neterr unknown domain", New("", Domain(7), 1), DefaultUnknownMessage},
		{"platform error", errors.New(errors.CodeTimeout, "read deadline"), "read deadline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, d.Describe(tt.err))
		})
	}
}

func TestDescriber_Concurrent(t *testing.T) {
	d := NewDescriber(WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	codes := append(Known(DomainSocket), 999999, -5)

	expected := make([]string, len(codes))
	for i, code := range codes {
		expected[i] = d.Socket(code)
	}

	var wg sync.WaitGroup
	for w := 0; w < 16; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, code := range codes {
				assert.Equal(t, expected[i], d.Socket(code))
			}
		}()
	}
	wg.Wait()
}
