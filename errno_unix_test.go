//go:build unix

package neterr

import (
	"fmt"
	"net"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/input-output-hk/catalyst-forge-libs/neterr/errors"
)

func TestFromErrno(t *testing.T) {
	tests := []struct {
		errno    syscall.Errno
		expected Code
	}{
		{unix.EINTR, WSAEINTR},
		{unix.EWOULDBLOCK, WSAEWOULDBLOCK},
		{unix.EADDRINUSE, WSAEADDRINUSE},
		{unix.ECONNREFUSED, WSAECONNREFUSED},
		{unix.ECONNRESET, WSAECONNRESET},
		{unix.ETIMEDOUT, WSAETIMEDOUT},
		{unix.EHOSTUNREACH, WSAEHOSTUNREACH},
		{unix.ENOTCONN, WSAENOTCONN},
	}

	for _, tt := range tests {
		t.Run(unix.ErrnoName(tt.errno), func(t *testing.T) {
			code, ok := FromErrno(tt.errno)
			require.True(t, ok)
			assert.Equal(t, tt.expected, code)
		})
	}
}

func TestFromErrno_EveryResultIsKnown(t *testing.T) {
	for e := syscall.Errno(1); e < 256; e++ {
		code, ok := FromErrno(e)
		if !ok {
			continue
		}
		_, known := SocketMessage(code)
		assert.True(t, known, "errno %d maps to unknown code %d", e, code)
	}
}

func TestFromErrno_Unmapped(t *testing.T) {
	for _, errno := range []syscall.Errno{0, unix.ENOENT, unix.EIO, unix.ENOSPC} {
		_, ok := FromErrno(errno)
		assert.False(t, ok, "errno %d should not map", errno)
	}
}

func TestPlatformMessage(t *testing.T) {
	// Socket codes use the Winsock numbering; none of them is read as a
	// native errno, even where the numbers overlap.
	for _, code := range []Code{0, 8, 11, Code(unix.ENOENT), WSAECONNREFUSED} {
		msg, ok := platformMessage(code)
		assert.False(t, ok, "code %d", code)
		assert.Empty(t, msg)
	}
}

func TestDescriber_Socket_NoNativeMisread(t *testing.T) {
	d := NewDescriber()

	assert.Equal(t, DefaultUnknownMessage, d.Socket(EAI_MEMORY))
	assert.Equal(t, DefaultUnknownMessage, d.Socket(Code(unix.EAGAIN)))
	assert.Equal(t, DefaultUnknownMessage, d.Socket(Code(unix.EIO)))
}

func TestError_Unwrap_NativeErrno(t *testing.T) {
	err := New("connect", DomainSocket, WSAECONNREFUSED)

	assert.ErrorIs(t, err, unix.ECONNREFUSED)
	assert.ErrorIs(t, fmt.Errorf("dial: %w", err), syscall.ECONNREFUSED)
	assert.NotErrorIs(t, err, syscall.Errno(WSAECONNREFUSED))
	assert.Equal(t, unix.ECONNREFUSED.Error(), err.Unwrap().Error())

	// Resolver codes have no errno counterpart.
	assert.Nil(t, New("gethostbyname", DomainSocket, HOST_NOT_FOUND).Unwrap())
}

func TestDescriber_Describe_NativeErrno(t *testing.T) {
	d := NewDescriber()

	// The shape net.Dial returns for a refused connection.
	err := &net.OpError{
		Op:  "dial",
		Net: "tcp",
		Err: os.NewSyscallError("connect", unix.ECONNREFUSED),
	}

	assert.Equal(t, "Connection refused", d.Describe(err))
	assert.Equal(t, "boom: "+unix.ENOENT.Error(), d.Describe(fmt.Errorf("boom: %w", unix.ENOENT)))
}

func TestWrap_NativeErrno(t *testing.T) {
	cause := os.NewSyscallError("connect", unix.ECONNREFUSED)

	err := Wrap(cause, "connect")

	require.Error(t, err)
	assert.Equal(t, "connect: Connection refused: connect: "+unix.ECONNREFUSED.Error(), err.Error())
	assert.ErrorIs(t, err, unix.ECONNREFUSED)
	assert.Equal(t, errors.CodeConnectionRefused, errors.CodeOf(err))
	assert.False(t, errors.IsRetryable(err))

	var pe errors.PlatformError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, map[string]interface{}{"domain": "socket", "code": int(WSAECONNREFUSED)}, pe.Context())

	assert.Equal(t, "connect: Connection refused", NewDescriber().Describe(err))
}

func TestClassify_NativeErrno(t *testing.T) {
	assert.Equal(t, errors.CodeTimeout, Classify(os.NewSyscallError("read", unix.ETIMEDOUT)))
	assert.True(t, Classify(unix.ECONNRESET).Retryable())
	assert.Equal(t, errors.CodeUnknown, Classify(unix.ENOENT))
}
