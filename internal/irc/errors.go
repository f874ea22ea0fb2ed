package irc

import (
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
)

var (
	// ErrTimeout reports a timed-out dial or write.
	ErrTimeout = errors.New("connection timed out")
	// ErrMaxAttempts reports an exhausted connect retry budget.
	ErrMaxAttempts = errors.New("connection attempts exhausted")
	// ErrPermission reports denial at the OS or network layer.
	ErrPermission = errors.New("permission denied")
	// ErrAborted reports a connection aborted by the peer.
	ErrAborted = errors.New("connection aborted by peer")
	// ErrUnknown wraps I/O failures outside the taxonomy.
	ErrUnknown = errors.New("unknown connection error")
	// ErrDisconnected reports an operation on a connector with no stream.
	ErrDisconnected = errors.New("not connected")

	// ErrNoVerb reports a buffer with no verb token. Never escapes the
	// read loop.
	ErrNoVerb = errors.New("no verb token in buffer")
	// ErrDecode reports a buffer that is not valid UTF-8. Never escapes
	// the read loop.
	ErrDecode = errors.New("buffer is not valid utf-8")
)

// HostError carries the human-readable cause of a host-level failure:
// reset, refused, unknown host, broken pipe.
type HostError struct {
	Reason string
	Err    error
}

func (e *HostError) Error() string {
	return fmt.Sprintf("host error: %s", e.Reason)
}

func (e *HostError) Unwrap() error { return e.Err }

// classifyIOError maps an I/O failure onto the error taxonomy.
func classifyIOError(err error) error {
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return ErrTimeout
	}
	var derr *net.DNSError
	if errors.As(err, &derr) {
		return &HostError{Reason: "unknown host", Err: err}
	}
	switch {
	case errors.Is(err, syscall.ECONNRESET):
		return &HostError{Reason: "connection reset by peer", Err: err}
	case errors.Is(err, syscall.ECONNREFUSED):
		return &HostError{Reason: "connection refused by host", Err: err}
	case errors.Is(err, syscall.EPIPE):
		return &HostError{Reason: "broken pipe", Err: err}
	case errors.Is(err, syscall.ECONNABORTED):
		return ErrAborted
	case errors.Is(err, os.ErrPermission):
		return ErrPermission
	default:
		return fmt.Errorf("%w: %v", ErrUnknown, err)
	}
}
