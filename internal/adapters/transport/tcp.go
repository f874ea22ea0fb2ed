package transport

import (
	"net"
	"time"

	"twitchwire/internal/ports"
)

const DefaultDialTimeout = 10 * time.Second

// TCPDialer is the default stream adapter: a plain TCP connection to
// the chat endpoint.
type TCPDialer struct {
	timeout time.Duration
}

type TCPOption func(*TCPDialer)

func WithDialTimeout(d time.Duration) TCPOption {
	return func(t *TCPDialer) {
		if d > 0 {
			t.timeout = d
		}
	}
}

func NewTCPDialer(opts ...TCPOption) *TCPDialer {
	d := &TCPDialer{timeout: DefaultDialTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *TCPDialer) Dial(addr string) (ports.Stream, error) {
	conn, err := net.DialTimeout("tcp", addr, d.timeout)
	if err != nil {
		return nil, err
	}
	return conn, nil
}
