package ports

import "io"

// Stream is the byte-stream boundary between the protocol engine and the
// network: blocking reads and writes over a bidirectional connection.
// net.Conn satisfies it directly; tests use in-memory implementations.
type Stream interface {
	io.Reader
	io.Writer
	Close() error
}

// Dialer establishes a Stream to the given host:port address.
type Dialer interface {
	Dial(addr string) (Stream, error)
}
