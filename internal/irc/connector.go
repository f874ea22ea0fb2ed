package irc

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"time"

	"twitchwire/internal/adapters/logging"
	"twitchwire/internal/adapters/transport"
	"twitchwire/internal/ports"
)

const (
	// DefaultAddr is Twitch's plaintext chat endpoint.
	DefaultAddr = "irc.chat.twitch.tv:6667"

	// DefaultMaxAttempts bounds the connect retry budget.
	DefaultMaxAttempts = 3

	readBufferSize = 1024
)

// Capability requests sent after authentication, in this order.
var capabilityRequests = []string{
	"CAP REQ :twitch.tv/commands" + terminator,
	"CAP REQ :twitch.tv/membership" + terminator,
	"CAP REQ :twitch.tv/tags" + terminator,
}

// Connector owns one stream handle and one session. Single-threaded
// ownership: no internal synchronization, one reader, sends only when
// no read is blocking on the same handle.
type Connector struct {
	stream ports.Stream
	config ports.SessionConfig

	dialer      ports.Dialer
	logger      *logging.Logger
	sleep       func(time.Duration)
	maxAttempts int
	addr        string
}

type Option func(*Connector)

func WithDialer(d ports.Dialer) Option {
	return func(c *Connector) {
		c.dialer = d
	}
}

func WithAddr(addr string) Option {
	return func(c *Connector) {
		if addr != "" {
			c.addr = addr
		}
	}
}

func WithLogger(logger *logging.Logger) Option {
	return func(c *Connector) {
		c.logger = logger
	}
}

// WithSleep replaces the inter-attempt delay, for tests.
func WithSleep(fn func(time.Duration)) Option {
	return func(c *Connector) {
		c.sleep = fn
	}
}

func WithMaxAttempts(n int) Option {
	return func(c *Connector) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// Connect dials the chat endpoint, retrying failed dials with an
// exponential backoff of 2^(n-1) seconds after the nth failure, then
// performs the fixed handshake: PASS, NICK, JOIN and the three
// capability requests, batched into one write. Dial exhaustion yields
// ErrMaxAttempts; a handshake failure is classified and returned
// without retrying. The returned connector is ready for SendCommand
// and the read loop.
func Connect(ctx context.Context, cfg ports.SessionConfig, oauth string, opts ...Option) (*Connector, error) {
	c := &Connector{
		config:      cfg,
		sleep:       time.Sleep,
		maxAttempts: DefaultMaxAttempts,
		addr:        DefaultAddr,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.New(logging.LevelInfo)
	}
	if c.dialer == nil {
		c.dialer = transport.NewTCPDialer()
	}

	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		c.logger.Infof(ctx, "connection attempt %d", attempt+1)

		stream, err := c.dialer.Dial(c.addr)
		if err != nil {
			if attempt == c.maxAttempts-1 {
				return nil, ErrMaxAttempts
			}
			c.logger.Warnf(ctx, "dial %s failed: %v", c.addr, err)
			c.sleep(time.Duration(1<<attempt) * time.Second)
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			continue
		}

		c.stream = stream
		if err := c.handshake(oauth); err != nil {
			_ = stream.Close()
			c.stream = nil
			return nil, err
		}
		c.logger.Infof(ctx, "session ready on %s as %s in #%s", c.addr, cfg.Nickname, cfg.Channel)
		return c, nil
	}
	return nil, ErrMaxAttempts
}

func (c *Connector) handshake(oauth string) error {
	lines := []string{
		CmdPass.Build(oauth, c.config),
		CmdNick.Build(c.config.Nickname, c.config),
		CmdJoin.Build(c.config.Channel, c.config),
	}
	lines = append(lines, capabilityRequests...)
	return c.writeAll(strings.Join(lines, ""))
}

func (c *Connector) writeAll(line string) error {
	buf := []byte(line)
	n, err := c.stream.Write(buf)
	if err != nil {
		return classifyIOError(err)
	}
	if n < len(buf) {
		return classifyIOError(io.ErrShortWrite)
	}
	return nil
}

// SendCommand encodes and writes one command. Valid only while the
// stream handle is present.
func (c *Connector) SendCommand(kind CommandKind, arg string) error {
	if c.stream == nil {
		return ErrDisconnected
	}
	return c.writeAll(kind.Build(arg, c.config))
}

// Read pulls one buffer and returns the first event it contains. The
// second return is false once the connector can produce no further
// events; (nil, true) means the buffer held nothing recognizable and
// the caller may pull again.
func (c *Connector) Read() (*Event, bool) {
	if c.stream == nil {
		return nil, false
	}
	buf := make([]byte, readBufferSize)
	n, err := c.stream.Read(buf)
	if err != nil || n == 0 {
		return nil, false
	}
	ev, err := Parse(buf[:n])
	if err != nil {
		return nil, true
	}
	return ev, true
}

// ReadLoop pulls buffers until the stream closes, invoking handler for
// every parsed event. A buffer that fails to decode or parse is
// skipped; one bad network read must not kill a long-lived session.
// The context is checked between reads, and Close unblocks an
// in-flight read, so cancellation takes effect without killing the
// process.
func (c *Connector) ReadLoop(ctx context.Context, handler func(Event)) error {
	if c.stream == nil {
		return ErrDisconnected
	}
	buf := make([]byte, readBufferSize)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := c.stream.Read(buf)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return classifyIOError(err)
		}
		if n == 0 {
			continue
		}
		events, err := ParseAll(buf[:n])
		if err != nil {
			c.logger.Debugf(ctx, "skipping undecodable buffer: %v", err)
			continue
		}
		for _, ev := range events {
			handler(ev)
		}
	}
}

// Close drops the stream handle. Safe to call from another goroutine
// to end a blocked ReadLoop; the connector performs no further I/O.
func (c *Connector) Close() error {
	if c.stream == nil {
		return nil
	}
	err := c.stream.Close()
	c.stream = nil
	return err
}

// Config returns the session configuration the connector was built with.
func (c *Connector) Config() ports.SessionConfig {
	return c.config
}
