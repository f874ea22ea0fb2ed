package transport

import (
	"time"

	"github.com/gorilla/websocket"

	"twitchwire/internal/ports"
)

// DefaultWSURL is Twitch's websocket chat endpoint, which speaks the
// same line protocol framed as text messages.
const DefaultWSURL = "ws://irc-ws.chat.twitch.tv:80"

type WSDialer struct {
	url              string
	handshakeTimeout time.Duration
}

type WSOption func(*WSDialer)

func WithWSURL(url string) WSOption {
	return func(d *WSDialer) {
		if url != "" {
			d.url = url
		}
	}
}

func WithHandshakeTimeout(t time.Duration) WSOption {
	return func(d *WSDialer) {
		if t > 0 {
			d.handshakeTimeout = t
		}
	}
}

func NewWSDialer(opts ...WSOption) *WSDialer {
	d := &WSDialer{
		url:              DefaultWSURL,
		handshakeTimeout: DefaultDialTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dial ignores the host:port address; the websocket endpoint is its
// own URL.
func (d *WSDialer) Dial(_ string) (ports.Stream, error) {
	dialer := websocket.Dialer{HandshakeTimeout: d.handshakeTimeout}
	conn, resp, err := dialer.Dial(d.url, nil)
	if err != nil {
		return nil, err
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	return &wsStream{conn: conn}, nil
}

// wsConn is the slice of *websocket.Conn the stream bridge needs.
type wsConn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// wsStream bridges message framing onto the byte-stream boundary. A
// message larger than the caller's buffer is carried over into
// subsequent reads.
type wsStream struct {
	conn    wsConn
	pending []byte
}

func (s *wsStream) Read(p []byte) (int, error) {
	for len(s.pending) == 0 {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			return 0, err
		}
		s.pending = data
	}
	n := copy(p, s.pending)
	s.pending = s.pending[n:]
	return n, nil
}

func (s *wsStream) Write(p []byte) (int, error) {
	if err := s.conn.WriteMessage(websocket.TextMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (s *wsStream) Close() error {
	return s.conn.Close()
}
