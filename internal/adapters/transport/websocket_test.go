package transport

import (
	"io"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWSConn struct {
	messages [][]byte
	written  [][]byte
	types    []int
	closed   bool
}

func (c *fakeWSConn) ReadMessage() (int, []byte, error) {
	if len(c.messages) == 0 {
		return 0, nil, io.EOF
	}
	msg := c.messages[0]
	c.messages = c.messages[1:]
	return websocket.TextMessage, msg, nil
}

func (c *fakeWSConn) WriteMessage(messageType int, data []byte) error {
	c.types = append(c.types, messageType)
	c.written = append(c.written, append([]byte(nil), data...))
	return nil
}

func (c *fakeWSConn) Close() error {
	c.closed = true
	return nil
}

func TestWSStreamReadCarriesOver(t *testing.T) {
	t.Parallel()

	conn := &fakeWSConn{messages: [][]byte{[]byte("PING :tmi.twitch.tv\r\n")}}
	stream := &wsStream{conn: conn}

	// A message larger than the read buffer spills into the next read.
	buf := make([]byte, 10)
	n, err := stream.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "PING :tmi.", string(buf[:n]))

	n, err = stream.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "twitch.tv\r", string(buf[:n]))

	n, err = stream.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "\n", string(buf[:n]))

	_, err = stream.Read(buf)
	assert.ErrorIs(t, err, io.EOF)
}

func TestWSStreamWriteIsTextFramed(t *testing.T) {
	t.Parallel()

	conn := &fakeWSConn{}
	stream := &wsStream{conn: conn}

	n, err := stream.Write([]byte("NICK test\r\n"))
	require.NoError(t, err)
	assert.Equal(t, 11, n)
	require.Len(t, conn.written, 1)
	assert.Equal(t, "NICK test\r\n", string(conn.written[0]))
	assert.Equal(t, []int{websocket.TextMessage}, conn.types)
}

func TestWSStreamClose(t *testing.T) {
	t.Parallel()

	conn := &fakeWSConn{}
	stream := &wsStream{conn: conn}

	require.NoError(t, stream.Close())
	assert.True(t, conn.closed)
}

func TestTCPDialerDefaults(t *testing.T) {
	t.Parallel()

	d := NewTCPDialer()
	assert.Equal(t, DefaultDialTimeout, d.timeout)

	d = NewTCPDialer(WithDialTimeout(0))
	assert.Equal(t, DefaultDialTimeout, d.timeout, "non-positive timeout keeps the default")
}
