package irc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"twitchwire/internal/ports"
)

func TestCommandBuild(t *testing.T) {
	t.Parallel()

	cfg := ports.SessionConfig{Nickname: "test", Channel: "test"}

	tests := []struct {
		name string
		kind CommandKind
		arg  string
		want string
	}{
		{"join", CmdJoin, "test", "JOIN #test\r\n"},
		{"nick", CmdNick, "test", "NICK test\r\n"},
		{"privmsg", CmdPrivmsg, "test", "PRIVMSG #test :test\r\n"},
		{"privmsg text", CmdPrivmsg, "hello world", "PRIVMSG #test :hello world\r\n"},
		{"pass", CmdPass, "abc123", "PASS oauth:abc123\r\n"},
		{"pong ignores arg", CmdPong, "whatever", "PONG :tmi.twitch.tv\r\n"},
		{"ping", CmdPing, "", "PING\r\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.kind.Build(tt.arg, cfg)
			assert.Equal(t, tt.want, got, "Build(%q)", tt.arg)
			assert.True(t, strings.HasSuffix(got, "\r\n"), "output must end with CRLF")
		})
	}
}
