package irc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		verb string
		want EventKind
	}{
		{"PRIVMSG", EventMessage},
		{"JOIN", EventJoin},
		{"PART", EventPart},
		{"USERNOTICE", EventUserNotice},
		{"CLEARCHAT", EventClearChat},
		{"PING", EventPing},
		{"PONG", EventPong},
		{"NOTICE", EventNotice},
		{"MODE", EventUnknown},
		{"privmsg", EventUnknown},
		{"", EventUnknown},
		{"353", EventUnknown},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.verb, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, KindOf(tt.verb), "KindOf(%q)", tt.verb)
		})
	}
}

func TestKindOfIdempotent(t *testing.T) {
	t.Parallel()

	for _, verb := range []string{"PRIVMSG", "JOIN", "NOSUCHVERB"} {
		assert.Equal(t, KindOf(verb), KindOf(verb), "KindOf(%q) must be stable", verb)
	}
}

func TestExtractNickname(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind EventKind
		line string
		want string
	}{
		{
			name: "message prefix form",
			kind: EventMessage,
			line: ":nick123!nick123@nick123.tmi.twitch.tv PRIVMSG #channel :hello world",
			want: "nick123",
		},
		{
			name: "join prefix form",
			kind: EventJoin,
			line: ":someuser!someuser@someuser.tmi.twitch.tv JOIN #channel",
			want: "someuser",
		},
		{
			name: "part prefix form",
			kind: EventPart,
			line: ":someuser!someuser@someuser.tmi.twitch.tv PART #channel",
			want: "someuser",
		},
		{
			name: "usernotice display name tag",
			kind: EventUserNotice,
			line: "@badges=;display-name=Foo;emotes= :tmi.twitch.tv USERNOTICE #channel :raid",
			want: "Foo",
		},
		{
			name: "userstate display name tag",
			kind: EventUserState,
			line: "@color=;display-name=Bar;mod=0 :tmi.twitch.tv USERSTATE #channel",
			want: "Bar",
		},
		{
			name: "clearchat trailing target",
			kind: EventClearChat,
			line: "@ban-duration=600 :tmi.twitch.tv CLEARCHAT #channel :baduser",
			want: "baduser",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.kind.extractNickname(tt.line)
			if assert.NotNil(t, got) {
				assert.Equal(t, tt.want, *got)
			}
		})
	}
}

func TestExtractNicknameAbsent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind EventKind
		line string
	}{
		{"ping has no actor", EventPing, "PING :tmi.twitch.tv"},
		{"pong has no actor", EventPong, ":tmi.twitch.tv PONG tmi.twitch.tv :keepalive"},
		{"notice has no actor", EventNotice, ":tmi.twitch.tv NOTICE #channel :Login failed"},
		{"unknown has no actor", EventUnknown, ":tmi.twitch.tv 001 nick :Welcome"},
		{"message without prefix", EventMessage, "PRIVMSG #channel :no prefix here"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Nil(t, tt.kind.extractNickname(tt.line))
		})
	}
}
