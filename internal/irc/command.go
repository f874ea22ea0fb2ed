package irc

import (
	"fmt"

	"twitchwire/internal/ports"
)

// terminator ends every wire-format line.
const terminator = "\r\n"

// CommandKind enumerates the outgoing commands the engine can encode.
type CommandKind int

const (
	// CmdPass authenticates with an oauth token.
	CmdPass CommandKind = iota
	// CmdNick sets the session nickname.
	CmdNick
	// CmdJoin joins a channel.
	CmdJoin
	// CmdPong answers a server keepalive.
	CmdPong
	// CmdPing probes the server.
	CmdPing
	// CmdPrivmsg sends a chat message to the configured channel.
	CmdPrivmsg
)

// Build encodes the command into its wire-format line. Pure and total:
// no validation of arg, which must not contain the line terminator.
func (k CommandKind) Build(arg string, cfg ports.SessionConfig) string {
	var prefix string
	switch k {
	case CmdPass:
		prefix = "PASS oauth:"
	case CmdNick:
		prefix = "NICK "
	case CmdJoin:
		prefix = "JOIN #"
	case CmdPong:
		// Fixed reply, arg ignored.
		return "PONG :tmi.twitch.tv" + terminator
	case CmdPing:
		prefix = "PING"
	case CmdPrivmsg:
		prefix = fmt.Sprintf("PRIVMSG #%s :", cfg.Channel)
	}
	return prefix + arg + terminator
}
