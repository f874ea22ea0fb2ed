package irc

import "github.com/dlclark/regexp2"

// EventKind is the semantic classification of an incoming line.
type EventKind int

const (
	EventMessage EventKind = iota
	EventJoin
	EventPart
	EventUserNotice
	EventClearChat
	EventPong
	EventPing
	EventUserState
	EventNotice
	EventUnknown
)

var kindNames = map[EventKind]string{
	EventMessage:    "message",
	EventJoin:       "join",
	EventPart:       "part",
	EventUserNotice: "usernotice",
	EventClearChat:  "clearchat",
	EventPong:       "pong",
	EventPing:       "ping",
	EventUserState:  "userstate",
	EventNotice:     "notice",
	EventUnknown:    "unknown",
}

func (k EventKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// KindOf maps a verb token to its EventKind. Total: any verb outside the
// recognized set classifies as EventUnknown, never an error.
func KindOf(verb string) EventKind {
	switch verb {
	case "PRIVMSG":
		return EventMessage
	case "JOIN":
		return EventJoin
	case "PART":
		return EventPart
	case "USERNOTICE":
		return EventUserNotice
	case "CLEARCHAT":
		return EventClearChat
	case "PING":
		return EventPing
	case "PONG":
		return EventPong
	case "NOTICE":
		return EventNotice
	default:
		return EventUnknown
	}
}

// Each kind embeds the acting user's name in a structurally different
// place: the :nick!user@host prefix, the display-name tag, or the
// trailing field. The lookaround patterns need regexp2; stdlib regexp
// is RE2 and rejects lookbehind.
var nicknamePatterns = map[EventKind]*regexp2.Regexp{
	EventMessage:    regexp2.MustCompile(`(?<=:)(\w+)(?=!)`, 0),
	EventJoin:       regexp2.MustCompile(`(?<=:)(\w+)(?=!)`, 0),
	EventPart:       regexp2.MustCompile(`(?<=:)(\w+)(?=!)`, 0),
	EventUserNotice: regexp2.MustCompile(`(?<=display-name=)([\w]+)`, 0),
	EventUserState:  regexp2.MustCompile(`(?<=display-name=)([\w]+)`, 0),
	EventClearChat:  regexp2.MustCompile(`(?<=:)([\w]+)(?!.)`, 0),
}

// extractNickname applies the kind's pattern against the raw line.
// Kinds without a pattern, and lines the pattern does not match,
// yield nil rather than an error.
func (k EventKind) extractNickname(line string) *string {
	re, ok := nicknamePatterns[k]
	if !ok {
		return nil
	}
	m, err := re.FindStringMatch(line)
	if err != nil || m == nil {
		return nil
	}
	nick := m.String()
	return &nick
}

// Event is one parsed incoming line. Immutable once returned; owned by
// the caller.
type Event struct {
	Kind     EventKind
	Nickname *string
	Tags     map[string]string
	Channel  string
	Message  *string
}
