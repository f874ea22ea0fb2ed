package irc

import (
	"strings"
	"unicode/utf8"
)

// Parse decodes a raw buffer and returns the first recognizable event
// in it. A buffer may carry noise or a partial line; failure to find a
// verb yields ErrNoVerb, which callers should treat as "no event" and
// never as fatal. Use ParseAll when a buffer may hold several lines.
func Parse(buf []byte) (*Event, error) {
	if !utf8.Valid(buf) {
		return nil, ErrDecode
	}
	raw := strings.TrimRight(string(buf), "\x00")
	for _, seg := range strings.Split(raw, terminator) {
		if ev, err := parseLine(seg); err == nil {
			return ev, nil
		}
	}
	return nil, ErrNoVerb
}

// ParseAll splits the buffer on the line terminator and parses every
// segment, so a single read carrying several lines drops none of them.
// Segments without a verb are skipped.
func ParseAll(buf []byte) ([]Event, error) {
	if !utf8.Valid(buf) {
		return nil, ErrDecode
	}
	raw := strings.TrimRight(string(buf), "\x00")
	var events []Event
	for _, seg := range strings.Split(raw, terminator) {
		if ev, err := parseLine(seg); err == nil {
			events = append(events, *ev)
		}
	}
	return events, nil
}

// parseLine assembles an event from one protocol line of the form
//
//	@key=value;key2=value2 :nick!user@host VERB #channel :trailing
//
// where the tag and prefix segments are optional.
func parseLine(raw string) (*Event, error) {
	line := strings.TrimRight(raw, "\r\n ")
	fields := strings.Fields(line)

	i := 0
	var tagSegment string
	if i < len(fields) && strings.HasPrefix(fields[i], "@") {
		tagSegment = strings.TrimPrefix(fields[i], "@")
		i++
	}
	if i < len(fields) && strings.HasPrefix(fields[i], ":") {
		i++
	}
	if i >= len(fields) {
		return nil, ErrNoVerb
	}
	kind := KindOf(fields[i])

	var tags map[string]string
	if tagSegment != "" {
		tags = parseTags(tagSegment)
	}

	var channel string
	for _, f := range fields[i:] {
		if strings.HasPrefix(f, "#") {
			channel = strings.TrimPrefix(f, "#")
			break
		}
	}

	return &Event{
		Kind:     kind,
		Nickname: kind.extractNickname(line),
		Tags:     tags,
		Channel:  channel,
		Message:  trailingMessage(line, channel),
	}, nil
}

func parseTags(segment string) map[string]string {
	tags := make(map[string]string)
	for _, pair := range strings.Split(segment, ";") {
		key, value, _ := strings.Cut(pair, "=")
		if key != "" {
			tags[key] = value
		}
	}
	return tags
}

// trailingMessage returns the text after the first " :" following the
// channel token, or nil when the line carries no message body.
func trailingMessage(line, channel string) *string {
	if channel == "" {
		return nil
	}
	at := strings.Index(line, "#"+channel)
	if at < 0 {
		return nil
	}
	rest := line[at+len(channel)+1:]
	sep := strings.Index(rest, " :")
	if sep < 0 {
		return nil
	}
	msg := rest[sep+2:]
	return &msg
}
