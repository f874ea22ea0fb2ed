package ports

// SessionConfig identifies one chat session. Built once at startup and
// never mutated afterwards; the oauth token is kept out of it so the
// config can be passed around and logged freely.
type SessionConfig struct {
	Nickname string
	Channel  string
}

type AppConfig struct {
	Session SessionConfig

	// Transport selects the stream adapter: "tcp" or "ws".
	Transport string

	LogLevel   string
	HealthPort int
}

type ConfigReader interface {
	GetConfig() AppConfig

	GetOAuth() string
}
