package ports

type SessionStats struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	MessagesRecv  int     `json:"messages_received"`
	MessagesSent  int     `json:"messages_sent"`
	PingsAnswered int     `json:"pings_answered"`
	Channel       string  `json:"channel"`
	Nickname      string  `json:"nickname"`
}

type StatsProvider interface {
	GetStats() SessionStats
}
