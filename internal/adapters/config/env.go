package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"twitchwire/internal/ports"
)

const (
	// Guest credentials accepted by Twitch for read-only sessions.
	anonymousNickname = "justinfan12345"
	anonymousOAuth    = "99999"

	defaultTransport = "tcp"
)

// EnvStore reads the session configuration from environment variables.
// TWITCH_CHANNEL is always required; TWITCH_NICKNAME is required only
// when TWITCH_OAUTH is set, since an anonymous guest session needs
// neither.
type EnvStore struct {
	config ports.AppConfig
	oauth  string
}

func NewEnvStore() (*EnvStore, error) {
	store := &EnvStore{}
	if err := store.load(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *EnvStore) load() error {
	nickname := os.Getenv("TWITCH_NICKNAME")
	oauth := os.Getenv("TWITCH_OAUTH")

	var missing []string
	if os.Getenv("TWITCH_CHANNEL") == "" {
		missing = append(missing, "TWITCH_CHANNEL")
	}
	if oauth != "" && nickname == "" {
		missing = append(missing, "TWITCH_NICKNAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if oauth == "" {
		oauth = anonymousOAuth
		if nickname == "" {
			nickname = anonymousNickname
		}
	}

	healthPort, _ := strconv.Atoi(getEnv("HEALTH_PORT", "0"))

	s.config = ports.AppConfig{
		Session: ports.SessionConfig{
			Nickname: nickname,
			Channel:  os.Getenv("TWITCH_CHANNEL"),
		},
		Transport:  strings.ToLower(getEnv("TRANSPORT", defaultTransport)),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		HealthPort: healthPort,
	}
	s.oauth = oauth
	return nil
}

func (s *EnvStore) GetConfig() ports.AppConfig {
	return s.config
}

func (s *EnvStore) GetOAuth() string {
	return s.oauth
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
