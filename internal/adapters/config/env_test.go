package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearChatEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"TWITCH_NICKNAME", "TWITCH_OAUTH", "TWITCH_CHANNEL",
		"TRANSPORT", "LOG_LEVEL", "HEALTH_PORT",
	} {
		t.Setenv(k, "")
	}
}

func TestNewEnvStore(t *testing.T) {
	clearChatEnv(t)
	t.Setenv("TWITCH_NICKNAME", "botnick")
	t.Setenv("TWITCH_OAUTH", "tok123")
	t.Setenv("TWITCH_CHANNEL", "testchan")
	t.Setenv("TRANSPORT", "WS")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HEALTH_PORT", "8080")

	store, err := NewEnvStore()
	require.NoError(t, err)

	cfg := store.GetConfig()
	assert.Equal(t, "botnick", cfg.Session.Nickname)
	assert.Equal(t, "testchan", cfg.Session.Channel)
	assert.Equal(t, "ws", cfg.Transport)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.HealthPort)
	assert.Equal(t, "tok123", store.GetOAuth())
}

func TestNewEnvStoreDefaults(t *testing.T) {
	clearChatEnv(t)
	t.Setenv("TWITCH_CHANNEL", "testchan")
	t.Setenv("TWITCH_NICKNAME", "botnick")
	t.Setenv("TWITCH_OAUTH", "tok")

	store, err := NewEnvStore()
	require.NoError(t, err)

	cfg := store.GetConfig()
	assert.Equal(t, "tcp", cfg.Transport)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 0, cfg.HealthPort)
}

func TestNewEnvStoreMissingChannel(t *testing.T) {
	clearChatEnv(t)
	t.Setenv("TWITCH_NICKNAME", "botnick")
	t.Setenv("TWITCH_OAUTH", "tok")

	store, err := NewEnvStore()
	assert.Nil(t, store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TWITCH_CHANNEL")
}

func TestNewEnvStoreOAuthWithoutNickname(t *testing.T) {
	clearChatEnv(t)
	t.Setenv("TWITCH_CHANNEL", "testchan")
	t.Setenv("TWITCH_OAUTH", "tok")

	store, err := NewEnvStore()
	assert.Nil(t, store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TWITCH_NICKNAME")
}

func TestNewEnvStoreAnonymousFallback(t *testing.T) {
	clearChatEnv(t)
	t.Setenv("TWITCH_CHANNEL", "testchan")

	store, err := NewEnvStore()
	require.NoError(t, err)

	cfg := store.GetConfig()
	assert.Equal(t, anonymousNickname, cfg.Session.Nickname)
	assert.Equal(t, anonymousOAuth, store.GetOAuth())
}
