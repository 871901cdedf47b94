package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// unset removes keys for the duration of the test; t.Setenv restores them.
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("BADGER_FILEPATH", "/tmp/chat")
	t.Setenv("JWT_SECRET", "secret")

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal("localhost:8080", config.Address())
	req.Equal(2*time.Second, config.SinkTimeout)
	req.Equal(64, config.ClientBufferSize)
	req.Equal("chat-events", config.RedisChannel)
	req.Nil(config.Brokers())
}

func TestLoadConfig_FileDoesNotOverrideEnvironment(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), ".env")
	req.NoError(os.WriteFile(path, []byte("BADGER_FILEPATH=/from/file\nJWT_SECRET=file-secret\nKAFKA_BROKERS=k1:9092,k2:9092\n"), 0o600))
	t.Setenv("JWT_SECRET", "env-secret")
	unset(t, "BADGER_FILEPATH", "KAFKA_BROKERS")

	config, err := LoadConfig(path)

	req.NoError(err)
	req.Equal("/from/file", config.BadgerFilepath)
	req.Equal("env-secret", config.JWTSecret)
	req.Equal([]string{"k1:9092", "k2:9092"}, config.Brokers())
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	unset(t, "BADGER_FILEPATH", "JWT_SECRET")

	_, err := LoadConfig()

	require.Error(t, err)
}
