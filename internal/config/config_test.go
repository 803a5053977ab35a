package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 8484, cfg.Server.Port)
	require.Equal(t, "file", cfg.Storage.Backend)
	require.Equal(t, "learner-hours", cfg.Storage.Key)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "1/2/2006", cfg.Display.DateLayout)
	require.Equal(t, 3, cfg.Display.MessageTimeoutSec)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LEARNER_SERVER_PORT", "9000")
	t.Setenv("LEARNER_STORAGE_BACKEND", "sqlite")
	t.Setenv("LEARNER_STORAGE_PATH", "tracker.db")
	t.Setenv("LEARNER_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9000, cfg.Server.Port)
	require.Equal(t, "sqlite", cfg.Storage.Backend)
	require.Equal(t, "tracker.db", cfg.Storage.Path)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("LEARNER_SERVER_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidBackend(t *testing.T) {
	t.Setenv("LEARNER_STORAGE_BACKEND", "redis")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 7777
storage:
  backend: sqlite
  path: hours.db
  key: my-hours
display:
  date_layout: "2006-01-02"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("LEARNER_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 7777, cfg.Server.Port)
	require.Equal(t, "sqlite", cfg.Storage.Backend)
	require.Equal(t, "my-hours", cfg.Storage.Key)
	require.Equal(t, "2006-01-02", cfg.Display.DateLayout)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 7777\n"), 0o644))
	t.Setenv("LEARNER_CONFIG_PATH", path)
	t.Setenv("LEARNER_SERVER_PORT", "8888")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8888, cfg.Server.Port)
}
