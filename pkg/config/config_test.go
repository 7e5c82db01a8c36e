package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Should use defaults without a file or environment", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, 1416, cfg.Server.Port)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "0.0.0.0:1416", cfg.Server.FullAddress())
	})

	t.Run("Should load overrides from a YAML file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pipeserve.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9000\nlog:\n  level: debug\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 9000, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	})

	t.Run("Should let environment variables win over file values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pipeserve.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o600))
		t.Setenv("PIPESERVE_LOG_LEVEL", "error")
		t.Setenv("PIPESERVE_SERVER_PORT", "9090")

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "error", cfg.Log.Level)
		assert.Equal(t, 9090, cfg.Server.Port)
	})

	t.Run("Should fail on a missing config file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("Should reject invalid log levels", func(t *testing.T) {
		t.Setenv("PIPESERVE_LOG_LEVEL", "loud")

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})
}
