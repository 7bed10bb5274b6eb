package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "POSTGRES_DSN", "AGENDA_BACKEND", "AGENDA_SEED_FILE", "AGENDA_LOG_LEVEL", "AGENDA_LOG_FORMAT"} {
		t.Setenv(k, "")
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, BackendMemory, cfg.Backend)
		assert.Equal(t, "8080", cfg.Port)
	})

	t.Run("file then env", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "agenda.yaml")
		require.NoError(t, os.WriteFile(path, []byte("backend: postgres\nport: \"9000\"\nseed_file: seed.yaml\n"), 0o600))
		t.Setenv("PORT", "9100")
		t.Setenv("POSTGRES_DSN", "postgres://db/agenda")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, BackendPostgres, cfg.Backend)
		assert.Equal(t, "9100", cfg.Port)
		assert.Equal(t, "postgres://db/agenda", cfg.PostgresDSN)
		assert.Equal(t, "seed.yaml", cfg.SeedFile)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("bad backend from env", func(t *testing.T) {
		t.Setenv("AGENDA_BACKEND", "redis")
		_, err := Load("")
		require.ErrorContains(t, err, "unknown backend")
	})
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Backend = BackendPostgres
	cfg.PostgresDSN = ""
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.LogLevel = "loud"
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.LogFormat = "xml"
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Backend = "MEMORY"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, BackendMemory, cfg.Backend)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{"AGENDA_LOG_LEVEL": "debug", "AGENDA_LOG_FORMAT": "json"}
	cfg := Default()
	cfg.applyEnv(func(k string) string { return env[k] })
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "8080", cfg.Port)
}
