package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordrep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "exact", cfg.Strategy)
	assert.Nil(t, cfg.Seed)
	assert.False(t, cfg.Minimize)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeFile(t, `
strategy: fast
seed: 42
minimize: true
export_path: out.txt
log:
  level: debug
  format: json
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "fast", cfg.Strategy)
		require.NotNil(t, cfg.Seed)
		assert.Equal(t, uint64(42), *cfg.Seed)
		assert.True(t, cfg.Minimize)
		assert.Equal(t, "out.txt", cfg.ExportPath)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := writeFile(t, "strategy: fast\n")
		t.Setenv("WORDREP_STRATEGY", "EXACT")
		t.Setenv("WORDREP_SEED", "7")
		t.Setenv("WORDREP_METRICS_PATH", "metrics.prom")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "exact", cfg.Strategy)
		require.NotNil(t, cfg.Seed)
		assert.Equal(t, uint64(7), *cfg.Seed)
		assert.Equal(t, "metrics.prom", cfg.MetricsPath)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid strategy", func(t *testing.T) {
		path := writeFile(t, "strategy: greedy\n")
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("invalid env seed", func(t *testing.T) {
		t.Setenv("WORDREP_SEED", "-1")
		_, err := Load("")
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestLoadEnv(t *testing.T) {
	env := map[string]string{
		"WORDREP_MINIMIZE":   "true",
		"WORDREP_LOG_LEVEL":  "WARN",
		"WORDREP_LOG_FORMAT": "json",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	cfg := Default()
	require.NoError(t, loadEnv(&cfg, lookup))
	assert.True(t, cfg.Minimize)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "exact", cfg.Strategy)
}
