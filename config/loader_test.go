package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TB_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.IndexBackend)
	assert.Equal(t, 3, cfg.TopK)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TB_ADDR", ":9090")
	t.Setenv("TB_TOP_K", "10")
	t.Setenv("TB_INDEX_BACKEND", "brute")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 10, cfg.TopK)
	assert.Equal(t, "brute", cfg.IndexBackend)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":7070\"\ntop_k: 4\n"), 0644))
	t.Setenv("TB_CONFIG", path)
	t.Setenv("TB_TOP_K", "12")

	cfg, err := Load()
	require.NoError(t, err)
	// File overrides defaults, env overrides file
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, 12, cfg.TopK)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("TB_ADDR", "")
	_, err := Load()
	assert.Error(t, err)
}
