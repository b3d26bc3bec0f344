package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, `
game:
  num_decks: 2
  max_resplits: 2
  bust_warn_threshold: 0.6
history:
  enabled: true
  addr: "redis.local:6379"
  db: 3
sound:
  enabled: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Game.NumDecks)
	assert.Equal(t, 2, cfg.Game.MaxResplits)
	assert.InDelta(t, 0.6, cfg.Game.BustWarnThreshold, 1e-9)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "redis.local:6379", cfg.History.Addr)
	assert.Equal(t, 3, cfg.History.DB)
	assert.False(t, cfg.Sound.Enabled)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, `
history:
  enabled: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Game.NumDecks)
	assert.Equal(t, 3, cfg.Game.MaxResplits)
	assert.InDelta(t, 0.5, cfg.Game.BustWarnThreshold, 1e-9)
	assert.Equal(t, "localhost:6379", cfg.History.Addr)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "game: [not a mapping")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, 6, cfg.Game.NumDecks)
	assert.Equal(t, 3, cfg.Game.MaxResplits)
	assert.InDelta(t, 0.5, cfg.Game.BustWarnThreshold, 1e-9)
	assert.False(t, cfg.History.Enabled)
	assert.True(t, cfg.Sound.Enabled)
}
