package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Empty(t, cfg.Presets)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ORBITSCORE_LISTEN_ADDR", ":9191")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9191", cfg.Server.ListenAddr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadYAMLFileWithExtraPreset(t *testing.T) {
	raw := `
server:
  listen_addr: ":7070"
log:
  level: warn
presets:
  megaconstellation:
    satellite_count: 400
    mission_years: 10
    expected_revenue_per_satellite: 5
    cost_per_satellite: 2.5
    annual_opex_per_satellite: 0.4
    lifetime_years: 12
    eol_strategy: none
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.ListenAddr)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "unset values still default")

	pc, ok := cfg.Presets["megaconstellation"]
	require.True(t, ok)

	p := pc.Parameters()
	require.NoError(t, p.Validate())
	assert.Equal(t, 400, p.SatelliteCount)
	assert.Equal(t, 12, p.LifetimeYears)
}

func TestLoadEnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  listen_addr: \":7070\"\n"), 0o644))

	t.Setenv("ORBITSCORE_LISTEN_ADDR", ":6060")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.Server.ListenAddr)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
