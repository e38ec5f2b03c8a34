package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanishNasarudin/wvpac-pathfinder/dijkstra"
	"github.com/DanishNasarudin/wvpac-pathfinder/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wayfind.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	s, err := cfg.SearchStrategy()
	require.NoError(t, err)
	assert.Equal(t, dijkstra.StrategyLinear, s)

	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, lvl)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
[search]
strategy = "heap"

[router]
parallelism = 4

[log]
level = "debug"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	s, err := cfg.SearchStrategy()
	require.NoError(t, err)
	assert.Equal(t, dijkstra.StrategyHeap, s)
	assert.Equal(t, 4, cfg.Router.Parallelism)
	assert.Equal(t, config.DefaultAddr, cfg.Server.Addr, "unset keys keep defaults")

	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, lvl)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "[search\nstrategy = 1"},
		{"strategy", "[search]\nstrategy = \"astar\""},
		{"level", "[log]\nlevel = \"loud\""},
		{"parallelism", "[router]\nparallelism = -2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
