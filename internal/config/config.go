// Package config loads the wayfind configuration file.
//
// The file is TOML:
//
//	[search]
//	strategy = "linear"   # or "heap"
//
//	[router]
//	parallelism = 1
//
//	[server]
//	addr = ":8080"
//
//	[log]
//	level = "info"        # debug, info, warn, error
//
// Missing keys keep their defaults. Command-line flags override file values.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/DanishNasarudin/wvpac-pathfinder/dijkstra"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":8080"

// Config is the decoded configuration file.
type Config struct {
	Search SearchConfig `toml:"search"`
	Router RouterConfig `toml:"router"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

// SearchConfig selects the shortest-path strategy.
type SearchConfig struct {
	Strategy string `toml:"strategy"`
}

// RouterConfig tunes room routing.
type RouterConfig struct {
	Parallelism int `toml:"parallelism"`
}

// ServerConfig configures the HTTP endpoint.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// LogConfig sets the log level.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Search: SearchConfig{Strategy: dijkstra.StrategyLinear.String()},
		Router: RouterConfig{Parallelism: 1},
		Server: ServerConfig{Addr: DefaultAddr},
		Log:    LogConfig{Level: log.InfoLevel.String()},
	}
}

// Load reads path on top of Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every value can be turned into a runtime setting.
func (c Config) Validate() error {
	if _, err := c.SearchStrategy(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Router.Parallelism < 0 {
		return fmt.Errorf("router.parallelism must not be negative, got %d", c.Router.Parallelism)
	}

	return nil
}

// SearchStrategy parses Search.Strategy.
func (c Config) SearchStrategy() (dijkstra.Strategy, error) {
	return dijkstra.ParseStrategy(c.Search.Strategy)
}

// LogLevel parses Log.Level. An empty level means info.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(c.Log.Level)
}
