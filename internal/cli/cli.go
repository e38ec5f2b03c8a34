// Package cli implements the wayfind command-line interface.
//
// # Commands
//
//   - route:    shortest route between two rooms (or points), densified and
//     optionally cut to one floor, as JSON or GeoJSON
//   - locate:   nearest waypoints to a coordinate on a floor
//   - validate: check a snapshot file and report dangling references
//   - serve:    read-only HTTP endpoint over a snapshot
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging; otherwise the
// level comes from the config file. Loggers are passed through
// context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/DanishNasarudin/wvpac-pathfinder/dijkstra"
	"github.com/DanishNasarudin/wvpac-pathfinder/internal/config"
	apperr "github.com/DanishNasarudin/wvpac-pathfinder/internal/errors"
	"github.com/DanishNasarudin/wvpac-pathfinder/internal/snapshotio"
	"github.com/DanishNasarudin/wvpac-pathfinder/router"
	"github.com/DanishNasarudin/wvpac-pathfinder/venue"
)

const appName = "wayfind"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	config     config.Config
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Wayfind computes walking routes through a multi-floor venue",
		Long:          `Wayfind loads a venue snapshot (points, edges, rooms) and computes shortest walking routes between rooms, ready to draw on a floor map.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return apperr.Wrap(apperr.ErrCodeInvalidInput, err, "load config")
			}
			c.config = cfg

			level, _ := cfg.LogLevel()
			if c.verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))

			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a wayfind.toml config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.routeCommand())
	root.AddCommand(c.locateCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.serveCommand())

	return root
}

// newRouter builds a router from the loaded configuration.
func (c *CLI) newRouter(logger *log.Logger) (*router.Router, error) {
	strategy, err := c.config.SearchStrategy()
	if err != nil {
		return nil, apperr.Classify(err)
	}

	return router.New(
		router.WithSearcher(dijkstra.New(dijkstra.WithStrategy(strategy), dijkstra.WithLogger(logger))),
		router.WithLogger(logger),
		router.WithParallelism(c.config.Router.Parallelism),
	), nil
}

// loadSnapshot reads path and returns coded errors.
func loadSnapshot(path string) (venue.Snapshot, error) {
	if path == "" {
		return venue.Snapshot{}, apperr.New(apperr.ErrCodeInvalidInput, "--snapshot is required")
	}
	snap, err := snapshotio.Load(path)
	if err != nil {
		return venue.Snapshot{}, apperr.Classify(err)
	}
	return snap, nil
}

// floorPoints returns the points on floorID. The floor must be listed in the
// snapshot or carry at least one point.
func floorPoints(snap venue.Snapshot, floorID int) ([]venue.Point, error) {
	points := venue.FloorPoints(floorID, snap.Points)
	if _, listed := snap.Floor(floorID); !listed && len(points) == 0 {
		return nil, apperr.New(apperr.ErrCodeNotFound, "floor %d not found", floorID)
	}
	return points, nil
}
