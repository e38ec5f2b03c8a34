package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperr "github.com/DanishNasarudin/wvpac-pathfinder/internal/errors"
	"github.com/DanishNasarudin/wvpac-pathfinder/internal/snapshotio"
	"github.com/DanishNasarudin/wvpac-pathfinder/navpath"
	"github.com/DanishNasarudin/wvpac-pathfinder/venue"
)

const (
	formatJSON    = "json"
	formatGeoJSON = "geojson"
)

// routeOpts holds the command-line flags for the route command.
type routeOpts struct {
	snapshot string // snapshot file (.json or .toml)
	from     int    // start room ID, or point ID with --points
	to       int    // end room ID, or point ID with --points
	floor    int    // floor to cut the route to (optional)
	points   bool   // treat from/to as point IDs
	format   string // json or geojson
}

func (c *CLI) routeCommand() *cobra.Command {
	opts := routeOpts{format: formatJSON}

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Compute the walking route between two rooms",
		Example: `  wayfind route --snapshot venue.json --from 10 --to 20
  wayfind route --snapshot venue.toml --from 10 --to 20 --floor 2 --format geojson
  wayfind route --snapshot venue.json --points --from 1 --to 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRoute(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.snapshot, "snapshot", "", "venue snapshot file (.json or .toml)")
	cmd.Flags().IntVar(&opts.from, "from", 0, "start room ID (point ID with --points)")
	cmd.Flags().IntVar(&opts.to, "to", 0, "destination room ID (point ID with --points)")
	cmd.Flags().IntVar(&opts.floor, "floor", 0, "only output the part of the route on this floor")
	cmd.Flags().BoolVar(&opts.points, "points", false, "route between point IDs instead of room IDs")
	cmd.Flags().StringVar(&opts.format, "format", formatJSON, "output format: json or geojson")
	_ = cmd.MarkFlagRequired("snapshot")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (c *CLI) runRoute(cmd *cobra.Command, opts routeOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	format := strings.ToLower(opts.format)
	if format != formatJSON && format != formatGeoJSON {
		return apperr.New(apperr.ErrCodeInvalidFormat, "format must be json or geojson, got %q", opts.format)
	}

	snap, err := loadSnapshot(opts.snapshot)
	if err != nil {
		return err
	}
	current := snap.Points
	if cmd.Flags().Changed("floor") {
		if current, err = floorPoints(snap, opts.floor); err != nil {
			return err
		}
	}

	r, err := c.newRouter(logger)
	if err != nil {
		return err
	}

	p := newProgress(logger)
	compute := navpath.ComputeRenderPath
	if opts.points {
		compute = navpath.ComputePointRenderPath
	}
	path, err := compute(ctx, opts.from, opts.to, snap.Edges, snap.Points, current, navpath.WithRouter(r))
	if err != nil {
		return apperr.Classify(err)
	}
	if len(path) == 0 {
		logger.Warn("nothing to draw", "from", opts.from, "to", opts.to)
	} else {
		p.done(fmt.Sprintf("Computed route with %d samples", len(path)))
	}

	return writePath(cmd, format, path)
}

func writePath(cmd *cobra.Command, format string, path []venue.Point) error {
	var err error
	if format == formatGeoJSON {
		err = snapshotio.WritePathGeoJSON(cmd.OutOrStdout(), path)
	} else {
		err = snapshotio.WritePathJSON(cmd.OutOrStdout(), path)
	}
	if err != nil {
		return apperr.Wrap(apperr.ErrCodeInternal, err, "write route")
	}
	return nil
}
