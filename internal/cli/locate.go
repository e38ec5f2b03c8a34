package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DanishNasarudin/wvpac-pathfinder/geom"
	apperr "github.com/DanishNasarudin/wvpac-pathfinder/internal/errors"
)

// locateOpts holds the command-line flags for the locate command.
type locateOpts struct {
	snapshot string
	floor    int
	x, y     float64
	k        int
}

func (c *CLI) locateCommand() *cobra.Command {
	opts := locateOpts{k: 1}

	cmd := &cobra.Command{
		Use:     "locate",
		Short:   "Find the waypoints nearest to a map coordinate",
		Example: `  wayfind locate --snapshot venue.json --floor 1 --x 120 --y 48 -k 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocate(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.snapshot, "snapshot", "", "venue snapshot file (.json or .toml)")
	cmd.Flags().IntVar(&opts.floor, "floor", 0, "floor to search")
	cmd.Flags().Float64Var(&opts.x, "x", 0, "x coordinate")
	cmd.Flags().Float64Var(&opts.y, "y", 0, "y coordinate")
	cmd.Flags().IntVarP(&opts.k, "count", "k", 1, "number of waypoints to return")
	_ = cmd.MarkFlagRequired("snapshot")
	_ = cmd.MarkFlagRequired("floor")

	return cmd
}

func runLocate(cmd *cobra.Command, opts locateOpts) error {
	if opts.k < 1 {
		return apperr.New(apperr.ErrCodeInvalidInput, "-k must be at least 1, got %d", opts.k)
	}

	snap, err := loadSnapshot(opts.snapshot)
	if err != nil {
		return err
	}
	points, err := floorPoints(snap, opts.floor)
	if err != nil {
		return err
	}

	idx := geom.NewPointIndex(points)
	loggerFromContext(cmd.Context()).Debug("indexed floor", "floor", opts.floor, "points", idx.Len())

	out := cmd.OutOrStdout()
	for _, p := range idx.Nearest(opts.x, opts.y, opts.k) {
		name := p.Name
		if name == "" {
			name = "-"
		}
		d := geom.Distance(p, p.At(opts.x, opts.y))
		if _, err := fmt.Fprintf(out, "%d\t%s\t%s\t(%g, %g)\t%.2f\n", p.ID, p.Kind, name, p.X, p.Y, d); err != nil {
			return err
		}
	}

	return nil
}
