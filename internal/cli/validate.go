package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	apperr "github.com/DanishNasarudin/wvpac-pathfinder/internal/errors"
	"github.com/DanishNasarudin/wvpac-pathfinder/navgraph"
	"github.com/DanishNasarudin/wvpac-pathfinder/venue"
)

func (c *CLI) validateCommand() *cobra.Command {
	var snapshot string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a venue snapshot",
		Long: `Validate decodes a snapshot and checks it: unique point and edge IDs, known point
types, finite coordinates, and floor and room references. Edges pointing at
missing points, and rooms cut off from the largest connected set of
waypoints, are reported as warnings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			snap, err := loadSnapshot(snapshot)
			if err != nil {
				return err
			}

			dangling := snap.DanglingEdges()
			for _, e := range dangling {
				logger.Warn("edge references a missing point", "edge", e.ID, "from", e.FromID, "to", e.ToID)
			}

			components, err := navgraph.Components(cmd.Context(), navgraph.New(snap.Points, snap.Edges))
			if err != nil {
				return apperr.Classify(err)
			}
			for _, roomID := range isolatedRooms(snap, components) {
				logger.Warn("room is not connected to the main walkway network", "room", roomID)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"ok: %d floors, %d rooms, %d points, %d edges (%d inter-floor, %d dangling, %d components)\n",
				len(snap.Floors), len(snap.Rooms), len(snap.Points), len(snap.Edges),
				len(snap.InterFloorEdges()), len(dangling), len(components),
			)
			return err
		},
	}

	cmd.Flags().StringVar(&snapshot, "snapshot", "", "venue snapshot file (.json or .toml)")
	_ = cmd.MarkFlagRequired("snapshot")

	return cmd
}

// isolatedRooms returns, sorted, the IDs of rooms that have entry points but
// none of them in the largest component.
func isolatedRooms(snap venue.Snapshot, components [][]int) []int {
	if len(components) == 0 {
		return nil
	}
	largest := components[0]
	for _, c := range components[1:] {
		if len(c) > len(largest) {
			largest = c
		}
	}
	inLargest := make(map[int]bool, len(largest))
	for _, id := range largest {
		inLargest[id] = true
	}

	connected := make(map[int]bool)
	for _, p := range snap.Points {
		if p.RoomID == nil {
			continue
		}
		if _, ok := connected[*p.RoomID]; !ok {
			connected[*p.RoomID] = false
		}
		if inLargest[p.ID] {
			connected[*p.RoomID] = true
		}
	}

	var out []int
	for roomID, ok := range connected {
		if !ok {
			out = append(out, roomID)
		}
	}
	sort.Ints(out)

	return out
}
