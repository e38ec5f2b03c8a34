package polyline

import (
	"math"

	"github.com/DanishNasarudin/wvpac-pathfinder/venue"
)

// Segment interpolates the straight line from a to b.
//
// The step count is the dominant axis delta, steps = max(|dx|, |dy|), so a
// segment drawn on a unit grid gets one sample per grid unit. Samples are
// emitted for integer i = 0, 1, … while i <= steps at a + i/steps·(b − a).
// For integral deltas the last sample is b itself; for fractional ones the
// walk stops at the last whole step before b.
//
// Every sample is a copy of a with only X and Y replaced: interpolated points
// keep the origin's ID, name, kind, floor and room.
//
// A zero-length segment (a and b coincide) yields nil. Non-finite deltas also
// yield nil.
func Segment(a, b venue.Point) []venue.Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 || math.IsNaN(steps) || math.IsInf(steps, 0) {
		return nil
	}

	stepX, stepY := dx/steps, dy/steps
	out := make([]venue.Point, 0, int(steps)+1)
	for i := 0; float64(i) <= steps; i++ {
		p := a
		p.X = a.X + float64(i)*stepX
		p.Y = a.Y + float64(i)*stepY
		out = append(out, p)
	}

	return out
}

// Densify expands waypoints into a finely sampled polyline by concatenating
// Segment for every consecutive pair.
//
// Boundary samples are not deduplicated: the last sample of one segment and
// the first of the next usually coincide and both are kept. A path with fewer
// than two waypoints has no segments and yields nil.
//
// Complexity: O(L) where L is the total Chebyshev length of the path.
func Densify(waypoints []venue.Point) []venue.Point {
	if len(waypoints) < 2 {
		return nil
	}

	var out []venue.Point
	for i := 0; i+1 < len(waypoints); i++ {
		out = append(out, Segment(waypoints[i], waypoints[i+1])...)
	}

	return out
}
