// Package geom provides the planar metric used by the pathfinding engine and a
// spatial index over venue points.
package geom

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/DanishNasarudin/wvpac-pathfinder/venue"
)

// Distance returns the Euclidean distance between the planar coordinates of
// p1 and p2. It is symmetric, non-negative, and zero for coincident points.
func Distance(p1, p2 venue.Point) float64 {
	return planar.Distance(p1.Coord(), p2.Coord())
}

// PathLength returns the sum of consecutive distances along path.
// Paths with fewer than two points have length 0.
func PathLength(path []venue.Point) float64 {
	if len(path) < 2 {
		return 0
	}

	return planar.Length(LineString(path))
}

// LineString converts path into an orb.LineString in the same order.
func LineString(path []venue.Point) orb.LineString {
	ls := make(orb.LineString, len(path))
	for i, p := range path {
		ls[i] = p.Coord()
	}

	return ls
}

// Bound returns the axis-aligned bounding box of path.
// An empty path yields the zero bound.
func Bound(path []venue.Point) orb.Bound {
	if len(path) == 0 {
		return orb.Bound{}
	}

	return LineString(path).Bound()
}
