package geom

import (
	"errors"
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"github.com/DanishNasarudin/wvpac-pathfinder/venue"
)

// pointTolerance is the half-width of the box stored for each point.
// rtreego rejects zero-length rectangles.
const pointTolerance = 1e-6

// pointEntry wraps a venue point for R-tree storage.
type pointEntry struct {
	point venue.Point
	box   rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *pointEntry) Bounds() rtreego.Rect {
	return e.box
}

// PointIndex answers nearest-point and window queries over a set of points,
// typically the points of one floor. It is read-only after construction and
// safe for concurrent queries.
type PointIndex struct {
	tree *rtreego.Rtree
	size int
}

// NewPointIndex builds an index over points. Points whose box cannot be built
// (non-finite coordinates) are left out; Snapshot.Validate rejects those
// earlier.
func NewPointIndex(points []venue.Point) *PointIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	size := 0
	for _, p := range points {
		box, err := boxAround(p.X, p.Y, pointTolerance)
		if err != nil {
			continue
		}
		tree.Insert(&pointEntry{point: p, box: box})
		size++
	}

	return &PointIndex{tree: tree, size: size}
}

// Len returns the number of indexed points.
func (idx *PointIndex) Len() int {
	return idx.size
}

// Nearest returns up to k points closest to (x, y), nearest first. Equal
// distances are ordered by point ID.
func (idx *PointIndex) Nearest(x, y float64, k int) []venue.Point {
	if k <= 0 || idx.size == 0 {
		return nil
	}
	if k > idx.size {
		k = idx.size
	}

	found := idx.tree.NearestNeighbors(k, rtreego.Point{x, y})
	out := make([]venue.Point, 0, len(found))
	for _, s := range found {
		if s == nil {
			continue
		}
		out = append(out, s.(*pointEntry).point)
	}

	// The tree ranks by box distance; re-rank by exact point distance.
	target := orb.Point{x, y}
	sort.SliceStable(out, func(i, j int) bool {
		di := squaredDistance(out[i].Coord(), target)
		dj := squaredDistance(out[j].Coord(), target)
		if di != dj {
			return di < dj
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// Within returns the points inside bound (inclusive), ordered by point ID.
func (idx *PointIndex) Within(bound orb.Bound) []venue.Point {
	if idx.size == 0 {
		return nil
	}

	box, err := rtreego.NewRect(
		rtreego.Point{bound.Min[0] - pointTolerance, bound.Min[1] - pointTolerance},
		[]float64{
			bound.Max[0] - bound.Min[0] + 2*pointTolerance,
			bound.Max[1] - bound.Min[1] + 2*pointTolerance,
		},
	)
	if err != nil {
		return nil
	}

	found := idx.tree.SearchIntersect(box)
	out := make([]venue.Point, 0, len(found))
	for _, s := range found {
		p := s.(*pointEntry).point
		if bound.Contains(p.Coord()) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

var errNotFinite = errors.New("geom: coordinate is not finite")

// boxAround returns the square of half-width tol centred on (x, y).
func boxAround(x, y, tol float64) (rtreego.Rect, error) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return rtreego.Rect{}, errNotFinite
	}

	return rtreego.NewRect(
		rtreego.Point{x - tol, y - tol},
		[]float64{2 * tol, 2 * tol},
	)
}

func squaredDistance(a, b orb.Point) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	return dx*dx + dy*dy
}
