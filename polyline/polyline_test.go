package polyline_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanishNasarudin/wvpac-pathfinder/polyline"
	"github.com/DanishNasarudin/wvpac-pathfinder/venue"
)

func wp(id int, x, y float64, floor int) venue.Point {
	return venue.Point{ID: id, Kind: venue.KindPoint, Name: "wp", X: x, Y: y, FloorID: floor, RoomID: venue.IntPtr(id * 10)}
}

func coords(path []venue.Point) [][2]float64 {
	out := make([][2]float64, len(path))
	for i, p := range path {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}

func TestSegment_Horizontal(t *testing.T) {
	got := polyline.Segment(wp(1, 0, 0, 1), wp(2, 4, 0, 1))
	assert.Equal(t, [][2]float64{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}, coords(got))
}

func TestSegment_DominantAxis(t *testing.T) {
	// |dy| dominates: four steps, x advances half a unit each.
	got := polyline.Segment(wp(1, 0, 0, 1), wp(2, -2, 4, 1))
	assert.Equal(t, [][2]float64{{0, 0}, {-0.5, 1}, {-1, 2}, {-1.5, 3}, {-2, 4}}, coords(got))
}

func TestSegment_FractionalSteps(t *testing.T) {
	// 2.5 steps: samples at i = 0, 1, 2; b itself is not reached.
	got := polyline.Segment(wp(1, 0, 0, 1), wp(2, 2.5, 0, 1))
	require.Len(t, got, 3)
	assert.InDelta(t, 2.0, got[2].X, 1e-12)
}

func TestSegment_CoincidentPoints(t *testing.T) {
	got := polyline.Segment(wp(1, 3, 3, 1), wp(2, 3, 3, 2))
	assert.Empty(t, got)
}

func TestSegment_InheritsOrigin(t *testing.T) {
	a, b := wp(7, 0, 0, 1), wp(8, 0, 3, 2)
	for _, p := range polyline.Segment(a, b) {
		assert.Equal(t, a.ID, p.ID)
		assert.Equal(t, a.Name, p.Name)
		assert.Equal(t, a.Kind, p.Kind)
		assert.Equal(t, a.FloorID, p.FloorID)
		assert.Equal(t, a.RoomID, p.RoomID)
	}
}

func TestDensify(t *testing.T) {
	path := []venue.Point{wp(1, 0, 0, 1), wp(2, 2, 0, 1), wp(3, 2, 2, 1)}
	got := polyline.Densify(path)

	// Boundary sample (2,0) appears twice: end of leg 1, start of leg 2.
	assert.Equal(t, [][2]float64{{0, 0}, {1, 0}, {2, 0}, {2, 0}, {2, 1}, {2, 2}}, coords(got))
	assert.Equal(t, 1, got[2].ID)
	assert.Equal(t, 2, got[3].ID)
}

func TestDensify_NoNaN(t *testing.T) {
	path := []venue.Point{wp(1, 1, 1, 1), wp(2, 1, 1, 1), wp(3, 1, 1, 2)}
	got := polyline.Densify(path)
	assert.Empty(t, got)

	path = append(path, wp(4, 1, 3, 2))
	for _, p := range polyline.Densify(path) {
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y))
	}
}

func TestDensify_Short(t *testing.T) {
	assert.Nil(t, polyline.Densify(nil))
	assert.Nil(t, polyline.Densify([]venue.Point{wp(1, 0, 0, 1)}))
}

func TestDensify_DoesNotMutateInput(t *testing.T) {
	path := []venue.Point{wp(1, 0, 0, 1), wp(2, 3, 0, 1)}
	before := append([]venue.Point(nil), path...)
	_ = polyline.Densify(path)
	assert.Equal(t, before, path)
}

func TestFilterToFloor(t *testing.T) {
	path := polyline.Densify([]venue.Point{wp(1, 0, 0, 1), wp(2, 2, 0, 1), wp(3, 2, 0, 2), wp(4, 2, 2, 2)})
	floor2 := []venue.Point{wp(3, 2, 0, 2), wp(4, 2, 2, 2)}

	got := polyline.FilterToFloor(path, floor2)
	for _, p := range got {
		assert.Contains(t, []int{3, 4}, p.ID)
	}
	// Leg 2→3 is zero length; only leg 3→4 contributes, all samples from point 3.
	assert.Equal(t, [][2]float64{{2, 0}, {2, 1}, {2, 2}}, coords(got))

	again := polyline.FilterToFloor(got, floor2)
	assert.Equal(t, got, again, "filter is idempotent")
}

func TestFilterToFloor_Empty(t *testing.T) {
	path := []venue.Point{wp(1, 0, 0, 1)}
	assert.Empty(t, polyline.FilterToFloor(path, nil))
	assert.Empty(t, polyline.FilterToFloor(nil, path))
}
