package navpath_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanishNasarudin/wvpac-pathfinder/dijkstra"
	"github.com/DanishNasarudin/wvpac-pathfinder/navpath"
	"github.com/DanishNasarudin/wvpac-pathfinder/router"
	"github.com/DanishNasarudin/wvpac-pathfinder/venue"
)

func quietRouter(opts ...router.Option) *router.Router {
	logger := log.New(&bytes.Buffer{})
	base := []router.Option{router.WithLogger(logger), router.WithSearcher(dijkstra.New(dijkstra.WithLogger(logger)))}
	return router.New(append(base, opts...)...)
}

func TestComputeRenderPath_StraightCorridor(t *testing.T) {
	points := []venue.Point{
		{ID: 1, Kind: venue.KindPoint, X: 0, Y: 0, FloorID: 1, RoomID: venue.IntPtr(10)},
		{ID: 2, Kind: venue.KindPoint, X: 10, Y: 0, FloorID: 1, RoomID: venue.IntPtr(20)},
	}
	edges := []venue.Edge{{ID: 1, FromID: 1, ToID: 2, FloorID: venue.IntPtr(1)}}

	got, err := navpath.ComputeRenderPath(context.Background(), 10, 20, edges, points, points, navpath.WithRouter(quietRouter()))
	require.NoError(t, err)
	require.Len(t, got, 11)
	for i, p := range got {
		assert.InDelta(t, float64(i), p.X, 1e-12)
		assert.Zero(t, p.Y)
		assert.Equal(t, 1, p.ID, "samples inherit the origin waypoint")
	}
}

// twoFloors: room 10 on floor 1, room 20 on floor 2, joined by a stair whose
// landings (3 and 4) share coordinates.
func twoFloors() ([]venue.Edge, []venue.Point) {
	points := []venue.Point{
		{ID: 1, Kind: venue.KindPoint, X: 0, Y: 0, FloorID: 1, RoomID: venue.IntPtr(10)},
		{ID: 3, Kind: venue.KindJunction, X: 3, Y: 0, FloorID: 1},
		{ID: 4, Kind: venue.KindJunction, X: 3, Y: 0, FloorID: 2},
		{ID: 2, Kind: venue.KindPoint, X: 3, Y: 2, FloorID: 2, RoomID: venue.IntPtr(20)},
	}
	edges := []venue.Edge{
		{ID: 1, FromID: 1, ToID: 3, FloorID: venue.IntPtr(1)},
		{ID: 2, FromID: 3, ToID: 4}, // stairs
		{ID: 3, FromID: 2, ToID: 4, FloorID: venue.IntPtr(2)},
	}
	return edges, points
}

func TestComputeRenderPath_CrossFloor(t *testing.T) {
	edges, points := twoFloors()
	r := quietRouter(router.WithParallelism(2))

	floor1, err := navpath.ComputeRenderPath(context.Background(), 10, 20, edges, points, venue.FloorPoints(1, points), navpath.WithRouter(r))
	require.NoError(t, err)
	require.Len(t, floor1, 4)
	assert.Equal(t, 3.0, floor1[3].X)

	floor2, err := navpath.ComputeRenderPath(context.Background(), 10, 20, edges, points, venue.FloorPoints(2, points), navpath.WithRouter(r))
	require.NoError(t, err)
	require.Len(t, floor2, 3)
	for _, p := range floor2 {
		assert.Equal(t, 4, p.ID)
	}
}

func TestComputeRenderPath_NothingToDraw(t *testing.T) {
	edges, points := twoFloors()
	r := navpath.WithRouter(quietRouter())

	got, err := navpath.ComputeRenderPath(context.Background(), 10, 99, edges, points, points, r)
	require.NoError(t, err)
	assert.Empty(t, got, "unknown room")

	got, err = navpath.ComputeRenderPath(context.Background(), 10, 20, nil, points, points, r)
	require.NoError(t, err)
	assert.Empty(t, got, "no edges")

	got, err = navpath.ComputeRenderPath(context.Background(), 10, 20, edges, points, nil, r)
	require.NoError(t, err)
	assert.Empty(t, got, "no floor points")
}

func TestComputeRenderPath_Cancelled(t *testing.T) {
	edges, points := twoFloors()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := navpath.ComputeRenderPath(ctx, 10, 20, edges, points, points, navpath.WithRouter(quietRouter()))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComputePointRenderPath(t *testing.T) {
	edges, points := twoFloors()
	r := navpath.WithRouter(quietRouter())

	got, err := navpath.ComputePointRenderPath(context.Background(), 1, 3, edges, points, points, r)
	require.NoError(t, err)
	assert.Len(t, got, 4)

	got, err = navpath.ComputePointRenderPath(context.Background(), 1, 42, edges, points, points, r)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = navpath.ComputePointRenderPath(context.Background(), 1, 3, edges, nil, points, r)
	require.ErrorIs(t, err, dijkstra.ErrEmptyPoints)
}
