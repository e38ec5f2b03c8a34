package navpath

import (
	"context"

	"github.com/DanishNasarudin/wvpac-pathfinder/polyline"
	"github.com/DanishNasarudin/wvpac-pathfinder/router"
	"github.com/DanishNasarudin/wvpac-pathfinder/venue"
)

// Options configures the render-path pipeline.
//
// Router – route selection. Default router.New().
type Options struct {
	Router *router.Router
}

// Option represents a functional option for the render-path pipeline.
type Option func(*Options)

// WithRouter sets the router used to pick the waypoint route. A nil router is ignored.
func WithRouter(r *router.Router) Option {
	return func(o *Options) {
		if r != nil {
			o.Router = r
		}
	}
}

// DefaultOptions returns Options with a default router.
func DefaultOptions() Options {
	return Options{Router: router.New()}
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// ComputeRenderPath returns the part of the shortest room-to-room route that
// lies on the floor being viewed, densified for drawing.
//
// Steps:
//  1. router.BetweenRooms over the whole snapshot (all floors).
//  2. polyline.Densify on the chosen waypoints.
//  3. polyline.FilterToFloor against currentFloorPoints.
//
// An empty result means there is nothing to draw on this floor: no route,
// a room without entry points, or a route that never touches the floor.
// Errors come only from cancellation or a failing searcher.
func ComputeRenderPath(ctx context.Context, startRoomID, endRoomID int, allEdges []venue.Edge, allPoints, currentFloorPoints []venue.Point, opts ...Option) ([]venue.Point, error) {
	cfg := resolve(opts)

	route, err := cfg.Router.BetweenRooms(ctx, startRoomID, endRoomID, allEdges, allPoints)
	if err != nil {
		return nil, err
	}

	return polyline.FilterToFloor(polyline.Densify(route), currentFloorPoints), nil
}

// ComputePointRenderPath is ComputeRenderPath between two waypoints instead
// of two rooms. An empty point set returns dijkstra.ErrEmptyPoints.
func ComputePointRenderPath(ctx context.Context, startID, endID int, allEdges []venue.Edge, allPoints, currentFloorPoints []venue.Point, opts ...Option) ([]venue.Point, error) {
	cfg := resolve(opts)

	route, err := cfg.Router.BetweenPoints(ctx, startID, endID, allEdges, allPoints)
	if err != nil {
		return nil, err
	}

	return polyline.FilterToFloor(polyline.Densify(route), currentFloorPoints), nil
}
