package router

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/DanishNasarudin/wvpac-pathfinder/dijkstra"
	"github.com/DanishNasarudin/wvpac-pathfinder/geom"
	"github.com/DanishNasarudin/wvpac-pathfinder/navgraph"
	"github.com/DanishNasarudin/wvpac-pathfinder/venue"
)

// Router picks the shortest walking route between rooms or points.
// It holds only configuration and is safe for concurrent use.
type Router struct {
	options Options
}

// New returns a Router configured by opts.
func New(opts ...Option) *Router {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Parallelism < 1 {
		cfg.Parallelism = 1
	}

	return &Router{options: cfg}
}

// pair is one (start entry, end entry) combination to search.
type pair struct {
	from, to int
}

// BetweenRooms returns the shortest path from any entry point of startRoomID
// to any entry point of endRoomID.
//
// Steps:
//  1. Normalize edges with navgraph.MakeBidirectional, once per call.
//  2. Collect the entry points of both rooms.
//  3. Search every (start entry, end entry) pair, start entries outer.
//  4. Keep the candidate with the smallest geom.PathLength; on equal lengths
//     the pair enumerated first wins.
//
// A room without entry points, or rooms with no connecting route, yield an
// empty path and a nil error. Errors are returned only for cancellation or
// when the searcher fails for a reason other than dijkstra.ErrNoPath.
//
// Complexity: O(S·T) searches, S and T being the entry counts.
func (r *Router) BetweenRooms(ctx context.Context, startRoomID, endRoomID int, edges []venue.Edge, points []venue.Point) ([]venue.Point, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := r.options.Logger.With("from_room", startRoomID, "to_room", endRoomID)

	// 1) One normalized edge set for every pair.
	normalized := navgraph.MakeBidirectional(edges)

	// 2) Entry points.
	starts := venue.EntryPoints(startRoomID, points)
	ends := venue.EntryPoints(endRoomID, points)
	if len(starts) == 0 || len(ends) == 0 {
		logger.Debug("room has no entry points", "start_entries", len(starts), "end_entries", len(ends))
		return nil, nil
	}

	// 3) Enumerate pairs, start entries outer.
	pairs := make([]pair, 0, len(starts)*len(ends))
	for _, s := range starts {
		for _, e := range ends {
			pairs = append(pairs, pair{from: s.ID, to: e.ID})
		}
	}

	candidates, err := r.evaluate(ctx, pairs, normalized, points)
	if err != nil {
		return nil, err
	}

	// 4) Reduce in enumeration order; strict less-than keeps the first of equals.
	var best []venue.Point
	bestLen := math.Inf(1)
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if l := geom.PathLength(c); l < bestLen {
			best, bestLen = c, l
		}
	}
	if best == nil {
		logger.Debug("no route between rooms", "pairs", len(pairs))
		return nil, nil
	}
	logger.Debug("route selected", "from", best[0].ID, "to", best[len(best)-1].ID, "length", bestLen, "pairs", len(pairs))

	return best, nil
}

// BetweenPoints returns the shortest path between two point IDs over the
// normalized edge set. An unreachable or missing endpoint yields an empty
// path and a nil error; an empty point set returns dijkstra.ErrEmptyPoints.
func (r *Router) BetweenPoints(ctx context.Context, startID, endID int, edges []venue.Edge, points []venue.Point) ([]venue.Point, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	path, err := r.options.Searcher.ShortestPath(ctx, startID, endID, navgraph.MakeBidirectional(edges), points)
	switch {
	case err == nil:
		return path, nil
	case errors.Is(err, dijkstra.ErrNoPath):
		r.options.Logger.Debug("no route between points", "from", startID, "to", endID)
		return nil, nil
	default:
		return nil, err
	}
}

// evaluate searches every pair and returns the candidates indexed like pairs.
// A nil entry means the pair has no route.
func (r *Router) evaluate(ctx context.Context, pairs []pair, edges []venue.Edge, points []venue.Point) ([][]venue.Point, error) {
	candidates := make([][]venue.Point, len(pairs))

	if r.options.Parallelism == 1 || len(pairs) == 1 {
		for i, p := range pairs {
			path, err := r.search(ctx, p, edges, points)
			if err != nil {
				return nil, err
			}
			candidates[i] = path
		}
		return candidates, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.options.Parallelism)
	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			path, err := r.search(gctx, p, edges, points)
			if err != nil {
				return err
			}
			candidates[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return candidates, nil
}

// search runs one pair and folds dijkstra.ErrNoPath into a nil path.
func (r *Router) search(ctx context.Context, p pair, edges []venue.Edge, points []venue.Point) ([]venue.Point, error) {
	path, err := r.options.Searcher.ShortestPath(ctx, p.from, p.to, edges, points)
	if err == nil {
		return path, nil
	}
	if errors.Is(err, dijkstra.ErrNoPath) {
		return nil, nil
	}

	return nil, fmt.Errorf("router: entry pair %d→%d: %w", p.from, p.to, err)
}
