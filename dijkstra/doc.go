// Package dijkstra implements single-source shortest-path search over a venue's
// navigation graph.
//
// Overview:
//
//   - The search finds the minimum-weight path between two point IDs. Edge
//     weight is the Euclidean distance between the edge's endpoints
//     (geom.Distance), so all weights are non-negative and zero-length edges
//     between coincident points are legal.
//   - Edges are followed in their stored direction only. Normalize them with
//     navgraph.MakeBidirectional before searching a walkable venue.
//   - The algorithm sits behind the Searcher interface so callers such as the
//     room router do not depend on how the next point is selected.
//
// Strategies:
//
//   - StrategyLinear (default): every iteration scans the unsettled points for
//     the smallest tentative distance. O(P² + E). For a few hundred points
//     this is as fast as anything else and has no allocation churn.
//   - StrategyHeap: binary min-heap with lazy decrease-key. O((P + E) log P).
//
// Both strategies break ties between equally distant points by their position
// in the input slice, so they settle points in the same order and return the
// same path. Callers should still rely only on "a shortest path", not on a
// particular one among equals.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyPoints: the point collection is empty. This is invalid input; it
//     is logged at error level and returned.
//   - ErrNoPath: the destination is unreachable, or an endpoint is absent from
//     the snapshot. This is an ordinary outcome and is not logged.
//   - Edges whose endpoints are missing are skipped with a warn-level log line;
//     partial snapshots degrade instead of failing.
//   - ctx.Err() if the context is cancelled. The context is checked once per
//     settled point, the only unbounded loop in the engine.
//
// API reference:
//
//	func New(opts ...Option) Searcher
//	func ShortestPath(ctx, startID, endID, edges, points, opts...) ([]venue.Point, error)
//
//	  - WithStrategy(Strategy): StrategyLinear or StrategyHeap.
//	  - WithLogger(*log.Logger): diagnostics sink (github.com/charmbracelet/log).
//
// Thread safety:
//
//   - A Searcher holds only its options; each call allocates its own state.
//     Concurrent calls are safe as long as callers do not mutate the snapshot.
package dijkstra
