// Package router selects the shortest route between two rooms of a venue.
//
// A room is reachable through any of its entry points: the points whose
// RoomID is the room. The router normalizes the edge set once, searches every
// (start entry, end entry) combination with a dijkstra.Searcher and keeps the
// shortest candidate by total Euclidean length.
//
// Behaviour worth knowing:
//
//   - An entry point with no edges (a dead end) only removes its own pairs;
//     the other entries of the room still route.
//   - Rooms with no entry points, and rooms with no connection, produce an
//     empty path and a nil error. "No route" is not an error here.
//   - Ties go to the pair enumerated first (start entries outer, end entries
//     inner, both in input order).
//
// Concurrency:
//
// WithParallelism(n) evaluates up to n pairs at once through an errgroup.
// Results are stored by pair index and reduced in enumeration order, so the
// chosen route is the same as with sequential evaluation. The first failing
// search cancels the rest.
//
// BetweenPoints is the point-to-point counterpart used when a visitor picks a
// waypoint instead of a room.
package router
