// Package venue holds the data model consumed by the pathfinding engine.
//
// Overview:
//
//   - Point: a vertex of the walkable graph, either a navigation node
//     (KindPoint) or a routing-only junction (KindJunction). A point may
//     belong to a room, in which case it is one of that room's entry points.
//   - Edge: a stored, directed connection between two points. FloorID is nil
//     for connections between floors (stairs, lifts).
//   - Room, Floor, RoomGroup: descriptive records used for lookups.
//   - Snapshot: everything one computation needs, supplied by the caller.
//
// The engine never reads or writes a store. Callers materialize a Snapshot,
// call Validate once at the boundary, then pass Points and Edges to the
// router. Validation rejects malformed records (duplicate IDs, unknown kinds,
// non-finite coordinates, references to unknown floors or rooms) but keeps
// dangling edge endpoints, which the search tolerates by skipping.
//
// Thread safety:
//
//   - All functions are pure. A Snapshot may be shared between goroutines as
//     long as nobody mutates it while a computation is in flight.
package venue
