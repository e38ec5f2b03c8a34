// Package pathfinder is an indoor wayfinding engine for multi-floor venues:
// it turns a snapshot of waypoints and corridors into walking routes between
// rooms, ready to be drawn on a floor map.
//
// What is in the module?
//
//	A pure, in-memory routing core plus thin adapters:
//		• Data model: points, edges, rooms, floors, snapshot validation
//		• Geometry: Euclidean distance, path length, nearest-waypoint index
//		• Normalization: one-way corridors made walkable both ways
//		• Shortest paths: Dijkstra, linear scan or binary heap
//		• Room routing: best route over every pair of room entrances
//		• Rendering prep: densified polylines cut to the viewed floor
//
// Packages:
//
//	venue/     : Point, Edge, Room, Floor, Snapshot & boundary validation
//	geom/      : distance, path length, orb conversions, R-tree point index
//	navgraph/  : MakeBidirectional, the adjacency Graph, reachability
//	dijkstra/  : Searcher interface with linear and heap strategies
//	router/    : room-to-room and point-to-point route selection
//	polyline/  : Densify, Segment & FilterToFloor
//	navpath/   : ComputeRenderPath, the one call a map view makes
//
//	internal/snapshotio : JSON/TOML snapshot files, JSON/GeoJSON route output
//	internal/config     : wayfind.toml
//	internal/errors     : coded errors & user-facing messages
//	internal/server     : read-only HTTP endpoint (chi)
//	internal/cli        : wayfind route | locate | validate | serve
//	cmd/wayfind         : the binary
//
// Quick ASCII example:
//
//	 Lab ─── J1 ─── J2 ─── Office
//	          │
//	          └──── stairs ──▶ floor 2
//
// ComputeRenderPath(Lab, Office, ...) walks Lab→J1→J2→Office and returns one
// sample per map unit along the way, only for the floor being viewed.
//
// Nothing in the core keeps state between calls; concurrent requests over the
// same snapshot need no locking as long as nobody mutates it.
package pathfinder
