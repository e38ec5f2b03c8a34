// Package geom is the planar geometry layer of the pathfinding engine.
//
// Overview:
//
//   - Distance: Euclidean distance between two points' (x, y) coordinates.
//     It is both the edge weight used by the search and the accumulator for
//     path length.
//   - PathLength: sum of consecutive distances along a point sequence. The
//     room router compares candidate paths with it.
//   - LineString, Bound: conversions to github.com/paulmach/orb geometries for
//     callers that export or measure paths.
//   - PointIndex: an R-tree (github.com/dhconnelly/rtreego) over a floor's
//     points, answering "which navigation point is nearest to this map
//     coordinate" and window queries.
//
// Coordinates are in map space. Screen transforms such as flipping the Y axis
// belong to the rendering layer.
package geom
