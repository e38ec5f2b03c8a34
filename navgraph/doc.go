// Package navgraph turns a stored edge list into a walkable graph.
//
// Stored edges are directed, but a corridor can be walked both ways.
// MakeBidirectional adds the missing reverse direction for every edge, keeping
// at most one edge per ordered (from, to) pair and giving generated edges IDs
// that cannot clash with persisted ones.
//
// Graph is the adjacency view the search runs on: points by ID in input order
// and outgoing edges bucketed by source.
//
// Reachable is a breadth-first walk from one point; Components groups points
// that are connected at all, which is how snapshot checks find rooms cut off
// from the rest of the venue.
//
// Example:
//
//	edges := navgraph.MakeBidirectional(snapshot.Edges)
//	g := navgraph.New(snapshot.Points, edges)
//	out, err := g.Neighbors(42)
package navgraph
