package navgraph

import (
	"errors"

	"github.com/DanishNasarudin/wvpac-pathfinder/venue"
)

// ErrPointNotFound indicates a lookup for a point ID absent from the graph.
var ErrPointNotFound = errors.New("navgraph: point not found")

// Graph is a read-only adjacency view over a point/edge snapshot.
//
// Points keep their input order, which is the order searches scan them in.
// Outgoing edges are bucketed by source point, also in input order. Edges
// whose endpoints are missing are kept in their bucket; the search decides
// what to do with them.
type Graph struct {
	points   []venue.Point
	position map[int]int          // point ID → index into points (first occurrence)
	outgoing map[int][]venue.Edge // source point ID → edges leaving it
	all      []venue.Edge
}

// New indexes points and edges. Neither slice is copied deeply; callers must
// not mutate them while the Graph is in use.
//
// Complexity: O(P + E).
func New(points []venue.Point, edges []venue.Edge) *Graph {
	g := &Graph{
		points:   points,
		position: make(map[int]int, len(points)),
		outgoing: make(map[int][]venue.Edge),
		all:      edges,
	}
	for i, p := range points {
		if _, dup := g.position[p.ID]; dup {
			continue
		}
		g.position[p.ID] = i
	}
	for _, e := range edges {
		g.outgoing[e.FromID] = append(g.outgoing[e.FromID], e)
	}

	return g
}

// Order returns the number of points.
func (g *Graph) Order() int { return len(g.points) }

// Size returns the number of edges.
func (g *Graph) Size() int { return len(g.all) }

// edges returns the edges in input order.
func (g *Graph) edges() []venue.Edge { return g.all }

// Points returns the points in input order. The slice must be treated as read-only.
func (g *Graph) Points() []venue.Point { return g.points }

// Point returns the point with the given ID.
func (g *Graph) Point(id int) (venue.Point, bool) {
	i, ok := g.position[id]
	if !ok {
		return venue.Point{}, false
	}

	return g.points[i], true
}

// HasPoint reports whether id is a point of the graph.
func (g *Graph) HasPoint(id int) bool {
	_, ok := g.position[id]
	return ok
}

// Neighbors returns the edges whose source is id, in input order.
// It returns ErrPointNotFound when id is not a point of the graph.
func (g *Graph) Neighbors(id int) ([]venue.Edge, error) {
	if !g.HasPoint(id) {
		return nil, ErrPointNotFound
	}

	return g.outgoing[id], nil
}

// HasEdge reports whether at least one edge from→to exists.
func (g *Graph) HasEdge(from, to int) bool {
	for _, e := range g.outgoing[from] {
		if e.ToID == to {
			return true
		}
	}

	return false
}
