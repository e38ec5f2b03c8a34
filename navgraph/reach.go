package navgraph

import (
	"context"
	"fmt"
)

// queueItem pairs a point ID with its hop count from the start.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable breadth-first state.
type walker struct {
	ctx   context.Context
	g     *Graph
	queue []queueItem
	hops  map[int]int // point ID → hops from start
	order []int       // visit order
}

// Reachable returns every point reachable from startID by following edges in
// their stored direction, mapped to its hop count (start = 0), together with
// the visit order. Edges to missing points are ignored.
//
// Run it on a normalized edge set to get the walkable component of startID.
// Returns ErrPointNotFound if startID is not a point of g, or ctx.Err() on
// cancellation (checked once per dequeued point).
//
// Complexity: O(P + E).
func Reachable(ctx context.Context, g *Graph, startID int) (map[int]int, []int, error) {
	if !g.HasPoint(startID) {
		return nil, nil, fmt.Errorf("%w: %d", ErrPointNotFound, startID)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	w := &walker{
		ctx:   ctx,
		g:     g,
		queue: make([]queueItem, 0, g.Order()),
		hops:  make(map[int]int, g.Order()),
	}
	w.enqueue(startID, 0)
	if err := w.loop(); err != nil {
		return nil, nil, err
	}

	return w.hops, w.order, nil
}

func (w *walker) enqueue(id, depth int) {
	w.hops[id] = depth
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}

// loop processes the queue until it is empty or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.order = append(w.order, item.id)

		for _, e := range w.g.outgoing[item.id] {
			if !w.g.HasPoint(e.ToID) {
				continue
			}
			if _, seen := w.hops[e.ToID]; !seen {
				w.enqueue(e.ToID, item.depth+1)
			}
		}
	}

	return nil
}

// Components partitions the points of g into groups connected by edges,
// ignoring edge direction. Components are ordered by their first point in
// input order, and each component lists its point IDs in visit order.
//
// Complexity: O(P + E).
func Components(ctx context.Context, g *Graph) ([][]int, error) {
	// Walk an undirected view so stored direction does not split components.
	undirected := New(g.points, MakeBidirectional(g.edges()))

	seen := make(map[int]bool, g.Order())
	var out [][]int
	for _, p := range g.points {
		if seen[p.ID] {
			continue
		}
		_, order, err := Reachable(ctx, undirected, p.ID)
		if err != nil {
			return nil, err
		}
		for _, id := range order {
			seen[id] = true
		}
		out = append(out, order)
	}

	return out, nil
}
