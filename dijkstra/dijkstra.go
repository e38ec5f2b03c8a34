package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/DanishNasarudin/wvpac-pathfinder/geom"
	"github.com/DanishNasarudin/wvpac-pathfinder/navgraph"
	"github.com/DanishNasarudin/wvpac-pathfinder/venue"
)

// New returns a Searcher configured by opts.
func New(opts ...Option) Searcher {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &searcher{options: cfg}
}

// ShortestPath runs a single search with a Searcher built from opts.
// See Searcher for the contract.
func ShortestPath(ctx context.Context, startID, endID int, edges []venue.Edge, points []venue.Point, opts ...Option) ([]venue.Point, error) {
	return New(opts...).ShortestPath(ctx, startID, endID, edges, points)
}

type searcher struct {
	options Options
}

// ShortestPath computes the minimum-weight path from startID to endID.
//
// Preconditions and validation (in order):
//  1. points must be non-empty (ErrEmptyPoints, logged at error level).
//  2. startID and endID must be points of the snapshot (ErrNoPath otherwise).
//
// Returns:
//
//   - path: the points from start to end inclusive. startID == endID yields
//     the single point.
//   - err:  ErrNoPath when the end is unreachable, ErrEmptyPoints for empty
//     input, or ctx.Err() when the context is cancelled. The context is
//     checked once per settled point.
//
// Edges whose source or destination point is missing are skipped and logged
// at warn level.
//
// Complexity:
//
//   - StrategyLinear: O(P² + E) time, O(P + E) space.
//   - StrategyHeap:   O((P + E) log P) time, O(P + E) space.
func (s *searcher) ShortestPath(ctx context.Context, startID, endID int, edges []venue.Edge, points []venue.Point) ([]venue.Point, error) {
	// 1) Validate the point collection.
	if len(points) == 0 {
		s.options.Logger.Error("shortest path: points collection is empty", "start", startID, "end", endID)
		return nil, ErrEmptyPoints
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// 2) Index the snapshot and check both endpoints exist.
	g := navgraph.New(points, edges)
	if !g.HasPoint(startID) {
		return nil, fmt.Errorf("%w: start point %d not in snapshot", ErrNoPath, startID)
	}
	if !g.HasPoint(endID) {
		return nil, fmt.Errorf("%w: end point %d not in snapshot", ErrNoPath, endID)
	}

	// 3) Run the selected strategy.
	r := newRunner(ctx, g, startID, endID, s.options.Logger)
	switch s.options.Strategy {
	case StrategyHeap:
		return r.runHeap()
	default:
		return r.runLinear()
	}
}

// runner holds the mutable state for a single search.
type runner struct {
	ctx     context.Context
	g       *navgraph.Graph
	logger  *log.Logger
	start   int
	end     int
	dist    map[int]float64 // point ID → best known distance from start
	prev    map[int]int     // point ID → predecessor on the best known path
	visited map[int]bool    // point ID → distance is final
	rank    map[int]int     // point ID → input position, used to break ties
}

// newRunner sets dist[v] = +∞ for every point and dist[start] = 0.
func newRunner(ctx context.Context, g *navgraph.Graph, start, end int, logger *log.Logger) *runner {
	n := g.Order()
	r := &runner{
		ctx:     ctx,
		g:       g,
		logger:  logger,
		start:   start,
		end:     end,
		dist:    make(map[int]float64, n),
		prev:    make(map[int]int, n),
		visited: make(map[int]bool, n),
		rank:    make(map[int]int, n),
	}
	for i, p := range g.Points() {
		if _, dup := r.rank[p.ID]; dup {
			continue
		}
		r.rank[p.ID] = i
		r.dist[p.ID] = math.Inf(1)
	}
	r.dist[start] = 0

	return r
}

// runLinear is the classic dense variant: every iteration scans all unsettled
// points for the smallest tentative distance. Ties go to the point that comes
// first in the input.
func (r *runner) runLinear() ([]venue.Point, error) {
	points := r.g.Points()
	for {
		if err := r.ctx.Err(); err != nil {
			return nil, err
		}

		// 1) Pick the unsettled point with the smallest tentative distance.
		current, best, found := 0, math.Inf(1), false
		for _, p := range points {
			if r.visited[p.ID] {
				continue
			}
			if d := r.dist[p.ID]; !found || d < best {
				current, best, found = p.ID, d, true
			}
		}

		// 2) Nothing reachable is left.
		if !found || math.IsInf(best, 1) {
			return nil, ErrNoPath
		}

		// 3) Destination settled: rebuild the path.
		if current == r.end {
			return r.path(), nil
		}

		// 4) Settle and relax.
		r.visited[current] = true
		r.relax(current, nil)
	}
}

// runHeap settles points in the same order as runLinear but finds the minimum
// with a binary heap. Outdated heap entries are skipped when popped.
func (r *runner) runHeap() ([]venue.Point, error) {
	pq := make(nodePQ, 0, r.g.Order())
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: r.start, dist: 0, rank: r.rank[r.start]})

	push := func(id int, d float64) {
		heap.Push(&pq, &nodeItem{id: id, dist: d, rank: r.rank[id]})
	}

	for pq.Len() > 0 {
		if err := r.ctx.Err(); err != nil {
			return nil, err
		}

		item := heap.Pop(&pq).(*nodeItem)
		if r.visited[item.id] || item.dist > r.dist[item.id] {
			continue
		}
		if item.id == r.end {
			return r.path(), nil
		}

		r.visited[item.id] = true
		r.relax(item.id, push)
	}

	return nil, ErrNoPath
}

// relax tries to improve the distance of every neighbor reachable from u.
// When push is non-nil it is called for each improved neighbor.
func (r *runner) relax(u int, push func(id int, d float64)) {
	from, _ := r.g.Point(u)
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return
	}

	for _, e := range edges {
		to, ok := r.g.Point(e.ToID)
		if !ok {
			r.logger.Warn("skipping edge with missing endpoint", "edge", e.ID, "from", e.FromID, "to", e.ToID)
			continue
		}

		// Strictly better only, so equal-cost alternatives keep the first predecessor.
		newDist := r.dist[u] + geom.Distance(from, to)
		if newDist >= r.dist[e.ToID] {
			continue
		}
		r.dist[e.ToID] = newDist
		r.prev[e.ToID] = u
		if push != nil {
			push(e.ToID, newDist)
		}
	}
}

// path walks predecessor links from end back to start and reverses them.
func (r *runner) path() []venue.Point {
	var ids []int
	for current := r.end; ; {
		ids = append(ids, current)
		if current == r.start {
			break
		}
		p, ok := r.prev[current]
		if !ok {
			break
		}
		current = p
	}

	out := make([]venue.Point, len(ids))
	for i, id := range ids {
		p, _ := r.g.Point(id)
		out[len(ids)-1-i] = p
	}

	return out
}

// nodeItem is a heap entry: a point and the tentative distance it was pushed with.
type nodeItem struct {
	id   int
	dist float64
	rank int // input position of the point
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by input position.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance and breaks ties by input position, matching the
// linear scan.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].rank < pq[j].rank
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
