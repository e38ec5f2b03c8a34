package navgraph

import "github.com/DanishNasarudin/wvpac-pathfinder/venue"

// SyntheticIDBase is the gap between the largest persisted edge ID and the
// first synthetic reverse-edge ID. Synthetic IDs are never persisted.
const SyntheticIDBase = 1000

// pairKey is the ordered (from, to) pair used for deduplication.
type pairKey struct {
	from, to int
}

// MakeBidirectional returns an edge set in which every stored connection can
// be walked both ways, with at most one edge per ordered (from, to) pair.
//
// Steps, for each input edge in order:
//  1. If from>to has not been seen, keep the edge verbatim and mark it.
//  2. If to>from has not been seen, append the reversed edge, mark it, and
//     give it a fresh synthetic ID.
//
// Synthetic IDs start at max(input ID, 0) + SyntheticIDBase and increase by
// one, so they never collide with input IDs or with each other. The output
// order follows the input order; it is deterministic but not sorted.
//
// The input slice is not modified.
// Complexity: O(E) time and space.
func MakeBidirectional(edges []venue.Edge) []venue.Edge {
	if len(edges) == 0 {
		return nil
	}

	maxID := 0
	for _, e := range edges {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	nextID := maxID + SyntheticIDBase

	seen := make(map[pairKey]struct{}, 2*len(edges))
	out := make([]venue.Edge, 0, 2*len(edges))
	for _, e := range edges {
		forward := pairKey{e.FromID, e.ToID}
		reverse := pairKey{e.ToID, e.FromID}

		if _, ok := seen[forward]; !ok {
			seen[forward] = struct{}{}
			out = append(out, e)
		}

		if _, ok := seen[reverse]; !ok {
			seen[reverse] = struct{}{}
			r := e.Reversed()
			r.ID = nextID
			r.Synthetic = true
			nextID++
			out = append(out, r)
		}
	}

	return out
}
