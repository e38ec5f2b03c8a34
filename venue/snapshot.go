package venue

import (
	"fmt"
	"math"
	"sort"
)

// Validate checks the snapshot at the boundary, before any search sees it.
//
// Steps:
//  1. Every point has a known kind, finite coordinates and a unique ID.
//  2. When Floors is non-empty, every point references a listed floor.
//  3. When Rooms is non-empty, every non-nil RoomID references a listed room.
//  4. Every edge has a unique ID.
//
// Edges whose endpoints are missing are accepted: the search
// skips them and DanglingEdges reports them.
//
// Returns the first violation found, wrapped around one of the sentinel errors.
// Complexity: O(P + E).
func (s Snapshot) Validate() error {
	floors := make(map[int]struct{}, len(s.Floors))
	for _, f := range s.Floors {
		floors[f.ID] = struct{}{}
	}
	rooms := make(map[int]struct{}, len(s.Rooms))
	for _, r := range s.Rooms {
		rooms[r.ID] = struct{}{}
	}

	seen := make(map[int]struct{}, len(s.Points))
	for _, p := range s.Points {
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicatePoint, p.ID)
		}
		seen[p.ID] = struct{}{}

		if !p.Kind.Valid() {
			return fmt.Errorf("%w: point %d has kind %q", ErrUnknownKind, p.ID, p.Kind)
		}
		if !finite(p.X) || !finite(p.Y) {
			return fmt.Errorf("%w: point %d at (%v, %v)", ErrBadCoordinate, p.ID, p.X, p.Y)
		}
		if len(floors) > 0 {
			if _, ok := floors[p.FloorID]; !ok {
				return fmt.Errorf("%w: point %d references floor %d", ErrUnknownFloor, p.ID, p.FloorID)
			}
		}
		if len(rooms) > 0 && p.RoomID != nil {
			if _, ok := rooms[*p.RoomID]; !ok {
				return fmt.Errorf("%w: point %d references room %d", ErrUnknownRoom, p.ID, *p.RoomID)
			}
		}
	}

	edges := make(map[int]struct{}, len(s.Edges))
	for _, e := range s.Edges {
		if _, dup := edges[e.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateEdge, e.ID)
		}
		edges[e.ID] = struct{}{}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// DanglingEdges returns the edges whose source or destination point is not in
// the snapshot, in input order.
func (s Snapshot) DanglingEdges() []Edge {
	ids := IDSet(s.Points)
	var out []Edge
	for _, e := range s.Edges {
		_, okFrom := ids[e.FromID]
		_, okTo := ids[e.ToID]
		if !okFrom || !okTo {
			out = append(out, e)
		}
	}

	return out
}

// InterFloorEdges returns the edges whose endpoints lie on different floors.
// Edges with a missing endpoint are not reported here.
func (s Snapshot) InterFloorEdges() []Edge {
	idx := IndexPoints(s.Points)
	var out []Edge
	for _, e := range s.Edges {
		from, okFrom := idx[e.FromID]
		to, okTo := idx[e.ToID]
		if okFrom && okTo && from.FloorID != to.FloorID {
			out = append(out, e)
		}
	}

	return out
}

// Floor returns the floor with the given ID.
func (s Snapshot) Floor(id int) (Floor, bool) {
	for _, f := range s.Floors {
		if f.ID == id {
			return f, true
		}
	}

	return Floor{}, false
}

// FloorByLevel returns the active floor at the given level.
func (s Snapshot) FloorByLevel(level int) (Floor, bool) {
	for _, f := range s.Floors {
		if f.Active && f.Level == level {
			return f, true
		}
	}

	return Floor{}, false
}

// Room returns the room with the given ID.
func (s Snapshot) Room(id int) (Room, bool) {
	for _, r := range s.Rooms {
		if r.ID == id {
			return r, true
		}
	}

	return Room{}, false
}

// RoomsInGroup returns the rooms of a group sorted by name.
func (s Snapshot) RoomsInGroup(groupID int) []Room {
	var out []Room
	for _, r := range s.Rooms {
		if r.GroupID != nil && *r.GroupID == groupID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}
