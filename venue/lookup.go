package venue

// EntryPoints returns the points whose RoomID equals roomID, in input order.
// A room with no entry points yields an empty slice.
//
// Complexity: O(P).
func EntryPoints(roomID int, points []Point) []Point {
	var out []Point
	for _, p := range points {
		if p.InRoom(roomID) {
			out = append(out, p)
		}
	}

	return out
}

// FloorPoints returns the points that belong to floorID, in input order.
func FloorPoints(floorID int, points []Point) []Point {
	var out []Point
	for _, p := range points {
		if p.FloorID == floorID {
			out = append(out, p)
		}
	}

	return out
}

// IndexPoints maps point IDs to points. When IDs repeat the first occurrence
// wins; Snapshot.Validate rejects such input at the boundary.
func IndexPoints(points []Point) map[int]Point {
	idx := make(map[int]Point, len(points))
	for _, p := range points {
		if _, seen := idx[p.ID]; seen {
			continue
		}
		idx[p.ID] = p
	}

	return idx
}

// IDSet returns the set of point IDs in points.
func IDSet(points []Point) map[int]struct{} {
	set := make(map[int]struct{}, len(points))
	for _, p := range points {
		set[p.ID] = struct{}{}
	}

	return set
}
