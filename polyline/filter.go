package polyline

import "github.com/DanishNasarudin/wvpac-pathfinder/venue"

// FilterToFloor keeps, in order, the points of path whose ID matches some
// point of currentFloorPoints.
//
// Interpolated samples carry their origin waypoint's ID, so a densified path
// is cut at the same places as the waypoint path it came from. Applying the
// filter twice with the same floor points gives the same result as once.
//
// Complexity: O(len(path) + len(currentFloorPoints)).
func FilterToFloor(path, currentFloorPoints []venue.Point) []venue.Point {
	if len(path) == 0 || len(currentFloorPoints) == 0 {
		return nil
	}

	onFloor := venue.IDSet(currentFloorPoints)
	var out []venue.Point
	for _, p := range path {
		if _, ok := onFloor[p.ID]; ok {
			out = append(out, p)
		}
	}

	return out
}
