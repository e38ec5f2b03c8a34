// Package dijkstra_test provides runnable examples for the shortest-path search.
package dijkstra_test

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DanishNasarudin/wvpac-pathfinder/dijkstra"
	"github.com/DanishNasarudin/wvpac-pathfinder/geom"
	"github.com/DanishNasarudin/wvpac-pathfinder/navgraph"
	"github.com/DanishNasarudin/wvpac-pathfinder/venue"
)

// ExampleShortestPath finds the short way through a corridor where a detour
// via the lobby is also possible.
func ExampleShortestPath() {
	// 1) Four waypoints on one floor.
	points := []venue.Point{
		{ID: 1, Name: "Entrance", X: 0, Y: 0, FloorID: 1},
		{ID: 2, Name: "Lobby", X: 0, Y: 3, FloorID: 1},
		{ID: 3, Name: "Corridor", X: 4, Y: 0, FloorID: 1},
		{ID: 4, Name: "Hall", X: 4, Y: 3, FloorID: 1},
	}
	// 2) Corridors are stored once; normalize so they can be walked both ways.
	edges := navgraph.MakeBidirectional([]venue.Edge{
		{ID: 1, FromID: 1, ToID: 2},
		{ID: 2, FromID: 2, ToID: 4},
		{ID: 3, FromID: 1, ToID: 3},
		{ID: 4, FromID: 3, ToID: 4},
		{ID: 5, FromID: 1, ToID: 4}, // diagonal hallway
	})

	// 3) Search from the hall back to the entrance, against stored direction.
	path, err := dijkstra.ShortestPath(context.Background(), 4, 1, edges, points)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	names := make([]string, len(path))
	for i, p := range path {
		names[i] = p.Name
	}
	fmt.Printf("%s (%.1f)\n", strings.Join(names, " -> "), geom.PathLength(path))
	// Output: Hall -> Entrance (5.0)
}

// ExampleNew_heap configures the heap strategy and shows the unreachable case.
func ExampleNew_heap() {
	search := dijkstra.New(dijkstra.WithStrategy(dijkstra.StrategyHeap))

	points := []venue.Point{
		{ID: 1, X: 0, Y: 0, FloorID: 1},
		{ID: 2, X: 10, Y: 0, FloorID: 1},
	}
	_, err := search.ShortestPath(context.Background(), 1, 2, nil, points)
	fmt.Println(errors.Is(err, dijkstra.ErrNoPath))
	// Output: true
}
