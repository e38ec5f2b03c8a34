// Package venue defines the record types of a venue snapshot: Point, Edge,
// Room, Floor and RoomGroup, plus the Snapshot that bundles them for a single
// routing computation.
//
// This file declares the records, the PointKind discriminant and the sentinel
// errors returned by Snapshot.Validate.
//
// Errors:
//
//	ErrDuplicatePoint - two points share an identifier.
//	ErrDuplicateEdge  - two edges share an identifier.
//	ErrUnknownKind    - a point carries a kind other than "point" or "junction".
//	ErrBadCoordinate  - a point coordinate is NaN or infinite.
//	ErrUnknownFloor   - a point references a floor absent from the snapshot.
//	ErrUnknownRoom    - a point references a room absent from the snapshot.
package venue

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for snapshot validation.
var (
	// ErrDuplicatePoint indicates two points with the same ID.
	ErrDuplicatePoint = errors.New("venue: duplicate point id")

	// ErrDuplicateEdge indicates two edges with the same ID.
	ErrDuplicateEdge = errors.New("venue: duplicate edge id")

	// ErrUnknownKind indicates a point kind outside {point, junction}.
	ErrUnknownKind = errors.New("venue: unknown point kind")

	// ErrBadCoordinate indicates a NaN or infinite coordinate.
	ErrBadCoordinate = errors.New("venue: coordinate is not finite")

	// ErrUnknownFloor indicates a reference to a floor missing from the snapshot.
	ErrUnknownFloor = errors.New("venue: unknown floor")

	// ErrUnknownRoom indicates a reference to a room missing from the snapshot.
	ErrUnknownRoom = errors.New("venue: unknown room")
)

// PointKind classifies a Point.
type PointKind string

const (
	// KindPoint is a navigation node, typically a room entry or a named spot.
	KindPoint PointKind = "point"

	// KindJunction is a routing-only waypoint that belongs to no room.
	KindJunction PointKind = "junction"
)

// Valid reports whether k is one of the known kinds.
func (k PointKind) Valid() bool {
	return k == KindPoint || k == KindJunction
}

// Point is a vertex of the navigation graph.
//
// RoomID is nil when the point lies inside no room. Points are treated as
// immutable for the duration of a computation.
type Point struct {
	ID      int       `json:"id" toml:"id"`
	Kind    PointKind `json:"type" toml:"type"`
	Name    string    `json:"name" toml:"name"`
	X       float64   `json:"x" toml:"x"`
	Y       float64   `json:"y" toml:"y"`
	FloorID int       `json:"floorId" toml:"floorId"`
	RoomID  *int      `json:"roomId" toml:"roomId,omitempty"`
}

// InRoom reports whether p is an entry point of the room with the given ID.
func (p Point) InRoom(roomID int) bool {
	return p.RoomID != nil && *p.RoomID == roomID
}

// Coord returns the planar coordinates of p.
func (p Point) Coord() orb.Point {
	return orb.Point{p.X, p.Y}
}

// At returns a copy of p moved to (x, y). Identity fields are preserved.
func (p Point) At(x, y float64) Point {
	p.X, p.Y = x, y
	return p
}

// Edge connects two points. Edges are stored directed but the walkable graph
// is undirected; see navgraph.MakeBidirectional.
//
// FloorID is nil for inter-floor edges. Synthetic marks reverse edges created
// during normalization; they are never persisted.
type Edge struct {
	ID        int  `json:"id" toml:"id"`
	FromID    int  `json:"fromId" toml:"fromId"`
	ToID      int  `json:"toId" toml:"toId"`
	FloorID   *int `json:"floorId" toml:"floorId,omitempty"`
	Synthetic bool `json:"synthetic,omitempty" toml:"synthetic,omitempty"`
}

// Reversed returns e with its endpoints swapped.
func (e Edge) Reversed() Edge {
	e.FromID, e.ToID = e.ToID, e.FromID
	return e
}

// Room is a named area. Its entry points are the Points whose RoomID matches.
type Room struct {
	ID      int    `json:"id" toml:"id"`
	Name    string `json:"name" toml:"name"`
	FloorID int    `json:"floorId" toml:"floorId"`
	GroupID *int   `json:"groupId,omitempty" toml:"groupId,omitempty"`
}

// Floor is one level of the venue.
type Floor struct {
	ID     int    `json:"id" toml:"id"`
	Name   string `json:"name" toml:"name"`
	Level  int    `json:"level" toml:"level"`
	Active bool   `json:"active" toml:"active"`
}

// RoomGroup clusters rooms for location search (e.g. "Lecture Halls").
type RoomGroup struct {
	ID   int    `json:"id" toml:"id"`
	Name string `json:"name" toml:"name"`
}

// Snapshot is the in-memory copy of a venue used for one computation.
// Floors, Rooms and Groups are optional; routing needs only Points and Edges.
type Snapshot struct {
	Floors []Floor     `json:"floors,omitempty" toml:"floors,omitempty"`
	Rooms  []Room      `json:"rooms,omitempty" toml:"rooms,omitempty"`
	Groups []RoomGroup `json:"groups,omitempty" toml:"groups,omitempty"`
	Points []Point     `json:"points" toml:"points"`
	Edges  []Edge      `json:"edges" toml:"edges"`
}

// IntPtr returns a pointer to v. Handy for RoomID and FloorID literals.
func IntPtr(v int) *int {
	return &v
}
