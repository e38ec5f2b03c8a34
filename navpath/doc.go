// Package navpath is the single call a map view makes to get something to draw.
//
// ComputeRenderPath chains the room router, the densifier and the floor
// filter:
//
//	rooms ──router.BetweenRooms──▶ waypoints ──polyline.Densify──▶ samples
//	      ──polyline.FilterToFloor──▶ samples on the viewed floor
//
// The snapshot passed in may span several floors; currentFloorPoints selects
// the floor being shown. Coordinates are returned in venue space. Screen
// transforms such as flipping the Y axis belong to the renderer.
//
// Like the packages it composes, navpath keeps no state between calls.
package navpath
