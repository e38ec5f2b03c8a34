// Package polyline turns a waypoint route into what a map draws.
//
// Densify samples every leg of a route roughly once per coordinate unit so
// the renderer can animate or style it point by point. FilterToFloor then
// drops the samples that belong to other floors, which is how a cross-floor
// route is shown one floor at a time.
//
// Both functions are pure and allocate fresh slices; inputs are not modified.
package polyline
