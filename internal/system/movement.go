package system

import (
	"shadowcast/internal/gamemap"
	"shadowcast/internal/geom"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall, window or out-of-bounds
)

// TryMove steps pos by (dx, dy) when the destination is walkable.
// The returned point is the new position, or pos unchanged when blocked.
func TryMove(gmap *gamemap.GameMap, pos geom.Point, dx, dy int) (geom.Point, MoveResult) {
	next := pos.Add(geom.Pt(dx, dy))
	if !gmap.IsWalkable(next.X, next.Y) {
		return pos, MoveBlocked
	}
	return next, MoveOK
}
