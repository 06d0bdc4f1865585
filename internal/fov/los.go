package fov

import "shadowcast/internal/geom"

// LineOfSight reports whether the Bresenham line from `from` to `to` passes
// only through transparent tiles. The end points themselves are not tested,
// so a wall is in sight when the tiles before it are clear.
//
// Unlike shadowcasting this is not symmetric: LineOfSight(m, a, b) and
// LineOfSight(m, b, a) can disagree next to corners.
func LineOfSight(m Map, from, to geom.Point) bool {
	l := geom.NewLine(from, to)
	l.Next() // from
	for p, ok := l.Next(); ok; p, ok = l.Next() {
		if p == to {
			return true
		}
		if blocks(m, p) {
			return false
		}
	}
	return true
}
