package fov

import "shadowcast/internal/geom"

// scanner holds the per-octant parameters that stay fixed while rows are
// walked. One frame of scan recursion per row means stack depth grows
// linearly with radius; view distances of a few dozen tiles are fine.
type scanner struct {
	m         Map
	origin    geom.Point
	radius    int
	transform geom.Mat2
	shape     TileShape
	visit     func(geom.Point)
}

// scan walks row x of the octant between the high and low slopes, from the
// top of the row down, and recurses into row x+1 for every lit sub-wedge.
func (s *scanner) scan(x int, high, low Slope) {
	if high.Less(low) || x > s.radius {
		return
	}

	y0 := 0
	if low.Run > 0 {
		y0 = floorDiv((2*x-1)*low.Rise-low.Run, 2*low.Run)
	}

	prevOpaque := false
	for y := x; y >= y0; y-- {
		tileHigh := s.shape.TileSlopeHigh(x, y)
		tileLow := s.shape.TileSlopeLow(x, y)
		if tileLow.Greater(high) {
			continue
		}
		if tileHigh.Less(low) {
			break
		}

		p := s.origin.Add(s.transform.Apply(geom.Pt(y, x)))
		if x*x+y*y <= s.radius*s.radius {
			s.visit(p)
		}
		opaque := blocks(s.m, p)

		if prevOpaque && !opaque {
			high = s.shape.PrevTileSlopeLow(x, y)
		}
		if !prevOpaque && opaque {
			s.scan(x+1, high, tileHigh)
		}
		prevOpaque = opaque
	}
	if !prevOpaque {
		s.scan(x+1, high, low)
	}
}

// floorDiv divides rounding toward negative infinity. b must be positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
