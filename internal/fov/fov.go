// Package fov computes field of view on tile maps with recursive symmetric
// shadowcasting.
//
// The 360° scan is split into eight octants that share one canonical
// algorithm. Wedge bounds are exact rational slopes, so there is no
// floating-point drift. How a tile occludes light is delegated to a
// TileShape; three are provided, each a different visibility policy:
//
//   - SquareTiles: conservative, walls occlude with their full square.
//   - DiamondTiles: generous, light slips past corners.
//   - BeveledTiles: wall corners are bevelled where a neighbour is clear.
//
// Results are pushed to a visit callback. The origin is always visited
// first. Tiles on an octant seam may be visited more than once, so callers
// usually collect into a set (see Visible).
package fov

import "shadowcast/internal/geom"

// CastLightSquare visits every tile visible from origin within radius,
// treating tiles as squares.
func CastLightSquare(m Map, origin geom.Point, radius int, visit func(geom.Point)) {
	castLight(m, origin, radius, visit, func(geom.Mat2) TileShape { return SquareTiles{} })
}

// CastLightDiamond visits every tile visible from origin within radius,
// treating tiles as diamonds.
func CastLightDiamond(m Map, origin geom.Point, radius int, visit func(geom.Point)) {
	castLight(m, origin, radius, visit, func(geom.Mat2) TileShape { return DiamondTiles{} })
}

// CastLightBeveled visits every tile visible from origin within radius,
// bevelling wall corners next to clear tiles.
func CastLightBeveled(m Map, origin geom.Point, radius int, visit func(geom.Point)) {
	castLight(m, origin, radius, visit, func(t geom.Mat2) TileShape {
		return NewBeveledTiles(m, origin, t)
	})
}

// castLight visits the origin and then scans all eight octants. shapeFor
// is called once per octant so shapes may bind to the transform.
func castLight(m Map, origin geom.Point, radius int, visit func(geom.Point), shapeFor func(geom.Mat2) TileShape) {
	visit(origin)
	for octant := 0; octant < len(octants); octant++ {
		t := OctantTransform(octant)
		s := &scanner{
			m:         m,
			origin:    origin,
			radius:    radius,
			transform: t,
			shape:     shapeFor(t),
			visit:     visit,
		}
		s.scan(1, One, Zero)
	}
}
