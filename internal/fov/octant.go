package fov

import (
	"fmt"

	"shadowcast/internal/geom"
)

// octants maps canonical octant-0 offsets (lateral, distance) into each of
// the eight 45° wedges around the origin. Index 0 is the identity. Octants
// 2 and 6 are the two rotations: 2 turns (x, y) into (y, -x), 6 into (-y, x).
var octants = [8]geom.Mat2{
	geom.Identity,
	geom.RowMajor(0, 1, 1, 0),
	geom.RowMajor(0, 1, -1, 0),
	geom.RowMajor(-1, 0, 0, 1),
	geom.RowMajor(-1, 0, 0, -1),
	geom.RowMajor(0, -1, -1, 0),
	geom.RowMajor(0, -1, 1, 0),
	geom.RowMajor(1, 0, 0, -1),
}

// OctantTransform returns the matrix for octant 0..7. Any other index is a
// programming error and panics.
func OctantTransform(octant int) geom.Mat2 {
	if octant < 0 || octant >= len(octants) {
		panic(fmt.Sprintf("fov: invalid octant %d", octant))
	}
	return octants[octant]
}
