package fov

import "shadowcast/internal/geom"

// TileShape gives the angular extent of a tile in canonical octant-0
// coordinates, where x is the row (distance from the origin) and y the
// lateral offset within the row.
type TileShape interface {
	// TileSlopeHigh is the upper boundary of tile (x, y).
	TileSlopeHigh(x, y int) Slope
	// TileSlopeLow is the lower boundary of tile (x, y).
	TileSlopeLow(x, y int) Slope
	// PrevTileSlopeLow is the trailing edge of the wall just passed, used to
	// lower the wedge's high bound when (x, y) ends an opaque run.
	PrevTileSlopeLow(x, y int) Slope
}

// SquareTiles treats every tile as its full square footprint. Corners
// occlude as much as possible.
type SquareTiles struct{}

// TileSlopeHigh passes through the tile's near upper corner.
func (SquareTiles) TileSlopeHigh(x, y int) Slope { return NewSlope(2*y+1, 2*x-1) }

// TileSlopeLow passes through the tile's far lower corner.
func (SquareTiles) TileSlopeLow(x, y int) Slope { return NewSlope(2*y-1, 2*x+1) }

// PrevTileSlopeLow passes through the far upper corner of the wall above.
func (SquareTiles) PrevTileSlopeLow(x, y int) Slope { return NewSlope(2*y+1, 2*x+1) }

// DiamondTiles treats every tile as the diamond inscribed in its square,
// so light slips past corners more readily than with SquareTiles.
type DiamondTiles struct{}

// TileSlopeHigh passes through the diamond's upper vertex.
func (DiamondTiles) TileSlopeHigh(x, y int) Slope { return NewSlope(2*y+1, 2*x) }

// TileSlopeLow passes through the diamond's lower vertex.
func (DiamondTiles) TileSlopeLow(x, y int) Slope { return NewSlope(2*y-1, 2*x) }

// PrevTileSlopeLow passes through the lower vertex of the wall above.
func (DiamondTiles) PrevTileSlopeLow(x, y int) Slope { return NewSlope(2*y+1, 2*x) }

// BeveledTiles is Adam Milazzo's tile shape: a wall corner is cut back to
// the centre of the tile edge when the neighbouring tile in that direction
// is clear. Floors always use their true corners.
//
// Neighbour lookups need the map, so a BeveledTiles is bound to one origin
// and one octant transform.
//
// Boundary points of tile (x, y) in canonical space:
//
//	    g         a top left      (2y+1)/(2x-1)
//	a-------+     g top centre    (2y+1)/(2x)
//	|       |     e centre        (2y)/(2x)
//	|   e   f     f right centre  (2y)/(2x+1)
//	|       |     d bottom right  (2y-1)/(2x+1)
//	+-------d     h bottom centre (2y-1)/(2x)
//	    h
type BeveledTiles struct {
	m         Map
	origin    geom.Point
	transform geom.Mat2
}

// NewBeveledTiles binds the shape to m as seen from origin through transform.
func NewBeveledTiles(m Map, origin geom.Point, transform geom.Mat2) BeveledTiles {
	return BeveledTiles{m: m, origin: origin, transform: transform}
}

// wall reports whether canonical tile (x, y) is a known opaque tile.
// Out-of-bounds tiles count as clear here so that map edges bevel.
func (b BeveledTiles) wall(x, y int) bool {
	o, ok := b.m.OpacityAt(b.origin.Add(b.transform.Apply(geom.Pt(y, x))))
	return ok && o == Opaque
}

// TileSlopeHigh uses the top centre of a wall whose upper neighbour is
// clear and the top-left corner otherwise.
func (b BeveledTiles) TileSlopeHigh(x, y int) Slope {
	if b.wall(x, y) && !b.wall(x, y+1) {
		return NewSlope(2*y+1, 2*x)
	}
	return NewSlope(2*y+1, 2*x-1)
}

// TileSlopeLow uses the bottom centre of a wall whose right neighbour is
// clear and the bottom-right corner otherwise.
func (b BeveledTiles) TileSlopeLow(x, y int) Slope {
	if b.wall(x, y) && !b.wall(x+1, y) {
		return NewSlope(2*y-1, 2*x)
	}
	return NewSlope(2*y-1, 2*x+1)
}

// PrevTileSlopeLow uses the edge centre shared with the wall above when the
// tile beyond is clear, and the far corner otherwise.
func (b BeveledTiles) PrevTileSlopeLow(x, y int) Slope {
	if !b.wall(x+1, y) {
		return NewSlope(2*y, 2*x)
	}
	return NewSlope(2*y, 2*x+1)
}
