package gamemap

import (
	"shadowcast/internal/fov"
	"shadowcast/internal/geom"
)

// Rect is an axis-aligned rectangle used for rooms.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// GameMap is a dense tile grid. It satisfies fov.Map.
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
	Rooms         []Rect
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	return Filled(width, height, MakeWall())
}

// Filled creates a GameMap with every cell set to fill.
func Filled(width, height int, fill Tile) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = fill
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// FromPoints creates a map filled with fill and then sets every point in
// pts to t. Points outside the map are ignored.
func FromPoints(width, height int, fill Tile, pts []geom.Point, t Tile) *GameMap {
	m := Filled(width, height, fill)
	for _, p := range pts {
		if m.InBounds(p.X, p.Y) {
			m.Set(p.X, p.Y, t)
		}
	}
	return m
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Walkable
}

// IsTransparent returns true when (x, y) is in bounds and transparent.
func (m *GameMap) IsTransparent(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Transparent
}

// OpacityAt implements fov.Map.
func (m *GameMap) OpacityAt(p geom.Point) (fov.Opacity, bool) {
	if !m.InBounds(p.X, p.Y) {
		return fov.Opaque, false
	}
	if m.Tiles[p.Y][p.X].Transparent {
		return fov.Transparent, true
	}
	return fov.Opaque, true
}

// ClearVisible drops the Visible flag on every tile. Explored is kept.
func (m *GameMap) ClearVisible() {
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			m.Tiles[y][x].Visible = false
		}
	}
}

// ForgetExplored drops both Visible and Explored on every tile.
func (m *GameMap) ForgetExplored() {
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			m.Tiles[y][x].Visible = false
			m.Tiles[y][x].Explored = false
		}
	}
}
