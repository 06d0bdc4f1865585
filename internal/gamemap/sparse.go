package gamemap

import (
	"shadowcast/internal/fov"
	"shadowcast/internal/geom"
)

// Sparse is an unbounded fov.Map: every point not listed in Tiles has
// opacity Default. The zero value is an infinite wall.
type Sparse struct {
	Default fov.Opacity
	Tiles   map[geom.Point]fov.Opacity
}

// NewSparse returns a Sparse map with the given default opacity.
func NewSparse(def fov.Opacity) *Sparse {
	return &Sparse{Default: def, Tiles: make(map[geom.Point]fov.Opacity)}
}

// Set records the opacity at p.
func (s *Sparse) Set(p geom.Point, o fov.Opacity) {
	if s.Tiles == nil {
		s.Tiles = make(map[geom.Point]fov.Opacity)
	}
	s.Tiles[p] = o
}

// OpacityAt implements fov.Map. Every point is in bounds.
func (s *Sparse) OpacityAt(p geom.Point) (fov.Opacity, bool) {
	if o, ok := s.Tiles[p]; ok {
		return o, true
	}
	return s.Default, true
}
