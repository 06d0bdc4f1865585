package fov

import "shadowcast/internal/geom"

// Opacity reports whether light passes through a tile.
type Opacity uint8

const (
	Opaque Opacity = iota
	Transparent
)

func (o Opacity) String() string {
	switch o {
	case Opaque:
		return "opaque"
	case Transparent:
		return "transparent"
	}
	return "Opacity(?)"
}

// Map is a read-only source of tile opacity.
// ok is false for points outside the map; the scanner treats those as opaque.
type Map interface {
	OpacityAt(p geom.Point) (o Opacity, ok bool)
}

// MapFunc adapts a plain function to the Map interface.
type MapFunc func(p geom.Point) (Opacity, bool)

// OpacityAt calls f(p).
func (f MapFunc) OpacityAt(p geom.Point) (Opacity, bool) {
	return f(p)
}

// blocks reports whether p stops light: anything other than an in-bounds
// transparent tile.
func blocks(m Map, p geom.Point) bool {
	o, ok := m.OpacityAt(p)
	return !ok || o != Transparent
}
