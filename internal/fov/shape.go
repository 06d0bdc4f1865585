package fov

import (
	"fmt"
	"strings"

	"shadowcast/internal/geom"
)

// Shape selects one of the three tile geometries.
type Shape uint8

const (
	ShapeSquare Shape = iota
	ShapeDiamond
	ShapeBeveled
)

var shapeNames = [...]string{
	ShapeSquare:  "square",
	ShapeDiamond: "diamond",
	ShapeBeveled: "beveled",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// Next cycles square → diamond → beveled → square.
func (s Shape) Next() Shape {
	return (s + 1) % Shape(len(shapeNames))
}

// ParseShape is the inverse of Shape.String. Matching ignores case.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if strings.EqualFold(name, n) {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tile shape %q (want square, diamond or beveled)", name)
}

// CastLight runs the entry point for shape. It panics on an unknown shape.
func CastLight(shape Shape, m Map, origin geom.Point, radius int, visit func(geom.Point)) {
	switch shape {
	case ShapeSquare:
		CastLightSquare(m, origin, radius, visit)
	case ShapeDiamond:
		CastLightDiamond(m, origin, radius, visit)
	case ShapeBeveled:
		CastLightBeveled(m, origin, radius, visit)
	default:
		panic(fmt.Sprintf("fov: unknown shape %d", shape))
	}
}

// Visible returns the deduplicated set of tiles visible from origin.
func Visible(shape Shape, m Map, origin geom.Point, radius int) map[geom.Point]struct{} {
	seen := make(map[geom.Point]struct{})
	CastLight(shape, m, origin, radius, func(p geom.Point) {
		seen[p] = struct{}{}
	})
	return seen
}
