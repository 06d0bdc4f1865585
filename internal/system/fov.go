package system

import (
	"shadowcast/internal/fov"
	"shadowcast/internal/gamemap"
	"shadowcast/internal/geom"
)

// UpdateFOV resets visibility and casts light from origin with the given
// tile shape. Lit tiles are marked Visible and Explored. It returns the
// number of distinct in-map tiles lit.
func UpdateFOV(gmap *gamemap.GameMap, origin geom.Point, radius int, shape fov.Shape) int {
	gmap.ClearVisible()

	lit := 0
	fov.CastLight(shape, gmap, origin, radius, func(p geom.Point) {
		// Seam tiles arrive twice and edge tiles may lie outside the map.
		if !gmap.InBounds(p.X, p.Y) {
			return
		}
		t := gmap.At(p.X, p.Y)
		if !t.Visible {
			lit++
		}
		t.Visible = true
		t.Explored = true
	})
	return lit
}

// RayReport compares a shadowcast view with plain Bresenham rays.
type RayReport struct {
	Lit          int // tiles marked Visible
	LitWithRay   int // lit tiles a ray also reaches
	UnlitWithRay int // in-range tiles a ray reaches but shadowcasting does not light
}

// CompareRays casts a Bresenham ray from origin to every in-map tile within
// radius and tallies it against the Visible flags left by UpdateFOV.
func CompareRays(gmap *gamemap.GameMap, origin geom.Point, radius int) RayReport {
	var r RayReport
	for y := max(0, origin.Y-radius); y <= min(gmap.Height-1, origin.Y+radius); y++ {
		for x := max(0, origin.X-radius); x <= min(gmap.Width-1, origin.X+radius); x++ {
			p := geom.Pt(x, y)
			if p.Sub(origin).SqrMagnitude() > radius*radius {
				continue
			}
			ray := fov.LineOfSight(gmap, origin, p)
			switch {
			case gmap.At(x, y).Visible:
				r.Lit++
				if ray {
					r.LitWithRay++
				}
			case ray:
				r.UnlitWithRay++
			}
		}
	}
	return r
}
