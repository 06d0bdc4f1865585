package generate

import (
	"shadowcast/internal/gamemap"
	"shadowcast/internal/geom"
)

// carveCorridor digs a tunnel from a to b in the configured style.
func carveCorridor(gmap *gamemap.GameMap, a, b geom.Point, cfg *Config) {
	switch cfg.CorridorStyle {
	case CorridorZShaped:
		midY := (a.Y + b.Y) / 2
		carvePath(gmap, a, geom.Pt(a.X, midY), geom.Pt(b.X, midY), b)
	case CorridorStraight:
		carvePath(gmap, a, geom.Pt(b.X, a.Y), b)
	default: // LShaped, bending either way
		bend := geom.Pt(b.X, a.Y)
		if cfg.Rand.Intn(2) == 1 {
			bend = geom.Pt(a.X, b.Y)
		}
		carvePath(gmap, a, bend, b)
	}
}

// carvePath carves straight runs between consecutive waypoints.
func carvePath(gmap *gamemap.GameMap, waypoints ...geom.Point) {
	for i := 1; i < len(waypoints); i++ {
		carveLine(gmap, waypoints[i-1], waypoints[i])
	}
}

// carveLine digs floor from a to b inclusive. a and b must share a row or
// a column.
func carveLine(gmap *gamemap.GameMap, a, b geom.Point) {
	step := geom.Pt(sign(b.X-a.X), sign(b.Y-a.Y))
	for p := a; ; p = p.Add(step) {
		if gmap.InBounds(p.X, p.Y) {
			gmap.Set(p.X, p.Y, gamemap.MakeFloor())
		}
		if p == b {
			return
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
