package generate

import (
	"shadowcast/internal/gamemap"
	"shadowcast/internal/geom"
)

// placePillars drops free-standing columns inside rooms. Candidates sit on
// odd offsets from the room's corner and off its edges, so no two pillars
// touch and every floor tile stays reachable. The room centre is left
// alone so the start point is always floor.
func placePillars(gmap *gamemap.GameMap, cfg *Config) {
	if cfg.PillarChance <= 0 {
		return
	}
	for _, room := range gmap.Rooms {
		cx, cy := room.Center()
		for y := room.Y1 + 1; y < room.Y2; y += 2 {
			for x := room.X1 + 1; x < room.X2; x += 2 {
				if x == cx && y == cy {
					continue
				}
				if cfg.Rand.Intn(100) < cfg.PillarChance {
					gmap.Set(x, y, gamemap.MakePillar())
				}
			}
		}
	}
}

// rim is one tile of the ring just outside a room, with its neighbours
// across and along the ring.
type rim struct {
	at      geom.Point
	in, out geom.Point // toward and away from the room
	along   geom.Point // unit step along the ring
}

// roomRim lists the ring tiles facing the room's sides. Corners are left
// out: nothing can pass through them orthogonally.
func roomRim(r gamemap.Rect) []rim {
	var ring []rim
	for x := r.X1; x <= r.X2; x++ {
		ring = append(ring,
			rim{at: geom.Pt(x, r.Y1-1), in: geom.Pt(x, r.Y1), out: geom.Pt(x, r.Y1-2), along: geom.Pt(1, 0)},
			rim{at: geom.Pt(x, r.Y2+1), in: geom.Pt(x, r.Y2), out: geom.Pt(x, r.Y2+2), along: geom.Pt(1, 0)},
		)
	}
	for y := r.Y1; y <= r.Y2; y++ {
		ring = append(ring,
			rim{at: geom.Pt(r.X1-1, y), in: geom.Pt(r.X1, y), out: geom.Pt(r.X1-2, y), along: geom.Pt(0, 1)},
			rim{at: geom.Pt(r.X2+1, y), in: geom.Pt(r.X2, y), out: geom.Pt(r.X2+2, y), along: geom.Pt(0, 1)},
		)
	}
	return ring
}

func kindAt(gmap *gamemap.GameMap, p geom.Point) (gamemap.TileKind, bool) {
	if !gmap.InBounds(p.X, p.Y) {
		return 0, false
	}
	return gmap.At(p.X, p.Y).Kind, true
}

func walkableAt(gmap *gamemap.GameMap, p geom.Point) bool {
	return gmap.IsWalkable(p.X, p.Y)
}

// placeDoors hangs a door in single-width corridor mouths: a floor tile on
// a room's rim with blocking tiles on both sides along the rim and open
// ground in front and behind. Doors stay walkable but stop light.
func placeDoors(gmap *gamemap.GameMap, cfg *Config) {
	if cfg.DoorChance <= 0 {
		return
	}
	for _, room := range gmap.Rooms {
		for _, t := range roomRim(room) {
			if k, ok := kindAt(gmap, t.at); !ok || k != gamemap.TileFloor {
				continue
			}
			if walkableAt(gmap, t.at.Add(t.along)) || walkableAt(gmap, t.at.Sub(t.along)) {
				continue
			}
			if !walkableAt(gmap, t.in) || !walkableAt(gmap, t.out) {
				continue
			}
			if cfg.Rand.Intn(100) < cfg.DoorChance {
				gmap.Set(t.at.X, t.at.Y, gamemap.MakeDoor())
			}
		}
	}
}

// placeWindows glazes rim walls that separate a room from floor on the far
// side, so light crosses where walkers cannot.
func placeWindows(gmap *gamemap.GameMap, cfg *Config) {
	if cfg.WindowChance <= 0 {
		return
	}
	for _, room := range gmap.Rooms {
		for _, t := range roomRim(room) {
			if k, ok := kindAt(gmap, t.at); !ok || k != gamemap.TileWall {
				continue
			}
			if k, ok := kindAt(gmap, t.in); !ok || k != gamemap.TileFloor {
				continue
			}
			if k, ok := kindAt(gmap, t.out); !ok || k != gamemap.TileFloor {
				continue
			}
			if cfg.Rand.Intn(100) < cfg.WindowChance {
				gmap.Set(t.at.X, t.at.Y, gamemap.MakeWindow())
			}
		}
	}
}
