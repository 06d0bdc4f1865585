package generate

import (
	"math/rand"

	"shadowcast/internal/gamemap"
	"shadowcast/internal/geom"
)

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// Config drives procedural generation for one map. The feature chances
// seed the geometry where the tile shapes disagree: free-standing pillars,
// door frames and windows.
type Config struct {
	MapWidth, MapHeight int
	MinLeafSize         int
	MaxLeafSize         int
	MinRoomSize         int
	RoomPadding         int
	CorridorStyle       CorridorStyle
	PillarChance        int // 0-100, per candidate cell inside a room
	DoorChance          int // 0-100, per corridor mouth
	WindowChance        int // 0-100, per wall cell with floor on both sides
	Rand                *rand.Rand
}

// DefaultConfig returns the settings used by the viewer for a map of the
// given size.
func DefaultConfig(width, height int, rng *rand.Rand) *Config {
	return &Config{
		MapWidth:      width,
		MapHeight:     height,
		MinLeafSize:   8,
		MaxLeafSize:   20,
		MinRoomSize:   4,
		RoomPadding:   1,
		CorridorStyle: CorridorStyle(rng.Intn(3)),
		PillarChance:  20,
		DoorChance:    60,
		WindowChance:  25,
		Rand:          rng,
	}
}

// region is a node of the partition tree. Leaves hold at most one room.
type region struct {
	area gamemap.Rect
	kids []*region
	room *gamemap.Rect
}

func (r *region) width() int  { return r.area.X2 - r.area.X1 + 1 }
func (r *region) height() int { return r.area.Y2 - r.area.Y1 + 1 }

// partition splits r until every leaf is at most MaxLeafSize on both axes,
// and keeps splitting smaller leaves three times in four.
func partition(r *region, cfg *Config) {
	big := r.width() > cfg.MaxLeafSize || r.height() > cfg.MaxLeafSize
	if !big && cfg.Rand.Intn(4) == 0 {
		return
	}
	if !r.split(cfg) {
		return
	}
	for _, k := range r.kids {
		partition(k, cfg)
	}
}

// split cuts r across its longer axis (a coin toss when roughly square).
// It reports false when either half would be narrower than MinLeafSize.
func (r *region) split(cfg *Config) bool {
	w, h := r.width(), r.height()
	across := cfg.Rand.Intn(2) == 0 // true: cut with a horizontal line
	switch {
	case 4*w >= 5*h:
		across = false
	case 4*h >= 5*w:
		across = true
	}

	span := w
	if across {
		span = h
	}
	room := span - 2*cfg.MinLeafSize
	if room < 1 {
		return false
	}
	cut := cfg.MinLeafSize + cfg.Rand.Intn(room+1)

	a, b := r.area, r.area
	if across {
		a.Y2 = r.area.Y1 + cut - 1
		b.Y1 = r.area.Y1 + cut
	} else {
		a.X2 = r.area.X1 + cut - 1
		b.X1 = r.area.X1 + cut
	}
	r.kids = []*region{{area: a}, {area: b}}
	return true
}

// carveRooms digs one room into every leaf that has space for it, keeping
// RoomPadding tiles from the leaf edge and one tile from the map edge.
func (r *region) carveRooms(gmap *gamemap.GameMap, cfg *Config) {
	if len(r.kids) > 0 {
		for _, k := range r.kids {
			k.carveRooms(gmap, cfg)
		}
		return
	}

	pad := cfg.RoomPadding
	inner := gamemap.Rect{
		X1: max(r.area.X1+pad, 1),
		Y1: max(r.area.Y1+pad, 1),
		X2: min(r.area.X2-pad, gmap.Width-2),
		Y2: min(r.area.Y2-pad, gmap.Height-2),
	}
	rw := randomSize(inner.X2-inner.X1+1, cfg)
	rh := randomSize(inner.Y2-inner.Y1+1, cfg)
	if rw < 3 || rh < 3 {
		return
	}

	x := inner.X1 + cfg.Rand.Intn(inner.X2-inner.X1+2-rw)
	y := inner.Y1 + cfg.Rand.Intn(inner.Y2-inner.Y1+2-rh)
	room := gamemap.Rect{X1: x, Y1: y, X2: x + rw - 1, Y2: y + rh - 1}
	r.room = &room

	for ty := room.Y1; ty <= room.Y2; ty++ {
		for tx := room.X1; tx <= room.X2; tx++ {
			gmap.Set(tx, ty, gamemap.MakeFloor())
		}
	}
	gmap.Rooms = append(gmap.Rooms, room)
}

// randomSize picks a room extent between MinRoomSize and avail. A result
// below 3 means the leaf is too small for a room.
func randomSize(avail int, cfg *Config) int {
	if avail < cfg.MinRoomSize {
		return avail
	}
	return cfg.MinRoomSize + cfg.Rand.Intn(avail-cfg.MinRoomSize+1)
}

// connect joins sibling subtrees bottom-up and returns a room standing for
// r, or nil when no leaf below r has one.
func (r *region) connect(gmap *gamemap.GameMap, cfg *Config) *gamemap.Rect {
	if len(r.kids) == 0 {
		return r.room
	}
	var rooms []*gamemap.Rect
	for _, k := range r.kids {
		if room := k.connect(gmap, cfg); room != nil {
			rooms = append(rooms, room)
		}
	}
	if len(rooms) == 0 {
		return nil
	}
	if len(rooms) == 2 {
		carveCorridor(gmap, geom.Pt(rooms[0].Center()), geom.Pt(rooms[1].Center()), cfg)
	}
	return rooms[0]
}

// Generate builds a map and returns it with a start point in the centre of
// the first room.
func Generate(cfg *Config) (*gamemap.GameMap, geom.Point) {
	gmap := gamemap.New(cfg.MapWidth, cfg.MapHeight)

	root := &region{area: gamemap.Rect{X2: cfg.MapWidth - 1, Y2: cfg.MapHeight - 1}}
	partition(root, cfg)
	root.carveRooms(gmap, cfg)
	root.connect(gmap, cfg)

	placePillars(gmap, cfg)
	placeDoors(gmap, cfg)
	placeWindows(gmap, cfg)

	start := geom.Pt(1, 1)
	if len(gmap.Rooms) > 0 {
		start = geom.Pt(gmap.Rooms[0].Center())
	}
	return gmap, start
}
