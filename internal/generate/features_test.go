package generate

import (
	"math/rand"
	"testing"

	"shadowcast/internal/gamemap"
	"shadowcast/internal/geom"
)

// roomWithCorridors builds a 12×9 map with one room (2,2)-(5,5), a corridor
// leaving its east side on row 3 and a passage running along its south wall
// on row 7.
func roomWithCorridors() *gamemap.GameMap {
	gmap := gamemap.New(12, 9)
	room := gamemap.Rect{X1: 2, Y1: 2, X2: 5, Y2: 5}
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
	for x := 6; x <= 9; x++ {
		gmap.Set(x, 3, gamemap.MakeFloor())
	}
	for x := 2; x <= 5; x++ {
		gmap.Set(x, 7, gamemap.MakeFloor())
	}
	gmap.Rooms = []gamemap.Rect{room}
	return gmap
}

func kinds(gmap *gamemap.GameMap, kind gamemap.TileKind) []geom.Point {
	var pts []geom.Point
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			if gmap.At(x, y).Kind == kind {
				pts = append(pts, geom.Pt(x, y))
			}
		}
	}
	return pts
}

func TestPlaceDoorsAndWindows(t *testing.T) {
	gmap := roomWithCorridors()
	cfg := &Config{DoorChance: 100, WindowChance: 100, Rand: rand.New(rand.NewSource(1))}
	placeDoors(gmap, cfg)
	placeWindows(gmap, cfg)

	doors := kinds(gmap, gamemap.TileDoor)
	if len(doors) != 1 || doors[0] != geom.Pt(6, 3) {
		t.Errorf("doors = %v, want [(6,3)]\n%s", doors, gmap)
	}
	windows := kinds(gmap, gamemap.TileWindow)
	want := []geom.Point{geom.Pt(2, 6), geom.Pt(3, 6), geom.Pt(4, 6), geom.Pt(5, 6)}
	if len(windows) != len(want) {
		t.Fatalf("windows = %v, want %v\n%s", windows, want, gmap)
	}
	for i := range want {
		if windows[i] != want[i] {
			t.Errorf("window %d = %v, want %v", i, windows[i], want[i])
		}
	}
	if !gmap.IsWalkable(6, 3) || gmap.IsTransparent(6, 3) {
		t.Error("door should be walkable and opaque")
	}
	if gmap.IsWalkable(3, 6) || !gmap.IsTransparent(3, 6) {
		t.Error("window should be transparent and not walkable")
	}
}

func TestPlaceDoorsAndWindowsZeroChance(t *testing.T) {
	gmap := roomWithCorridors()
	before := gmap.String()
	cfg := &Config{Rand: rand.New(rand.NewSource(1))}
	placeDoors(gmap, cfg)
	placeWindows(gmap, cfg)
	if got := gmap.String(); got != before {
		t.Errorf("map changed with zero chances:\n%s", got)
	}
}

// TestGenerateDoorsAndWindowsSitInWalls checks every generated door is a
// one-tile gap in a wall line and every window has floor on both faces.
func TestGenerateDoorsAndWindowsSitInWalls(t *testing.T) {
	axes := [2]geom.Point{geom.Pt(1, 0), geom.Pt(0, 1)}
	for seed := int64(0); seed < 10; seed++ {
		gmap, _ := Generate(defaultTestConfig(seed))

		for _, d := range kinds(gmap, gamemap.TileDoor) {
			framed := false
			for i, along := range axes {
				across := axes[1-i]
				a, b := d.Add(along), d.Sub(along)
				f, g := d.Add(across), d.Sub(across)
				if !gmap.IsWalkable(a.X, a.Y) && !gmap.IsWalkable(b.X, b.Y) &&
					gmap.IsWalkable(f.X, f.Y) && gmap.IsWalkable(g.X, g.Y) {
					framed = true
				}
			}
			if !framed {
				t.Errorf("seed=%d: door at %v is not framed by walls", seed, d)
			}
		}

		for _, w := range kinds(gmap, gamemap.TileWindow) {
			glazed := false
			for _, across := range axes {
				f, g := w.Add(across), w.Sub(across)
				fk, fok := kindAt(gmap, f)
				gk, gok := kindAt(gmap, g)
				if fok && gok && fk == gamemap.TileFloor && gk == gamemap.TileFloor {
					glazed = true
				}
			}
			if !glazed {
				t.Errorf("seed=%d: window at %v lacks floor on both sides", seed, w)
			}
		}
	}
}
