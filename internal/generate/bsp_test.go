package generate

import (
	"math/rand"
	"testing"

	"shadowcast/internal/gamemap"
)

func defaultTestConfig(seed int64) *Config {
	return &Config{
		MapWidth:      60,
		MapHeight:     30,
		MinLeafSize:   8,
		MaxLeafSize:   20,
		MinRoomSize:   4,
		RoomPadding:   1,
		CorridorStyle: CorridorLShaped,
		PillarChance:  40,
		DoorChance:    50,
		WindowChance:  30,
		Rand:          rand.New(rand.NewSource(seed)),
	}
}

// TestGenerateAllRoomsConnected verifies that every floor tile is reachable
// from the first floor tile via BFS (flood-fill).
func TestGenerateAllRoomsConnected(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		cfg := defaultTestConfig(seed)
		gmap, _ := Generate(cfg)

		// Find the first floor tile.
		startX, startY := -1, -1
		for y := 0; y < gmap.Height && startY == -1; y++ {
			for x := 0; x < gmap.Width && startX == -1; x++ {
				if gmap.At(x, y).Kind == gamemap.TileFloor {
					startX, startY = x, y
				}
			}
		}
		if startX == -1 {
			t.Fatalf("seed=%d: no floor tiles found", seed)
		}

		// BFS from start.
		visited := make([][]bool, gmap.Height)
		for y := range visited {
			visited[y] = make([]bool, gmap.Width)
		}
		queue := [][2]int{{startX, startY}}
		visited[startY][startX] = true

		dirs := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, d := range dirs {
				nx, ny := cur[0]+d[0], cur[1]+d[1]
				if !gmap.InBounds(nx, ny) || visited[ny][nx] {
					continue
				}
				t := gmap.At(nx, ny)
				if t.Walkable {
					visited[ny][nx] = true
					queue = append(queue, [2]int{nx, ny})
				}
			}
		}

		// Every walkable tile should have been visited.
		for y := 0; y < gmap.Height; y++ {
			for x := 0; x < gmap.Width; x++ {
				if gmap.At(x, y).Walkable && !visited[y][x] {
					t.Errorf("seed=%d: unreachable floor tile at (%d,%d)", seed, x, y)
				}
			}
		}
	}
}

// TestGenerateRoomsDoNotOverlap verifies that no two rooms share interior tiles.
func TestGenerateRoomsDoNotOverlap(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		cfg := defaultTestConfig(seed)
		gmap, _ := Generate(cfg)

		rooms := gmap.Rooms
		for i := 0; i < len(rooms); i++ {
			for j := i + 1; j < len(rooms); j++ {
				if rooms[i].Intersects(rooms[j]) {
					t.Errorf("seed=%d: room %d %v overlaps room %d %v",
						seed, i, rooms[i], j, rooms[j])
				}
			}
		}
	}
}

func TestGenerateStartIsFloorInFirstRoom(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		gmap, start := Generate(defaultTestConfig(seed))
		if len(gmap.Rooms) == 0 {
			t.Fatalf("seed=%d: no rooms generated", seed)
		}
		cx, cy := gmap.Rooms[0].Center()
		if start.X != cx || start.Y != cy {
			t.Errorf("seed=%d: start %v, want first room centre (%d,%d)", seed, start, cx, cy)
		}
		if !gmap.IsWalkable(start.X, start.Y) || !gmap.IsTransparent(start.X, start.Y) {
			t.Errorf("seed=%d: start %v is not open floor", seed, start)
		}
	}
}

func TestGeneratePillarsStayInsideRooms(t *testing.T) {
	pillars := 0
	for seed := int64(0); seed < 10; seed++ {
		gmap, _ := Generate(defaultTestConfig(seed))
		for y := 0; y < gmap.Height; y++ {
			for x := 0; x < gmap.Width; x++ {
				if gmap.At(x, y).Kind != gamemap.TilePillar {
					continue
				}
				pillars++
				inside := false
				for _, r := range gmap.Rooms {
					if x > r.X1 && x < r.X2 && y > r.Y1 && y < r.Y2 {
						inside = true
					}
				}
				if !inside {
					t.Errorf("seed=%d: pillar at (%d,%d) is not strictly inside a room", seed, x, y)
				}
				// Pillars never touch each other orthogonally.
				for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
					nx, ny := x+d[0], y+d[1]
					if gmap.InBounds(nx, ny) && gmap.At(nx, ny).Kind == gamemap.TilePillar {
						t.Errorf("seed=%d: pillars at (%d,%d) and (%d,%d) touch", seed, x, y, nx, ny)
					}
				}
			}
		}
	}
	if pillars == 0 {
		t.Error("expected some pillars with PillarChance=40 over 10 seeds")
	}
}

func TestGenerateWithoutPillars(t *testing.T) {
	cfg := defaultTestConfig(3)
	cfg.PillarChance = 0
	gmap, _ := Generate(cfg)
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			if gmap.At(x, y).Kind == gamemap.TilePillar {
				t.Fatalf("pillar at (%d,%d) with PillarChance=0", x, y)
			}
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig(80, 40, rand.New(rand.NewSource(1)))
	if cfg.MapWidth != 80 || cfg.MapHeight != 40 {
		t.Errorf("size = %dx%d, want 80x40", cfg.MapWidth, cfg.MapHeight)
	}
	if cfg.CorridorStyle > CorridorStraight {
		t.Errorf("corridor style %d out of range", cfg.CorridorStyle)
	}
	gmap, _ := Generate(cfg)
	if len(gmap.Rooms) < 2 {
		t.Errorf("expected several rooms on an 80x40 map, got %d", len(gmap.Rooms))
	}
}

func TestPartitionLeaves(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		cfg := defaultTestConfig(seed)
		root := &region{area: gamemap.Rect{X2: cfg.MapWidth - 1, Y2: cfg.MapHeight - 1}}
		partition(root, cfg)

		area := 0
		var walk func(r *region)
		walk = func(r *region) {
			if len(r.kids) > 0 {
				for _, k := range r.kids {
					walk(k)
				}
				return
			}
			w, h := r.width(), r.height()
			area += w * h
			if w < cfg.MinLeafSize || h < cfg.MinLeafSize {
				t.Errorf("seed=%d: leaf %v is %dx%d, below the minimum %d", seed, r.area, w, h, cfg.MinLeafSize)
			}
		}
		walk(root)
		if area != cfg.MapWidth*cfg.MapHeight {
			t.Errorf("seed=%d: leaves cover %d tiles, want %d", seed, area, cfg.MapWidth*cfg.MapHeight)
		}
	}
}
