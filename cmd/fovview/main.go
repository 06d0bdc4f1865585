// fovview explores symmetric shadowcasting field of view in the terminal.
// Build:
//
//	go build -o fovview ./cmd/fovview
//
// Usage:
//
//	./fovview [-shape beveled] [-radius 10] [-seed 42] [-map room.txt] [-ascii] [-nolog]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"shadowcast/internal/fov"
	"shadowcast/internal/gamemap"
	"shadowcast/internal/viewer"

	"github.com/gdamore/tcell/v2"
)

func main() {
	shapeName := flag.String("shape", "beveled", "Tile shape: square, diamond or beveled")
	radius := flag.Int("radius", viewer.DefaultRadius, "Light radius in tiles")
	seed := flag.Int64("seed", 0, "Map generation seed (0 picks one from the clock)")
	width := flag.Int("width", viewer.DefaultWidth, "Generated map width")
	height := flag.Int("height", viewer.DefaultHeight, "Generated map height")
	mapFile := flag.String("map", "", "ASCII map file to explore instead of a generated map")
	ascii := flag.Bool("ascii", false, "Draw with ASCII glyphs instead of emoji")
	noLog := flag.Bool("nolog", false, "Do not append a summary to the session log on exit")
	flag.Parse()

	cfg, err := buildConfig(*shapeName, *radius, *seed, *width, *height, *mapFile)
	if err != nil {
		log.Fatalf("fovview: %v", err)
	}
	cfg.ASCII = *ascii
	cfg.SessionLog = !*noLog

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("fovview: create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("fovview: init screen: %v", err)
	}

	v, err := viewer.New(screen, cfg)
	if err != nil {
		screen.Fini()
		log.Fatalf("fovview: %v", err)
	}
	v.Run()
}

// buildConfig turns flag values into a viewer configuration, loading the
// map file when one is named.
func buildConfig(shapeName string, radius int, seed int64, width, height int, mapFile string) (viewer.Config, error) {
	shape, err := fov.ParseShape(shapeName)
	if err != nil {
		return viewer.Config{}, err
	}
	if radius < 0 || radius > viewer.MaxRadius {
		return viewer.Config{}, fmt.Errorf("radius %d out of range 0..%d", radius, viewer.MaxRadius)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := viewer.Config{
		Shape:  shape,
		Radius: radius,
		Width:  width,
		Height: height,
		Seed:   seed,
	}
	if mapFile == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(mapFile)
	if err != nil {
		return viewer.Config{}, fmt.Errorf("read map: %w", err)
	}
	gmap, start, err := gamemap.Parse(string(data))
	if err != nil {
		return viewer.Config{}, fmt.Errorf("parse %s: %w", mapFile, err)
	}
	cfg.Map, cfg.Start = gmap, start
	return cfg, nil
}
