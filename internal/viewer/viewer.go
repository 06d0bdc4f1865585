// Package viewer is the interactive field-of-view explorer: it owns a map,
// a light origin and the active tile shape, and redraws the lit area after
// every keypress.
package viewer

import (
	"fmt"
	"math/rand"
	"time"

	"shadowcast/internal/fov"
	"shadowcast/internal/gamemap"
	"shadowcast/internal/generate"
	"shadowcast/internal/geom"
	"shadowcast/internal/render"
	"shadowcast/internal/system"

	"github.com/gdamore/tcell/v2"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 40
	DefaultRadius = 10
	MaxRadius     = 40

	maxMessages = 50
)

// Config describes the initial state of a Viewer.
type Config struct {
	Shape  fov.Shape
	Radius int

	// Width and Height size generated maps. Ignored when Map is set.
	Width, Height int
	Seed          int64

	// Map, when non-nil, is explored instead of a generated map and Start
	// is the initial origin on it.
	Map   *gamemap.GameMap
	Start geom.Point

	ASCII bool

	// SessionLog appends a summary line to the session log when Run returns.
	SessionLog bool
}

// Viewer is the top-level orchestrator for one terminal.
type Viewer struct {
	screen   tcell.Screen
	renderer *render.Renderer
	rng      *rand.Rand

	gmap   *gamemap.GameMap
	fixed  bool
	width  int
	height int
	seed   int64

	origin   geom.Point
	shape    fov.Shape
	radius   int
	lit      int
	messages []string

	stats   SessionLog
	saveLog bool
}

// New creates a Viewer drawing onto an initialized screen.
func New(screen tcell.Screen, cfg Config) (*Viewer, error) {
	v := &Viewer{
		screen:   screen,
		renderer: render.NewRenderer(screen, cfg.ASCII),
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		width:    cfg.Width,
		height:   cfg.Height,
		shape:    cfg.Shape,
		radius:   min(max(cfg.Radius, 0), MaxRadius),
		saveLog:  cfg.SessionLog,
		stats: SessionLog{
			Started:    time.Now(),
			Recomputes: make(map[string]int),
		},
	}
	if v.width <= 0 {
		v.width = DefaultWidth
	}
	if v.height <= 0 {
		v.height = DefaultHeight
	}

	if cfg.Map != nil {
		if !cfg.Map.InBounds(cfg.Start.X, cfg.Start.Y) {
			return nil, fmt.Errorf("start %v outside %dx%d map", cfg.Start, cfg.Map.Width, cfg.Map.Height)
		}
		v.gmap, v.origin, v.fixed = cfg.Map, cfg.Start, true
		v.stats.LoadedMap = true
		v.stats.MapsSeen = 1
		v.addMessage(fmt.Sprintf("Loaded %dx%d map.", cfg.Map.Width, cfg.Map.Height))
	} else {
		v.generate(cfg.Seed)
	}
	v.recompute()
	v.addMessage("Use hjklyubn or arrow keys to move the light. Tab changes tile shape.")
	return v, nil
}

// generate replaces the map with a freshly generated one.
func (v *Viewer) generate(seed int64) {
	v.seed = seed
	gen := generate.DefaultConfig(v.width, v.height, rand.New(rand.NewSource(seed)))
	v.gmap, v.origin = generate.Generate(gen)
	v.stats.MapsSeen++
	v.addMessage(fmt.Sprintf("Generated %dx%d map with %d rooms (seed %d).",
		v.gmap.Width, v.gmap.Height, len(v.gmap.Rooms), seed))
}

// Run is the main loop. It returns when the user quits or the screen is
// finalized from elsewhere, and always finalizes the screen.
func (v *Viewer) Run() {
	defer v.screen.Fini()
	if v.saveLog {
		defer func() { saveSessionLog(v.finish()) }()
	}

	for {
		v.draw()

		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			v.screen.Sync()
			v.renderer.Resize()
		case *tcell.EventKey:
			if !v.handleAction(keyToAction(ev)) {
				return
			}
		}
	}
}

func (v *Viewer) draw() {
	v.renderer.CenterOn(v.origin)
	v.renderer.DrawFrame(v.gmap, v.origin, v.shape)
	v.renderer.DrawHUD(render.Status{
		Shape:  v.shape,
		Radius: v.radius,
		Origin: v.origin,
		Lit:    v.lit,
		Seed:   v.seed,
	}, v.messages)
}

// handleAction applies one action. It reports false when the viewer should
// stop.
func (v *Viewer) handleAction(a Action) bool {
	switch a {
	case ActionQuit:
		return false

	case ActionNextShape:
		v.shape = v.shape.Next()
		v.stats.ShapeChanges++
		v.recompute()
		v.addMessage(fmt.Sprintf("Tile shape: %s (%d tiles lit).", v.shape, v.lit))

	case ActionGrow, ActionShrink:
		r := v.radius + 1
		if a == ActionShrink {
			r = v.radius - 1
		}
		r = min(max(r, 0), MaxRadius)
		if r == v.radius {
			v.addMessage(fmt.Sprintf("Radius stays at %d.", r))
			break
		}
		v.radius = r
		v.recompute()

	case ActionRegenerate:
		if v.fixed {
			v.addMessage("This map was loaded from a file and cannot be regenerated.")
			break
		}
		v.generate(v.rng.Int63())
		v.recompute()

	case ActionForget:
		v.gmap.ForgetExplored()
		v.recompute()
		v.addMessage("Memory cleared.")

	case ActionCompareRays:
		r := system.CompareRays(v.gmap, v.origin, v.radius)
		v.stats.RayChecks++
		v.addMessage(fmt.Sprintf("%s: rays reach %d of %d lit tiles, %d unlit tiles have a clear ray.",
			v.shape, r.LitWithRay, r.Lit, r.UnlitWithRay))

	default:
		dx, dy := actionToDelta(a)
		if dx == 0 && dy == 0 {
			break
		}
		next, result := system.TryMove(v.gmap, v.origin, dx, dy)
		if result == system.MoveBlocked {
			v.stats.Blocked++
			break
		}
		v.origin = next
		v.stats.Moves++
		v.recompute()
	}
	return true
}

func (v *Viewer) recompute() {
	v.lit = system.UpdateFOV(v.gmap, v.origin, v.radius, v.shape)
	v.stats.MaxLit = max(v.stats.MaxLit, v.lit)
	v.stats.Recomputes[v.shape.String()]++
}

// finish completes the session statistics.
func (v *Viewer) finish() SessionLog {
	v.stats.Seconds = int(time.Since(v.stats.Started).Seconds())
	v.stats.Seed = v.seed
	v.stats.FinalRadius = v.radius
	return v.stats
}

func (v *Viewer) addMessage(msg string) {
	v.messages = append(v.messages, msg)
	if len(v.messages) > maxMessages {
		v.messages = v.messages[len(v.messages)-maxMessages:]
	}
}
