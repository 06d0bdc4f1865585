package render

import (
	"shadowcast/internal/fov"
	"shadowcast/internal/gamemap"
	"shadowcast/internal/geom"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDHeight is the number of rows reserved at the bottom of the screen.
const HUDHeight = 4

// Renderer draws a field-of-view map onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	ascii  bool
}

// NewRenderer creates a Renderer for the given screen. ascii selects plain
// ASCII glyphs instead of emoji.
func NewRenderer(screen tcell.Screen, ascii bool) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(geom.Point{}, w, max(0, h-HUDHeight)),
		ascii:  ascii,
	}
}

// Resize adapts the viewport after a terminal resize.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.Resize(w, max(0, h-HUDHeight))
}

// CenterOn recenters the camera on world position p.
func (r *Renderer) CenterOn(p geom.Point) { r.camera.Center(p) }

// WorldToScreen converts world coordinates to screen coordinates.
// visible is false when the position falls outside the viewport.
func (r *Renderer) WorldToScreen(p geom.Point) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(p)
}

// theme returns the glyph set for shape.
func (r *Renderer) theme(shape fov.Shape) Theme {
	if r.ascii {
		return ASCIITheme
	}
	if th, ok := EmojiThemes[shape]; ok {
		return th
	}
	return ASCIITheme
}

// DrawFrame clears the screen and renders the map and the origin marker.
// Call DrawHUD afterwards to show the frame.
func (r *Renderer) DrawFrame(gmap *gamemap.GameMap, origin geom.Point, shape fov.Shape) {
	r.screen.Clear()
	th := r.theme(shape)
	r.drawMap(gmap, th)

	if sx, sy, ok := r.camera.WorldToScreen(origin); ok {
		style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorYellow).Bold(true)
		r.putGlyph(sx, sy, th.Origin, style)
	}
}

// drawMap renders all visible and explored tiles. Unexplored tiles stay blank.
func (r *Renderer) drawMap(gmap *gamemap.GameMap, th Theme) {
	emojiStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			tile := gmap.At(x, y)
			if !tile.Visible && !tile.Explored {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(geom.Pt(x, y))
			if !onScreen {
				continue
			}
			style := emojiStyle
			if r.ascii {
				style = asciiStyle(tile)
			}
			r.putGlyph(sx, sy, th.glyph(tile), style)
		}
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen
// position (x, y) and pads it to CellWidth columns.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, runes[0], combc, style)
	for col := runewidth.StringWidth(glyph); col < CellWidth; col++ {
		r.screen.SetContent(x+col, y, ' ', nil, style)
	}
}
