package render

import (
	"fmt"

	"shadowcast/internal/fov"
	"shadowcast/internal/geom"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Status is the information shown on the HUD status line.
type Status struct {
	Shape  fov.Shape
	Radius int
	Origin geom.Point
	Lit    int
	Seed   int64
}

// DrawHUD renders the status bar and the most recent message, then shows
// the frame.
func (r *Renderer) DrawHUD(st Status, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDHeight

	r.drawHLine(hudY, tcell.ColorGray)

	status := fmt.Sprintf("Shape: %-8s Radius: %-3d Origin: %-9s Lit: %-5d Seed: %d",
		st.Shape, st.Radius, st.Origin, st.Lit, st.Seed)
	r.drawText(0, hudY+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	help := "hjklyubn/arrows move  tab shape  +/- radius  c rays  r new map  f forget  q quit"
	r.drawText(0, hudY+2, help, tcell.StyleDefault.Foreground(tcell.ColorGray))

	if n := len(messages); n > 0 {
		r.drawText(0, hudY+3, messages[n-1], tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text starting at column x, advancing by each rune's
// display width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
}
