package render

import "shadowcast/internal/geom"

// CellWidth is the number of terminal columns per map tile. Emoji glyphs
// are two columns wide; ASCII glyphs are padded to match.
const CellWidth = 2

// Camera translates between world coordinates and screen coordinates.
type Camera struct {
	Offset     geom.Point
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on c.
func NewCamera(c geom.Point, viewW, viewH int) *Camera {
	cam := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	cam.Center(c)
	return cam
}

// Center repositions the camera so that world position c is in the middle.
func (c *Camera) Center(p geom.Point) {
	c.Offset = geom.Pt(p.X-(c.ViewWidth/CellWidth)/2, p.Y-c.ViewHeight/2)
}

// Resize changes the viewport, keeping the same world point centered.
func (c *Camera) Resize(viewW, viewH int) {
	mid := c.ScreenToWorld(c.ViewWidth/2, c.ViewHeight/2)
	c.ViewWidth, c.ViewHeight = viewW, viewH
	c.Center(mid)
}

// WorldToScreen converts world p to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(p geom.Point) (sx, sy int, visible bool) {
	sx = (p.X - c.Offset.X) * CellWidth
	sy = p.Y - c.Offset.Y
	visible = sx >= 0 && sx+CellWidth <= c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) geom.Point {
	return geom.Pt(sx/CellWidth+c.Offset.X, sy+c.Offset.Y)
}
