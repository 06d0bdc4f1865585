package geom

// Line steps through the tiles of a Bresenham line from its start to its
// end point, both included.
type Line struct {
	delta Point // (|dx|, -|dy|)
	step  Point // ±1 on each axis
	err   int
	cur   Point
	end   Point
	done  bool
}

// NewLine returns a Line from p0 to p1.
func NewLine(p0, p1 Point) *Line {
	delta := Pt(abs(p1.X-p0.X), -abs(p1.Y-p0.Y))
	step := Pt(-1, -1)
	if p0.X < p1.X {
		step.X = 1
	}
	if p0.Y < p1.Y {
		step.Y = 1
	}
	return &Line{
		delta: delta,
		step:  step,
		err:   delta.X + delta.Y,
		cur:   p0,
		end:   p1,
	}
}

// Next returns the next tile on the line. ok is false once the end point
// has been returned.
func (l *Line) Next() (p Point, ok bool) {
	if l.done {
		return Point{}, false
	}
	p = l.cur
	if p == l.end {
		l.done = true
		return p, true
	}

	e2 := 2 * l.err
	if e2 >= l.delta.Y {
		l.err += l.delta.Y
		l.cur.X += l.step.X
	}
	if e2 <= l.delta.X {
		l.err += l.delta.X
		l.cur.Y += l.step.Y
	}
	return p, true
}

// Bresenham returns every tile on the line from p0 to p1.
func Bresenham(p0, p1 Point) []Point {
	d := p1.Sub(p0)
	pts := make([]Point, 0, max(abs(d.X), abs(d.Y))+1)
	l := NewLine(p0, p1)
	for p, ok := l.Next(); ok; p, ok = l.Next() {
		pts = append(pts, p)
	}
	return pts
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
