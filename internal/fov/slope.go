package fov

import "fmt"

// Slope is an exact rational rise/run. NewSlope keeps Run >= 0 so that
// comparison by cross-multiplication preserves order.
type Slope struct {
	Rise, Run int
}

var (
	One  = NewSlope(1, 1) // the diagonal; every octant scan starts below it
	Zero = NewSlope(0, 1) // the octant's axis
)

// NewSlope returns rise/run with the sign moved onto rise.
func NewSlope(rise, run int) Slope {
	if run < 0 {
		rise, run = -rise, -run
	}
	return Slope{Rise: rise, Run: run}
}

// Cmp returns -1, 0 or +1 as s is less than, equal to or greater than o.
func (s Slope) Cmp(o Slope) int {
	l, r := s.Rise*o.Run, o.Rise*s.Run
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	}
	return 0
}

// Less reports whether s < o.
func (s Slope) Less(o Slope) bool { return s.Cmp(o) < 0 }

// Greater reports whether s > o.
func (s Slope) Greater(o Slope) bool { return s.Cmp(o) > 0 }

func (s Slope) String() string {
	return fmt.Sprintf("%d/%d", s.Rise, s.Run)
}
