package gamemap

import (
	"errors"
	"fmt"
	"strings"

	"shadowcast/internal/geom"
)

var (
	ErrEmptyMap  = errors.New("gamemap: empty map")
	ErrRaggedMap = errors.New("gamemap: rows have different widths")
)

// Parse reads an ASCII map, one row per line, top row first:
//
//	# wall   . floor   + door   " window   O pillar   @ floor + origin
//
// The returned origin is the '@' cell, or the map centre when there is none.
// Blank lines at either end are ignored.
func Parse(src string) (*GameMap, geom.Point, error) {
	lines := strings.Split(strings.Trim(strings.ReplaceAll(src, "\r\n", "\n"), "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, geom.Point{}, ErrEmptyMap
	}

	width := len([]rune(lines[0]))
	m := New(width, len(lines))
	origin := geom.Pt(width/2, len(lines)/2)
	for y, line := range lines {
		row := []rune(line)
		if len(row) != width {
			return nil, geom.Point{}, fmt.Errorf("line %d: %w", y+1, ErrRaggedMap)
		}
		for x, r := range row {
			t, ok := tileFromRune(r)
			if !ok {
				return nil, geom.Point{}, fmt.Errorf("line %d col %d: unknown tile %q", y+1, x+1, r)
			}
			if r == '@' {
				origin = geom.Pt(x, y)
			}
			m.Set(x, y, t)
		}
	}
	return m, origin, nil
}

// String renders the map in the format Parse reads.
func (m *GameMap) String() string {
	var b strings.Builder
	b.Grow((m.Width + 1) * m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			b.WriteRune(tileRunes[m.Tiles[y][x].Kind])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
