package render

import (
	"shadowcast/internal/fov"
	"shadowcast/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the glyphs used to draw one tile shape's view. Emoji carry
// their own colors, so remembered tiles use distinct glyphs rather than a
// dimmed foreground.
type Theme struct {
	Wall, Floor, Door, Window, Pillar string // currently visible
	DimWall, DimFloor                 string // explored but not visible
	Origin                            string
}

// EmojiThemes gives every tile shape its own look so the active policy is
// obvious at a glance.
var EmojiThemes = map[fov.Shape]Theme{
	fov.ShapeSquare: {
		Wall: "🧱", Floor: "🟫", Door: "🚪", Window: "🪟", Pillar: "🗿",
		DimWall: "🌑", DimFloor: "🔲", Origin: "🔦",
	},
	fov.ShapeDiamond: {
		Wall: "💎", Floor: "🟦", Door: "🚪", Window: "🪟", Pillar: "🔷",
		DimWall: "🌑", DimFloor: "🔲", Origin: "🔦",
	},
	fov.ShapeBeveled: {
		Wall: "🪨", Floor: "🟩", Door: "🚪", Window: "🪟", Pillar: "🌲",
		DimWall: "🌑", DimFloor: "🔲", Origin: "🔦",
	},
}

// ASCIITheme is used on terminals without emoji support. Visibility is
// carried by color instead; see asciiStyle.
var ASCIITheme = Theme{
	Wall: "#", Floor: ".", Door: "+", Window: `"`, Pillar: "O",
	DimWall: "#", DimFloor: ".", Origin: "@",
}

// glyph picks the glyph for a tile in its current visibility state.
func (th Theme) glyph(t *gamemap.Tile) string {
	if !t.Visible {
		switch t.Kind {
		case gamemap.TileFloor:
			return th.DimFloor
		case gamemap.TileDoor:
			return th.Door
		case gamemap.TileWindow:
			return th.Window
		}
		return th.DimWall
	}
	switch t.Kind {
	case gamemap.TileFloor:
		return th.Floor
	case gamemap.TileDoor:
		return th.Door
	case gamemap.TileWindow:
		return th.Window
	case gamemap.TilePillar:
		return th.Pillar
	}
	return th.Wall
}

// asciiStyle colors ASCII glyphs: bright when lit, gray when remembered.
func asciiStyle(t *gamemap.Tile) tcell.Style {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	if !t.Visible {
		return base.Foreground(tcell.ColorDarkGray)
	}
	if t.Transparent {
		return base.Foreground(tcell.ColorLightYellow)
	}
	return base.Foreground(tcell.ColorWhite)
}
