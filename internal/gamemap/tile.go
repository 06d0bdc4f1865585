package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileDoor
	TileWindow
	TilePillar
)

// Tile holds the kind and visibility state for one map cell.
type Tile struct {
	Kind        TileKind
	Walkable    bool
	Transparent bool
	Explored    bool
	Visible     bool
}

// MakeWall returns a blocking, opaque wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall, Walkable: false, Transparent: false}
}

// MakeFloor returns a passable, transparent floor tile.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor, Walkable: true, Transparent: true}
}

// MakeDoor returns a closed door: walkable but it blocks sight.
func MakeDoor() Tile {
	return Tile{Kind: TileDoor, Walkable: true, Transparent: false}
}

// MakeWindow returns a tile light passes through but walkers cannot.
func MakeWindow() Tile {
	return Tile{Kind: TileWindow, Walkable: false, Transparent: true}
}

// MakePillar returns a free-standing opaque column.
func MakePillar() Tile {
	return Tile{Kind: TilePillar, Walkable: false, Transparent: false}
}

// tileRunes is the ASCII encoding used by Parse and GameMap.String.
var tileRunes = map[TileKind]rune{
	TileWall:   '#',
	TileFloor:  '.',
	TileDoor:   '+',
	TileWindow: '"',
	TilePillar: 'O',
}

// tileFromRune decodes one ASCII map cell.
func tileFromRune(r rune) (Tile, bool) {
	switch r {
	case '#':
		return MakeWall(), true
	case '.', '@':
		return MakeFloor(), true
	case '+':
		return MakeDoor(), true
	case '"':
		return MakeWindow(), true
	case 'O':
		return MakePillar(), true
	}
	return Tile{}, false
}
