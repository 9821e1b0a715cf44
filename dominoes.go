package dominoes

import "fmt"

// Face is the value printed on one half of a domino.
type Face uint8

const (
	One Face = iota
	Two
	Three
	Four
	Five
	Six
)

var faceNames = [...]string{"One", "Two", "Three", "Four", "Five", "Six"}

// String returns the variant name, e.g. "Five".
func (f Face) String() string {
	if int(f) < len(faceNames) {
		return faceNames[f]
	}
	return fmt.Sprintf("Face(%d)", uint8(f))
}

// Tile is a single domino. Tiles are plain values and are never mutated after
// creation.
type Tile struct {
	Top    Face
	Bottom Face
}

// String formats the tile as "{Top Bottom}".
func (t Tile) String() string {
	return "{" + t.Top.String() + " " + t.Bottom.String() + "}"
}

const (
	// DefaultTileCount is the number of tiles a new Game starts with.
	DefaultTileCount = 10
	// TileSize is the edge length of the square outline drawn per tile.
	TileSize = 10
)

// DefaultTiles returns the placeholder population used by New:
// DefaultTileCount tiles, each One over Five.
func DefaultTiles() []Tile {
	tiles := make([]Tile, DefaultTileCount)
	for i := range tiles {
		tiles[i] = Tile{Top: One, Bottom: Five}
	}
	return tiles
}

// Point is an integer surface coordinate. The origin is the top-left of the
// drawing surface, with Y increasing downward.
type Point struct {
	X, Y int
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to ebiten.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorBlack matches the canvas default stroke style.
	ColorBlack = Color{0, 0, 0, 1}
	// ColorWhite is the default clear color.
	ColorWhite = Color{1, 1, 1, 1}
)

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}
