package tile

import (
	"fmt"
	"image"
	"iter"
)

// Grid divides a width x height surface into size x size tiles.
// Tiles are addressed row-major: index = ty*TilesX + tx.
type Grid struct {
	size   int
	tilesX int
	tilesY int
	width  int
	height int
}

// NewGrid creates a grid covering a width x height surface.
// A non-positive size is a programming error and panics. A non-positive
// surface yields an empty grid.
func NewGrid(width, height, size int) *Grid {
	if size <= 0 {
		panic(fmt.Sprintf("tile: size must be positive, got %d", size))
	}
	g := &Grid{size: size}
	g.Resize(width, height)
	return g
}

// Resize changes the surface dimensions.
// If dimensions haven't changed, this is a no-op.
func (g *Grid) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		g.tilesX, g.tilesY, g.width, g.height = 0, 0, 0, 0
		return
	}
	if g.width == width && g.height == height {
		return
	}
	g.width = width
	g.height = height
	g.tilesX = (width + g.size - 1) / g.size
	g.tilesY = (height + g.size - 1) / g.size
}

// TileAt returns the tile at tile coordinates (tx, ty).
// ok is false if coordinates are out of bounds.
func (g *Grid) TileAt(tx, ty int) (t Tile, ok bool) {
	if tx < 0 || tx >= g.tilesX || ty < 0 || ty >= g.tilesY {
		return Tile{}, false
	}
	x0 := tx * g.size
	y0 := ty * g.size
	return Tile{
		X:    tx,
		Y:    ty,
		Rect: image.Rect(x0, y0, min(x0+g.size, g.width), min(y0+g.size, g.height)),
	}, true
}

// TileAtPixel returns the tile containing the surface pixel (px, py).
// ok is false if the pixel is outside the surface.
func (g *Grid) TileAtPixel(px, py int) (t Tile, ok bool) {
	if px < 0 || px >= g.width || py < 0 || py >= g.height {
		return Tile{}, false
	}
	return g.TileAt(px/g.size, py/g.size)
}

// All yields every tile in row-major order (left-to-right, top-to-bottom).
func (g *Grid) All() iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		for ty := range g.tilesY {
			for tx := range g.tilesX {
				t, _ := g.TileAt(tx, ty)
				if !yield(t) {
					return
				}
			}
		}
	}
}

// Count returns the total number of tiles in the grid.
func (g *Grid) Count() int {
	return g.tilesX * g.tilesY
}

// Size returns the nominal tile edge length in pixels.
func (g *Grid) Size() int {
	return g.size
}

// TilesX returns the number of tiles horizontally.
func (g *Grid) TilesX() int {
	return g.tilesX
}

// TilesY returns the number of tiles vertically.
func (g *Grid) TilesY() int {
	return g.tilesY
}

// Width returns the surface width in pixels.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the surface height in pixels.
func (g *Grid) Height() int {
	return g.height
}
