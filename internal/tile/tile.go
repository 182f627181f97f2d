// Package tile partitions a pixel surface into square tiles.
//
// Tiles are size x size pixels. Edge tiles may have smaller actual
// dimensions when the surface is not evenly divisible by the tile size,
// so every pixel belongs to exactly one tile.
//
// Thread safety: Grid is NOT thread-safe.
package tile

import "image"

// Tile is one rectangular block of the surface.
type Tile struct {
	// X is the tile column index (0-based).
	X int

	// Y is the tile row index (0-based).
	Y int

	// Rect is the tile's pixel area in surface space. Edge tiles are
	// clipped to the surface.
	Rect image.Rectangle
}

// Anchor returns the top-left pixel of the tile, the sample location used
// to pick its color.
func (t Tile) Anchor() image.Point {
	return t.Rect.Min
}

// Width returns the actual width in pixels (may be less than the grid tile
// size for edge tiles).
func (t Tile) Width() int {
	return t.Rect.Dx()
}

// Height returns the actual height in pixels.
func (t Tile) Height() int {
	return t.Rect.Dy()
}

// Contains returns true if the surface pixel (px, py) is within this tile.
func (t Tile) Contains(px, py int) bool {
	return image.Pt(px, py).In(t.Rect)
}
