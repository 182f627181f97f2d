package voronoi

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// DefaultMarkerSize is the edge length in pixels of a seed point marker.
const DefaultMarkerSize = 6

// DrawMarkers draws a filled size x size square centred on the current
// position of every point, scaled to dst's bounds. Markers are clipped to
// dst.
func DrawMarkers(dst draw.Image, points []SeedPoint, size int, c color.Color) {
	if size <= 0 {
		return
	}
	b := dst.Bounds()
	src := image.NewUniform(c)
	for _, p := range points {
		r := markerRect(p.Absolute(b.Dx(), b.Dy()), size).Add(b.Min)
		draw.Draw(dst, r.Intersect(b), src, image.Point{}, draw.Src)
	}
}

// markerRect returns the square of the given size centred on center.
func markerRect(center Point, size int) image.Rectangle {
	x0 := int(math.Round(center.X)) - size/2
	y0 := int(math.Round(center.Y)) - size/2
	return image.Rect(x0, y0, x0+size, y0+size)
}
