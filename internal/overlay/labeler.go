package overlay

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/voronoi/internal/cache"
)

// Labeler draws labels in fixed colors and keeps recently rendered labels,
// so a steady frame rate does not re-rasterize the same glyphs every frame.
type Labeler struct {
	fg, bg color.Color
	cache  *cache.LRU[string, *image.RGBA]
}

// NewLabeler creates a labeler remembering up to capacity distinct texts.
func NewLabeler(fg, bg color.Color, capacity int) *Labeler {
	return &Labeler{
		fg:    fg,
		bg:    bg,
		cache: cache.New[string, *image.RGBA](capacity),
	}
}

// Draw composites text onto dst with its box's top-left corner at at.
func (l *Labeler) Draw(dst draw.Image, at image.Point, text string) {
	img := l.cache.GetOrCreate(text, func() *image.RGBA {
		img := image.NewRGBA(image.Rectangle{Max: Size(text)})
		Label(img, image.Point{}, text, l.fg, l.bg)
		return img
	})
	draw.Draw(dst, img.Bounds().Add(at), img, image.Point{}, draw.Over)
}

// Cached returns the number of labels held.
func (l *Labeler) Cached() int {
	return l.cache.Len()
}
