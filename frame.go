package voronoi

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Frame is a flat, row-major RGB buffer. Pixel (x, y) lives at index
// y*width + x.
//
// Frame implements image.Image and draw.Image, so it can be encoded or
// composited with the standard image packages directly.
type Frame struct {
	width  int
	height int
	pix    []RGB
}

// NewFrame creates a frame with the given dimensions, filled with black.
func NewFrame(width, height int) *Frame {
	mustSurface(width, height)
	return &Frame{
		width:  width,
		height: height,
		pix:    make([]RGB, width*height),
	}
}

// Width returns the width of the frame.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the height of the frame.
func (f *Frame) Height() int {
	return f.height
}

// Pix returns the raw pixel data. The slice aliases the frame.
func (f *Frame) Pix() []RGB {
	return f.pix
}

// Resize changes the frame dimensions, reusing the backing array when it is
// large enough. Pixel contents are unspecified afterwards.
func (f *Frame) Resize(width, height int) {
	mustSurface(width, height)
	n := width * height
	if cap(f.pix) < n {
		f.pix = make([]RGB, n)
	}
	f.pix = f.pix[:n]
	f.width = width
	f.height = height
}

// RGBAt returns the color of a single pixel.
// Out-of-bounds coordinates return black.
func (f *Frame) RGBAt(x, y int) RGB {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Black
	}
	return f.pix[y*f.width+x]
}

// SetRGB sets the color of a single pixel.
// Out-of-bounds coordinates are ignored.
func (f *Frame) SetRGB(x, y int, c RGB) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pix[y*f.width+x] = c
}

// Fill sets every pixel of r, clipped to the frame, to c.
func (f *Frame) Fill(r image.Rectangle, c RGB) {
	r = r.Intersect(f.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := f.pix[y*f.width+r.Min.X : y*f.width+r.Max.X]
		for i := range row {
			row[i] = c
		}
	}
}

// ToImage converts the frame to an opaque image.RGBA.
func (f *Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(f.Bounds())
	for i, c := range f.pix {
		img.Pix[i*4+0] = c.R
		img.Pix[i*4+1] = c.G
		img.Pix[i*4+2] = c.B
		img.Pix[i*4+3] = 0xff
	}
	return img
}

// EncodePNG writes the frame to w in PNG format.
func (f *Frame) EncodePNG(w io.Writer) error {
	return png.Encode(w, f.ToImage())
}

// SavePNG saves the frame to a PNG file.
func (f *Frame) SavePNG(path string) error {
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := f.EncodePNG(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// At implements the image.Image interface.
func (f *Frame) At(x, y int) color.Color {
	return f.RGBAt(x, y)
}

// Set implements the draw.Image interface. Alpha is discarded.
func (f *Frame) Set(x, y int, c color.Color) {
	f.SetRGB(x, y, FromColor(c))
}

// Bounds implements the image.Image interface.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements the image.Image interface.
func (f *Frame) ColorModel() color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		return FromColor(c)
	})
}

func mustSurface(width, height int) {
	if width <= 0 || height <= 0 {
		panic("voronoi: surface dimensions must be positive")
	}
}
