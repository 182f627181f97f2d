package voronoi

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"path/filepath"
	"testing"
)

// Verify at compile time that Frame can be drawn into.
var _ draw.Image = (*Frame)(nil)

func TestNewFrame(t *testing.T) {
	f := NewFrame(8, 5)
	if f.Width() != 8 || f.Height() != 5 {
		t.Errorf("size = %dx%d, want 8x5", f.Width(), f.Height())
	}
	if len(f.Pix()) != 40 {
		t.Errorf("len(Pix()) = %d, want 40", len(f.Pix()))
	}
	if f.Bounds() != image.Rect(0, 0, 8, 5) {
		t.Errorf("Bounds() = %v", f.Bounds())
	}
	for i, c := range f.Pix() {
		if c != Black {
			t.Fatalf("pixel %d = %v, want black", i, c)
		}
	}
}

func TestFrame_SetRGB_OutOfBounds(t *testing.T) {
	f := NewFrame(10, 10)

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		f.SetRGB(c.x, c.y, Red)
		if got := f.RGBAt(c.x, c.y); got != Black {
			t.Errorf("RGBAt(%d,%d) = %v, want black", c.x, c.y, got)
		}
	}

	for i, c := range f.Pix() {
		if c != Black {
			t.Fatalf("out-of-bounds write modified pixel %d: %v", i, c)
		}
	}
}

func TestFrame_SetRGB_RowMajor(t *testing.T) {
	f := NewFrame(4, 3)
	f.SetRGB(3, 1, Red)
	if f.Pix()[1*4+3] != Red {
		t.Errorf("Pix()[7] = %v, want red", f.Pix()[7])
	}
	if f.RGBAt(3, 1) != Red {
		t.Errorf("RGBAt(3,1) = %v, want red", f.RGBAt(3, 1))
	}
}

func TestFrame_Fill(t *testing.T) {
	f := NewFrame(10, 10)
	f.Fill(image.Rect(8, 8, 20, 20), Green)

	tests := []struct {
		x, y int
		want RGB
	}{
		{8, 8, Green},
		{9, 9, Green},
		{7, 8, Black},
		{8, 7, Black},
	}
	for _, tt := range tests {
		if got := f.RGBAt(tt.x, tt.y); got != tt.want {
			t.Errorf("RGBAt(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	// Entirely outside: no-op, no panic.
	f.Fill(image.Rect(-5, -5, -1, -1), Red)
}

func TestFrame_SetColor(t *testing.T) {
	f := NewFrame(2, 2)
	f.Set(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	if got := f.RGBAt(1, 1); got != (RGB{10, 20, 30}) {
		t.Errorf("RGBAt(1,1) = %v, want {10 20 30}", got)
	}
	if got := f.ColorModel().Convert(color.White); got != White {
		t.Errorf("ColorModel().Convert(white) = %v, want White", got)
	}
}

func TestFrame_Resize(t *testing.T) {
	f := NewFrame(10, 10)
	backing := &f.Pix()[0]

	f.Resize(5, 4)
	if f.Width() != 5 || f.Height() != 4 || len(f.Pix()) != 20 {
		t.Fatalf("after shrink size = %dx%d len %d", f.Width(), f.Height(), len(f.Pix()))
	}
	if &f.Pix()[0] != backing {
		t.Error("shrinking reallocated the buffer")
	}

	f.Resize(20, 20)
	if len(f.Pix()) != 400 {
		t.Errorf("after grow len = %d, want 400", len(f.Pix()))
	}
}

func TestFrame_PanicsOnInvalidSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewFrame(0, 5) did not panic")
		}
	}()
	NewFrame(0, 5)
}

func TestFrame_ToImage(t *testing.T) {
	f := NewFrame(3, 2)
	f.SetRGB(2, 1, RGB{1, 2, 3})
	img := f.ToImage()

	if img.Bounds() != f.Bounds() {
		t.Fatalf("Bounds() = %v, want %v", img.Bounds(), f.Bounds())
	}
	got := img.RGBAAt(2, 1)
	if got != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("RGBAAt(2,1) = %v", got)
	}
	if img.RGBAAt(0, 0).A != 255 {
		t.Error("ToImage produced a transparent pixel")
	}
}

func TestFrame_PNG(t *testing.T) {
	e := NewWithPoints(threePointScene(), WithKeepColors())
	f := e.Render(30, 20, 3)

	var buf bytes.Buffer
	if err := f.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	for _, p := range []image.Point{{0, 0}, {29, 19}, {15, 10}} {
		if got, want := FromColor(img.At(p.X, p.Y)), f.RGBAt(p.X, p.Y); got != want {
			t.Errorf("decoded pixel %v = %v, want %v", p, got, want)
		}
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := f.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	if err := f.SavePNG(filepath.Join(t.TempDir(), "missing", "frame.png")); err == nil {
		t.Error("SavePNG() into a missing directory succeeded")
	}
}
