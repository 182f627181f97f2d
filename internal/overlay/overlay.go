// Package overlay draws small text labels, such as the frame rate, on top of
// rendered frames.
package overlay

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// padding is the gap in pixels between the text and its background box.
const padding = 2

var face = basicfont.Face7x13

// printer formats numbers for labels.
var printer = message.NewPrinter(language.English)

// FPS formats a frame rate the way the label shows it, e.g. "59.94 fps".
func FPS(fps float64) string {
	return printer.Sprintf("%05.2f fps", fps)
}

// Size returns the pixel size of the box Label draws for text.
func Size(text string) image.Point {
	d := font.Drawer{Face: face}
	w := d.MeasureString(text).Ceil()
	h := face.Metrics().Height.Ceil()
	return image.Pt(w+2*padding, h+2*padding)
}

// Label draws text with its box's top-left corner at at. A nil bg leaves the
// area behind the glyphs untouched.
func Label(dst draw.Image, at image.Point, text string, fg, bg color.Color) {
	box := image.Rectangle{Min: at, Max: at.Add(Size(text))}
	if bg != nil {
		draw.Draw(dst, box.Intersect(dst.Bounds()), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(at.X+padding, at.Y+padding+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}
