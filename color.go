package voronoi

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

// RGB represents an opaque color with 8-bit red, green and blue components.
type RGB struct {
	R, G, B uint8
}

// RGBA implements the color.Color interface. Alpha is always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// FromColor converts a standard color.Color to RGB, dropping alpha.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// Gray creates a gray color with the same level on every channel.
func Gray(level uint8) RGB {
	return RGB{R: level, G: level, B: level}
}

// Common colors
var (
	Black     = FromColor(colornames.Black)
	White     = FromColor(colornames.White)
	Red       = FromColor(colornames.Red)
	Green     = FromColor(colornames.Green)
	Blue      = FromColor(colornames.Blue)
	Yellow    = FromColor(colornames.Yellow)
	LightBlue = FromColor(colornames.Lightblue)
	DarkBlue  = FromColor(colornames.Darkblue)
)

// HSL creates a color from HSL values.
// h is hue in turns (1.0 is a full revolution, values outside [0, 1) wrap),
// s is saturation [0, 1], l is lightness [0, 1].
//
// The conversion uses the p/q form: each channel is sampled from the
// piecewise hue ramp at h+1/3, h and h-1/3.
func HSL(h, s, l float64) RGB {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}

	if s == 0 {
		v := unitToByte(l)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: unitToByte(hueToChannel(p, q, h+1.0/3)),
		G: unitToByte(hueToChannel(p, q, h)),
		B: unitToByte(hueToChannel(p, q, h-1.0/3)),
	}
}

// hueToChannel maps a hue offset t to a channel intensity between p and q.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// unitToByte scales a [0, 1] intensity to [0, 255], truncating.
func unitToByte(x float64) uint8 {
	return uint8(clamp255(x * 255))
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
