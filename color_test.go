package voronoi

import (
	"image/color"
	"testing"

	"golang.org/x/image/colornames"
)

// Verify at compile time that RGB implements color.Color.
var _ color.Color = RGB{}

func TestRGB_ColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          RGB
		wantR, wantG, wantB, wantA uint32
	}{
		{
			name:  "black",
			c:     Black,
			wantR: 0, wantG: 0, wantB: 0, wantA: 65535,
		},
		{
			name:  "white",
			c:     White,
			wantR: 65535, wantG: 65535, wantB: 65535, wantA: 65535,
		},
		{
			name:  "red",
			c:     Red,
			wantR: 65535, wantG: 0, wantB: 0, wantA: 65535,
		},
		{
			name:  "mid gray",
			c:     Gray(128),
			wantR: 128 * 257, wantG: 128 * 257, wantB: 128 * 257, wantA: 65535,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want RGB
	}{
		{"light blue", colornames.Lightblue, RGB{173, 216, 230}},
		{"dark blue", colornames.Darkblue, RGB{0, 0, 139}},
		{"green", colornames.Green, RGB{0, 128, 0}},
		{"nrgba ignores alpha", color.NRGBA{R: 10, G: 20, B: 30, A: 0x80}, RGB{10, 20, 30}},
		{"rgb roundtrip", RGB{1, 2, 3}, RGB{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.in); got != tt.want {
				t.Errorf("FromColor(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNamedColors(t *testing.T) {
	tests := []struct {
		name string
		got  RGB
		want RGB
	}{
		{"Black", Black, RGB{0, 0, 0}},
		{"White", White, RGB{255, 255, 255}},
		{"Red", Red, RGB{255, 0, 0}},
		{"Green", Green, RGB{0, 128, 0}},
		{"Blue", Blue, RGB{0, 0, 255}},
		{"Yellow", Yellow, RGB{255, 255, 0}},
		{"LightBlue", LightBlue, RGB{173, 216, 230}},
		{"DarkBlue", DarkBlue, RGB{0, 0, 139}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    RGB
	}{
		{"red", 0, 1, 0.5, RGB{255, 0, 0}},
		{"green", 1.0 / 3, 1, 0.5, RGB{0, 255, 0}},
		{"blue", 2.0 / 3, 1, 0.5, RGB{0, 0, 255}},
		{"cyan", 0.5, 1, 0.5, RGB{0, 255, 255}},
		{"yellow", 1.0 / 6, 1, 0.5, RGB{255, 255, 0}},
		{"black", 0, 1, 0, RGB{0, 0, 0}},
		{"white", 0, 1, 1, RGB{255, 255, 255}},
		{"achromatic", 0.3, 0, 0.5, RGB{127, 127, 127}},
		{"pastel red", 0, 1, 0.75, RGB{255, 127, 127}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSL(tt.h, tt.s, tt.l)
			if channelDiff(got.R, tt.want.R) > 1 ||
				channelDiff(got.G, tt.want.G) > 1 ||
				channelDiff(got.B, tt.want.B) > 1 {
				t.Errorf("HSL(%v, %v, %v) = %v, want %v (±1)", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestHSL_HueWraps(t *testing.T) {
	base := HSL(0.25, 1, 0.5)
	for _, h := range []float64{1.25, 2.25, -0.75} {
		if got := HSL(h, 1, 0.5); got != base {
			t.Errorf("HSL(%v) = %v, want %v (same as hue 0.25)", h, got, base)
		}
	}
}

func TestHueToChannel_Bands(t *testing.T) {
	const p, q = 0.2, 0.8
	tests := []struct {
		t    float64
		want float64
	}{
		{0, p},
		{1.0 / 12, p + (q-p)*0.5},
		{0.25, q},
		{0.6, p + (q-p)*(2.0/3-0.6)*6},
		{0.9, p},
		{-0.75, q}, // wraps to 0.25
		{1.25, q},  // wraps to 0.25
	}
	for _, tt := range tests {
		if got := hueToChannel(p, q, tt.t); absDiff(got, tt.want) > 1e-12 {
			t.Errorf("hueToChannel(t=%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func channelDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
