package voronoi

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// RampKind selects how seed point colors are generated.
type RampKind int

const (
	// Rainbow walks the hue circle, one full turn every 20 points.
	Rainbow RampKind = iota

	// GrayScale is an equally distributed ramp from black towards white.
	GrayScale

	// Ocean is a linear ramp from blue to white.
	Ocean

	// Lava is a linear ramp from yellow to red.
	Lava

	// DarkLeaf is a linear ramp from green to black.
	DarkLeaf

	// Random picks every channel independently.
	Random
)

var rampNames = [...]string{
	Rainbow:   "rainbow",
	GrayScale: "gray",
	Ocean:     "ocean",
	Lava:      "lava",
	DarkLeaf:  "dark-leaf",
	Random:    "random",
}

// String returns the name of the ramp kind.
func (k RampKind) String() string {
	if k < 0 || int(k) >= len(rampNames) {
		return fmt.Sprintf("RampKind(%d)", int(k))
	}
	return rampNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k RampKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(rampNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRamp, int(k))
	}
	return []byte(rampNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Names are matched case-insensitively.
func (k *RampKind) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range rampNames {
		if n == name {
			*k = RampKind(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownRamp, name)
}

// Direction selects the axis a ramp follows across the surface.
type Direction int

const (
	// NoDirection assigns ramp colors in point order.
	NoDirection Direction = iota

	// Horizontal assigns ramp colors from left to right.
	Horizontal

	// Vertical assigns ramp colors from top to bottom.
	Vertical
)

var directionNames = [...]string{
	NoDirection: "none",
	Horizontal:  "horizontal",
	Vertical:    "vertical",
}

// String returns the name of the direction.
func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if d < 0 || int(d) >= len(directionNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, int(d))
	}
	return []byte(directionNames[d]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range directionNames {
		if n == name {
			*d = Direction(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}

// rainbowPeriod is the number of points per full hue turn.
const rainbowPeriod = 20.0

// GenerateRamp returns count colors of the given kind, lowest index first.
// rng is only consulted by Random and may be nil for the other kinds.
// A count of zero or less yields an empty ramp.
func GenerateRamp(kind RampKind, count int, rng *rand.Rand) []RGB {
	if count <= 0 {
		return []RGB{}
	}

	switch kind {
	case GrayScale:
		ramp := make([]RGB, count)
		for i := range ramp {
			ramp[i] = Gray(uint8(i * 256 / count))
		}
		return ramp
	case Rainbow:
		ramp := make([]RGB, count)
		for i := range ramp {
			ramp[i] = HSL(float64(i)/rainbowPeriod, 1, 0.5)
		}
		return ramp
	case Ocean:
		return RampBetween(Blue, White, count)
	case Lava:
		return RampBetween(Yellow, Red, count)
	case DarkLeaf:
		return RampBetween(Green, Black, count)
	case Random:
		if rng == nil {
			panic("voronoi: random ramp requires a random source")
		}
		ramp := make([]RGB, count)
		for i := range ramp {
			ramp[i] = RGB{
				R: uint8(rng.IntN(256)),
				G: uint8(rng.IntN(256)),
				B: uint8(rng.IntN(256)),
			}
		}
		return ramp
	default:
		panic(fmt.Sprintf("voronoi: unknown ramp kind %d", int(kind)))
	}
}

// RampBetween returns count colors linearly interpolated from "from" towards
// "to". Index i is from + (to-from)*i/count per channel with truncating
// integer division, so "to" itself is never reached.
func RampBetween(from, to RGB, count int) []RGB {
	if count <= 0 {
		return []RGB{}
	}
	ramp := make([]RGB, count)
	for i := range ramp {
		ramp[i] = RGB{
			R: lerpChannel(from.R, to.R, i, count),
			G: lerpChannel(from.G, to.G, i, count),
			B: lerpChannel(from.B, to.B, i, count),
		}
	}
	return ramp
}

func lerpChannel(from, to uint8, i, n int) uint8 {
	return uint8(int(from) + (int(to)-int(from))*i/n)
}
