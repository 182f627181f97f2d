package voronoi

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestGenerateRamp_GrayScale(t *testing.T) {
	got := GenerateRamp(GrayScale, 4, nil)
	want := []RGB{Gray(0), Gray(64), Gray(128), Gray(192)}
	if !slices.Equal(got, want) {
		t.Errorf("GenerateRamp(GrayScale, 4) = %v, want %v", got, want)
	}
}

func TestGenerateRamp_GrayScaleMonotonic(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 100, 255, 256, 257, 1000} {
		ramp := GenerateRamp(GrayScale, n, nil)
		if len(ramp) != n {
			t.Fatalf("n=%d: len = %d", n, len(ramp))
		}
		for i := 1; i < n; i++ {
			prev, cur := ramp[i-1], ramp[i]
			if cur.R < prev.R || cur.G < prev.G || cur.B < prev.B {
				t.Fatalf("n=%d: ramp[%d]=%v < ramp[%d]=%v", n, i, cur, i-1, prev)
			}
		}
	}
}

func TestGenerateRamp_Rainbow(t *testing.T) {
	ramp := GenerateRamp(Rainbow, 41, nil)

	if ramp[0] != (RGB{255, 0, 0}) {
		t.Errorf("ramp[0] = %v, want pure red", ramp[0])
	}
	// One full hue turn every 20 points.
	if ramp[20] != ramp[0] || ramp[40] != ramp[0] {
		t.Errorf("ramp[20]=%v ramp[40]=%v, want %v", ramp[20], ramp[40], ramp[0])
	}
	if ramp[5] != HSL(0.25, 1, 0.5) {
		t.Errorf("ramp[5] = %v, want HSL(0.25, 1, 0.5) = %v", ramp[5], HSL(0.25, 1, 0.5))
	}
}

func TestGenerateRamp_Presets(t *testing.T) {
	tests := []struct {
		name string
		kind RampKind
		n    int
		want []RGB
	}{
		{
			name: "ocean",
			kind: Ocean,
			n:    4,
			want: []RGB{{0, 0, 255}, {63, 63, 255}, {127, 127, 255}, {191, 191, 255}},
		},
		{
			// Truncation towards zero: 255 + (-255*1)/4 = 255 - 63.
			name: "lava",
			kind: Lava,
			n:    4,
			want: []RGB{{255, 255, 0}, {255, 192, 0}, {255, 128, 0}, {255, 64, 0}},
		},
		{
			name: "dark leaf",
			kind: DarkLeaf,
			n:    3,
			want: []RGB{{0, 128, 0}, {0, 86, 0}, {0, 43, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateRamp(tt.kind, tt.n, nil)
			if !slices.Equal(got, tt.want) {
				t.Errorf("GenerateRamp(%v, %d) = %v, want %v", tt.kind, tt.n, got, tt.want)
			}
		})
	}
}

func TestGenerateRamp_Random(t *testing.T) {
	a := GenerateRamp(Random, 50, rand.New(rand.NewPCG(7, 7)))
	b := GenerateRamp(Random, 50, rand.New(rand.NewPCG(7, 7)))
	if len(a) != 50 {
		t.Fatalf("len = %d, want 50", len(a))
	}
	if !slices.Equal(a, b) {
		t.Error("same seed produced different random ramps")
	}

	distinct := make(map[RGB]struct{})
	for _, c := range a {
		distinct[c] = struct{}{}
	}
	if len(distinct) < 40 {
		t.Errorf("only %d distinct colors out of 50", len(distinct))
	}
}

func TestGenerateRamp_RandomNeedsSource(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("GenerateRamp(Random, nil rng) did not panic")
		}
	}()
	GenerateRamp(Random, 3, nil)
}

func TestGenerateRamp_UnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("GenerateRamp(unknown) did not panic")
		}
	}()
	GenerateRamp(RampKind(99), 3, nil)
}

func TestGenerateRamp_EmptyCount(t *testing.T) {
	for _, kind := range []RampKind{Rainbow, GrayScale, Ocean, Lava, DarkLeaf, Random} {
		for _, n := range []int{0, -3} {
			if got := GenerateRamp(kind, n, nil); len(got) != 0 {
				t.Errorf("GenerateRamp(%v, %d) len = %d, want 0", kind, n, len(got))
			}
		}
	}
}

func TestRampBetween_SingleColor(t *testing.T) {
	got := RampBetween(Blue, White, 1)
	if len(got) != 1 || got[0] != Blue {
		t.Errorf("RampBetween(Blue, White, 1) = %v, want [Blue]", got)
	}
}

func TestRampKind_Text(t *testing.T) {
	for _, kind := range []RampKind{Rainbow, GrayScale, Ocean, Lava, DarkLeaf, Random} {
		text, err := kind.MarshalText()
		if err != nil {
			t.Fatalf("%v.MarshalText() error = %v", kind, err)
		}
		var back RampKind
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		if back != kind {
			t.Errorf("UnmarshalText(%q) = %v, want %v", text, back, kind)
		}
	}

	var k RampKind
	if err := k.UnmarshalText([]byte(" Dark-Leaf ")); err != nil || k != DarkLeaf {
		t.Errorf("UnmarshalText(\" Dark-Leaf \") = %v, %v", k, err)
	}
	if err := k.UnmarshalText([]byte("plaid")); !errors.Is(err, ErrUnknownRamp) {
		t.Errorf("UnmarshalText(plaid) error = %v, want ErrUnknownRamp", err)
	}
	if _, err := RampKind(42).MarshalText(); !errors.Is(err, ErrUnknownRamp) {
		t.Errorf("RampKind(42).MarshalText() error = %v, want ErrUnknownRamp", err)
	}
	if got := RampKind(42).String(); got != "RampKind(42)" {
		t.Errorf("String() = %q", got)
	}
}

func TestDirection_Text(t *testing.T) {
	tests := []struct {
		text string
		want Direction
	}{
		{"none", NoDirection},
		{"horizontal", Horizontal},
		{"VERTICAL", Vertical},
	}
	for _, tt := range tests {
		var d Direction
		if err := d.UnmarshalText([]byte(tt.text)); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", tt.text, err)
		}
		if d != tt.want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", tt.text, d, tt.want)
		}
	}

	var d Direction
	if err := d.UnmarshalText([]byte("diagonal")); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("UnmarshalText(diagonal) error = %v, want ErrUnknownDirection", err)
	}
	if Horizontal.String() != "horizontal" {
		t.Errorf("Horizontal.String() = %q", Horizontal.String())
	}
}
