package voronoi

import (
	"cmp"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/gogpu/voronoi/internal/tile"
)

// Engine owns a set of seed points and rasterizes the blocky tessellation
// they define.
//
// An Engine is not safe for concurrent use. Callers drive it from a single
// frame loop: Tick to advance the points, then Render.
type Engine struct {
	points []SeedPoint
	rng    *rand.Rand

	ramp      RampKind
	direction Direction
}

// New creates an engine with count seed points placed uniformly at random
// over the surface and colored with the configured ramp.
// A count of zero or less panics.
func New(count int, opts ...Option) *Engine {
	if count <= 0 {
		panic(fmt.Sprintf("voronoi: point count must be positive, got %d", count))
	}
	o := applyOptions(opts)

	points := make([]SeedPoint, count)
	for i := range points {
		pos := Pt(o.rng.Float64(), o.rng.Float64())
		if o.motion {
			points[i] = NewMovingSeedPoint(pos, Black, o.rng.Float64()*360)
		} else {
			points[i] = NewSeedPoint(pos, Black)
		}
	}

	e := &Engine{points: points, rng: o.rng}
	e.Recolor(o.ramp, o.direction)
	Logger().Debug("voronoi: engine created",
		"points", count, "ramp", o.ramp, "direction", o.direction, "motion", o.motion)
	return e
}

// NewWithPoints creates an engine from an explicit list of seed points.
// The list is copied. Unless WithKeepColors is given the points are
// recolored with the configured ramp. An empty list panics.
func NewWithPoints(points []SeedPoint, opts ...Option) *Engine {
	if len(points) == 0 {
		panic("voronoi: seed point list must not be empty")
	}
	o := applyOptions(opts)

	e := &Engine{
		points:    slices.Clone(points),
		rng:       o.rng,
		ramp:      o.ramp,
		direction: o.direction,
	}
	if !o.keepColors {
		e.Recolor(o.ramp, o.direction)
	}
	Logger().Debug("voronoi: engine created",
		"points", len(points), "ramp", o.ramp, "direction", o.direction, "keepColors", o.keepColors)
	return e
}

func applyOptions(opts []Option) engineOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // visual effect, not security
	}
	return o
}

// Recolor assigns a freshly generated ramp to the seed points.
//
// With a direction other than NoDirection the points are first stably
// sorted by the matching coordinate of their current position, so ramp
// index 0 lands on the leftmost (or topmost) point. The sort order persists:
// Points reports the sorted order afterwards.
func (e *Engine) Recolor(kind RampKind, dir Direction) {
	switch dir {
	case Horizontal:
		slices.SortStableFunc(e.points, func(a, b SeedPoint) int {
			return cmp.Compare(a.current.X, b.current.X)
		})
	case Vertical:
		slices.SortStableFunc(e.points, func(a, b SeedPoint) int {
			return cmp.Compare(a.current.Y, b.current.Y)
		})
	}

	ramp := GenerateRamp(kind, len(e.points), e.rng)
	for i := range e.points {
		e.points[i].Color = ramp[i]
	}
	e.ramp = kind
	e.direction = dir
}

// Ramp returns the ramp kind and direction last applied.
func (e *Engine) Ramp() (RampKind, Direction) {
	return e.ramp, e.direction
}

// Tick advances every moving seed point by one animation step when animate
// is true. speed is the distance moved per step and amplitude the maximum
// drift from the initial position, both as fractions of the surface.
func (e *Engine) Tick(animate bool, speed, amplitude float64) {
	if !animate {
		return
	}
	for i := range e.points {
		e.points[i].step(e.rng, speed, amplitude)
	}
}

// Render rasterizes the tessellation into a new width x height frame.
// The returned frame is owned by the caller.
//
// Every tileSize x tileSize block takes the color of the seed point nearest
// to the block's top-left pixel; blocks on the right and bottom edges are
// clipped to the surface. Render panics if tileSize, width or height is not
// positive.
func (e *Engine) Render(width, height, tileSize int) *Frame {
	f := NewFrame(width, height)
	e.RenderInto(f, tileSize)
	return f
}

// RenderInto rasterizes the tessellation into f at f's current size.
// Reusing one frame across ticks avoids an allocation per frame.
func (e *Engine) RenderInto(f *Frame, tileSize int) {
	if tileSize <= 0 {
		panic(fmt.Sprintf("voronoi: tile size must be positive, got %d", tileSize))
	}

	w, h := f.Width(), f.Height()
	abs := make([]Point, len(e.points))
	for i, p := range e.points {
		abs[i] = p.Absolute(w, h)
	}

	for t := range tile.NewGrid(w, h, tileSize).All() {
		a := t.Anchor()
		nearest := nearestIndex(abs, Pt(float64(a.X), float64(a.Y)))
		f.Fill(t.Rect, e.points[nearest].Color)
	}
}

// nearestIndex returns the index of the point closest to at.
// Ties go to the lowest index.
func nearestIndex(points []Point, at Point) int {
	best := 0
	bestDist := math.Inf(1)
	for i, p := range points {
		if d := p.DistanceSquared(at); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Nearest returns the seed point closest to the surface pixel (x, y) on a
// width x height surface, using the same search as Render.
func (e *Engine) Nearest(x, y, width, height int) SeedPoint {
	abs := make([]Point, len(e.points))
	for i, p := range e.points {
		abs[i] = p.Absolute(width, height)
	}
	return e.points[nearestIndex(abs, Pt(float64(x), float64(y)))]
}

// Points returns a copy of the seed points in engine order, for marker
// rendering and inspection.
func (e *Engine) Points() []SeedPoint {
	return slices.Clone(e.points)
}

// Len returns the number of seed points.
func (e *Engine) Len() int {
	return len(e.points)
}
