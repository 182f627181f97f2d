package voronoi

import "math/rand/v2"

// Option configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Rainbow ramp, random source seeded for reproducible output
//	e := voronoi.New(64, voronoi.WithRand(rand.New(rand.NewPCG(1, 2))))
//
//	// Lava ramp running left to right
//	e := voronoi.New(64, voronoi.WithRamp(voronoi.Lava), voronoi.WithDirection(voronoi.Horizontal))
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	ramp       RampKind
	direction  Direction
	rng        *rand.Rand
	motion     bool
	keepColors bool
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		ramp:      Rainbow,
		direction: NoDirection,
		rng:       nil, // Will be seeded from the runtime source if nil
		motion:    true,
	}
}

// WithRamp sets the color ramp assigned to the seed points.
func WithRamp(kind RampKind) Option {
	return func(o *engineOptions) {
		o.ramp = kind
	}
}

// WithDirection sets the axis the ramp follows.
func WithDirection(dir Direction) Option {
	return func(o *engineOptions) {
		o.direction = dir
	}
}

// WithRand injects the random source used for placement, random ramps and
// motion headings. Tests pass a seeded source to get deterministic output.
//
// The engine takes ownership of rng; it must not be shared with code running
// concurrently with the engine.
func WithRand(rng *rand.Rand) Option {
	return func(o *engineOptions) {
		o.rng = rng
	}
}

// WithMotion controls whether randomly placed seed points can move.
// It has no effect on points passed to NewWithPoints, which keep the kind
// they were constructed with. Default: true.
func WithMotion(enabled bool) Option {
	return func(o *engineOptions) {
		o.motion = enabled
	}
}

// WithKeepColors leaves the colors of points passed to NewWithPoints
// untouched instead of assigning a ramp.
func WithKeepColors() Option {
	return func(o *engineOptions) {
		o.keepColors = true
	}
}
