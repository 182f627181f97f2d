package voronoi

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// Config collects the settings a frame loop needs to drive an Engine.
// The zero value is not useful; start from DefaultConfig.
type Config struct {
	// PointCount is the number of randomly placed seed points.
	PointCount int

	// TileSize is the edge length of a tile in pixels.
	TileSize int

	// Animate enables seed point motion.
	Animate bool

	// Speed is the distance a point moves per motion step, as a fraction
	// of the surface.
	Speed float64

	// Amplitude is the maximum drift from a point's initial position, as a
	// fraction of the surface.
	Amplitude float64

	// MoveInterval is the wall-clock time between motion steps.
	MoveInterval time.Duration

	// Ramp and Direction select the seed point colors.
	Ramp      RampKind
	Direction Direction

	// DrawMarkers overlays a square on every seed point.
	DrawMarkers bool
	MarkerSize  int

	// FPSCap limits the number of frames rendered per second.
	FPSCap int

	// DisplayFPS draws the measured frame rate in the top-left corner.
	DisplayFPS bool

	// Seed makes placement and motion reproducible when non-zero.
	Seed uint64
}

// DefaultConfig returns the stock configuration: 15 pixel tiles, points
// moving 5% of the surface every 100ms within 10% of their origin, 60 FPS.
func DefaultConfig() Config {
	return Config{
		PointCount:   64,
		TileSize:     15,
		Animate:      true,
		Speed:        0.05,
		Amplitude:    0.1,
		MoveInterval: 100 * time.Millisecond,
		Ramp:         Rainbow,
		Direction:    NoDirection,
		DrawMarkers:  false,
		MarkerSize:   DefaultMarkerSize,
		FPSCap:       60,
		DisplayFPS:   false,
	}
}

// Validate reports every invalid field, joined into one error.
func (c Config) Validate() error {
	var errs []error
	if c.PointCount <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidPointCount, c.PointCount))
	}
	if c.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidTileSize, c.TileSize))
	}
	if c.Speed < 0 || math.IsNaN(c.Speed) || math.IsInf(c.Speed, 0) {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidSpeed, c.Speed))
	}
	if !(c.Amplitude >= 0 && c.Amplitude <= 1) {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidAmplitude, c.Amplitude))
	}
	if c.DrawMarkers && c.MarkerSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidMarkerSize, c.MarkerSize))
	}
	if c.FPSCap <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidFPS, c.FPSCap))
	}
	if c.Animate && c.MoveInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidInterval, c.MoveInterval))
	}
	if _, err := c.Ramp.MarshalText(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Direction.MarshalText(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// RegisterFlags binds every field to a command-line flag on fs, using the
// current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.PointCount, "points", c.PointCount, "number of seed points")
	fs.IntVar(&c.TileSize, "tile", c.TileSize, "tile size in pixels")
	fs.BoolVar(&c.Animate, "animate", c.Animate, "move seed points")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "distance per motion step, fraction of the surface")
	fs.Float64Var(&c.Amplitude, "amplitude", c.Amplitude, "maximum drift from the initial position, fraction of the surface")
	fs.DurationVar(&c.MoveInterval, "move-every", c.MoveInterval, "time between motion steps")
	fs.TextVar(&c.Ramp, "ramp", c.Ramp, "color ramp: rainbow, gray, ocean, lava, dark-leaf, random")
	fs.TextVar(&c.Direction, "direction", c.Direction, "ramp direction: none, horizontal, vertical")
	fs.BoolVar(&c.DrawMarkers, "markers", c.DrawMarkers, "draw seed point markers")
	fs.IntVar(&c.MarkerSize, "marker-size", c.MarkerSize, "marker edge length in pixels")
	fs.IntVar(&c.FPSCap, "fps", c.FPSCap, "frame rate cap")
	fs.BoolVar(&c.DisplayFPS, "show-fps", c.DisplayFPS, "draw the measured frame rate")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one)")
}

// Options returns the engine options matching c.
func (c Config) Options() []Option {
	opts := []Option{
		WithRamp(c.Ramp),
		WithDirection(c.Direction),
		WithMotion(c.Animate),
	}
	if c.Seed != 0 {
		opts = append(opts, WithRand(rand.New(rand.NewPCG(c.Seed, c.Seed))))
	}
	return opts
}

// NewEngine creates an engine with c.PointCount random seed points.
func (c Config) NewEngine() (*Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return New(c.PointCount, c.Options()...), nil
}

// FrameInterval returns the minimum time between two frames.
func (c Config) FrameInterval() time.Duration {
	if c.FPSCap <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.FPSCap)
}
