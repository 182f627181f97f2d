package frameloop

import (
	"image"
	"image/color"
	"time"

	"github.com/gogpu/voronoi"
	"github.com/gogpu/voronoi/internal/overlay"
)

var (
	markerColor = voronoi.Black
	labelFG     = color.Black
	labelBG     = color.White
)

// labelCacheSize covers the spread of rates a steady loop reports.
const labelCacheSize = 128

// Driver advances an engine on the configured motion interval and renders
// frames at whatever size the display currently has.
type Driver struct {
	engine *voronoi.Engine
	cfg    voronoi.Config
	clock  *Clock
	meter  Meter
	label  *overlay.Labeler
	frame  *voronoi.Frame
	steps  int
}

// NewDriver creates a driver for e using the motion, marker and label
// settings in cfg.
func NewDriver(e *voronoi.Engine, cfg voronoi.Config) *Driver {
	return &Driver{
		engine: e,
		cfg:    cfg,
		clock:  NewClock(cfg.MoveInterval),
		label:  overlay.NewLabeler(labelFG, labelBG, labelCacheSize),
	}
}

// Advance applies every motion step that is due at now and returns how
// many were applied.
func (d *Driver) Advance(now time.Time) int {
	if !d.cfg.Animate {
		return 0
	}
	n := d.clock.Due(now)
	for range n {
		d.engine.Tick(true, d.cfg.Speed, d.cfg.Amplitude)
	}
	d.steps += n
	return n
}

// Frame advances the engine and renders a width x height image for now.
// The returned image is owned by the caller.
func (d *Driver) Frame(now time.Time, width, height int) *image.RGBA {
	d.Advance(now)

	if d.frame == nil {
		d.frame = voronoi.NewFrame(width, height)
	} else if d.frame.Width() != width || d.frame.Height() != height {
		voronoi.Logger().Debug("frameloop: surface resized", "width", width, "height", height)
		d.frame.Resize(width, height)
	}
	d.engine.RenderInto(d.frame, d.cfg.TileSize)

	img := d.frame.ToImage()
	if d.cfg.DrawMarkers {
		voronoi.DrawMarkers(img, d.engine.Points(), d.cfg.MarkerSize, markerColor)
	}
	fps := d.meter.Frame(now)
	if d.cfg.DisplayFPS {
		d.label.Draw(img, image.Pt(5, 5), overlay.FPS(fps))
	}
	return img
}

// Steps returns the total number of motion steps applied.
func (d *Driver) Steps() int {
	return d.steps
}

// FPS returns the measured frame rate.
func (d *Driver) FPS() float64 {
	return d.meter.FPS()
}

// Engine returns the driven engine.
func (d *Driver) Engine() *voronoi.Engine {
	return d.engine
}
