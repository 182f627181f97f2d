package voronoi

import (
	"math"
	"math/rand/v2"
)

// Reflection headings are drawn from [reflectMinDeg, reflectMaxDeg). The half
// circle facing left makes a bounce reverse horizontal travel more often than
// vertical travel.
const (
	reflectMinDeg = 90.0
	reflectMaxDeg = 270.0
)

// Motion is the state of a bounded random walk: a point advances a fixed
// distance per step along a persistent heading and picks a new heading when
// it hits the edge of its bounds.
//
// The zero value heads along +X.
type Motion struct {
	// speed carries the direction of travel in its sign; its magnitude is
	// replaced by the caller-supplied speed on every step.
	speed float64

	// heading in degrees.
	heading float64
}

// NewMotion creates a motion state with the given heading in degrees.
func NewMotion(heading float64) Motion {
	return Motion{speed: 1, heading: heading}
}

// Heading returns the current heading in degrees.
func (m *Motion) Heading() float64 {
	return m.heading
}

// Reversed reports whether the last bounce reversed the direction of travel
// and no bounce has restored it since.
func (m *Motion) Reversed() bool {
	return math.Signbit(m.speed)
}

// Step advances pos by speed along the current heading and returns the new
// position clamped into bounds.
//
// When the unclamped candidate touches or crosses the lower bound, or crosses
// the upper bound, on either axis, a new heading is drawn from rng and the
// direction of travel is reversed for the next step. The current step still
// uses the candidate computed before the bounce, then clamps it.
func (m *Motion) Step(rng *rand.Rand, pos Point, speed float64, bounds Bounds) Point {
	speed = math.Abs(speed)
	if m.Reversed() {
		speed = -speed
	}
	m.speed = speed

	rad := m.heading * math.Pi / 180
	next := Point{
		X: pos.X + speed*math.Cos(rad),
		Y: pos.Y + speed*math.Sin(rad),
	}

	if next.X <= bounds.Min.X || next.Y <= bounds.Min.Y ||
		next.X > bounds.Max.X || next.Y > bounds.Max.Y {
		m.heading = reflectMinDeg + rng.Float64()*(reflectMaxDeg-reflectMinDeg)
		// Negation flips the sign bit even when speed is zero.
		m.speed = -m.speed
	}

	return bounds.Clamp(next)
}
