package voronoi

import "math/rand/v2"

// SeedPoint is a colored anchor. Every tile takes the color of the seed
// point nearest to it.
//
// Positions are normalized to the surface. Initial is fixed at construction;
// Current starts at Initial and only moves for points created with
// NewMovingSeedPoint.
type SeedPoint struct {
	// Color is the fill color of the point's cell.
	Color RGB

	initial Point
	current Point

	moving bool
	motion Motion
}

// NewSeedPoint creates a static seed point at pos.
func NewSeedPoint(pos Point, c RGB) SeedPoint {
	return SeedPoint{Color: c, initial: pos, current: pos}
}

// NewMovingSeedPoint creates a seed point at pos that drifts around pos when
// the engine is ticked with animation on. Its first heading is heading
// degrees.
func NewMovingSeedPoint(pos Point, c RGB, heading float64) SeedPoint {
	return SeedPoint{
		Color:   c,
		initial: pos,
		current: pos,
		moving:  true,
		motion:  NewMotion(heading),
	}
}

// Initial returns the position the point was created at.
func (p SeedPoint) Initial() Point { return p.initial }

// Current returns the position the point is drawn at.
func (p SeedPoint) Current() Point { return p.current }

// Moving reports whether the point carries motion state.
func (p SeedPoint) Moving() bool { return p.moving }

// Absolute returns the current position on a width x height surface.
func (p SeedPoint) Absolute(width, height int) Point {
	return p.current.Scale(float64(width), float64(height))
}

// step advances a moving point within amplitude of its initial position.
// Static points never move.
func (p *SeedPoint) step(rng *rand.Rand, speed, amplitude float64) {
	if !p.moving {
		return
	}
	bounds := Around(p.initial, amplitude).Intersect(unitBounds)
	p.current = p.motion.Step(rng, p.current, speed, bounds)
}
