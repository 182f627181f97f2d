package frameloop

import "time"

// smoothing is the weight of the newest sample in the moving average.
const smoothing = 0.1

// Meter measures frames per second as an exponential moving average of
// frame-to-frame intervals.
type Meter struct {
	last time.Time
	fps  float64
}

// Frame records a frame presented at now and returns the updated rate.
func (m *Meter) Frame(now time.Time) float64 {
	if !m.last.IsZero() {
		if dt := now.Sub(m.last).Seconds(); dt > 0 {
			inst := 1 / dt
			if m.fps == 0 {
				m.fps = inst
			} else {
				m.fps += smoothing * (inst - m.fps)
			}
		}
	}
	m.last = now
	return m.fps
}

// FPS returns the current rate without recording a frame.
func (m *Meter) FPS() float64 {
	return m.fps
}
