package scroll

import "time"

// Curve maps linear progress in [0,1] to eased progress in [0,1].
type Curve func(t float64) float64

// Linear keeps position proportional to elapsed time.
func Linear(t float64) float64 { return t }

// EaseInOut is a cubic ease for short manual jumps.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := 2*t - 2
	return 0.5*f*f*f + 1
}

// Tween animates a value from one offset to another over a fixed duration.
type Tween struct {
	set      func(float64)
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	curve    Curve
	stopped  bool
}

// NewTween creates a tween that writes through set. A nil curve is Linear.
func NewTween(set func(float64), from, to float64, start time.Time, d time.Duration, curve Curve) *Tween {
	if curve == nil {
		curve = Linear
	}
	return &Tween{
		set:      set,
		from:     from,
		to:       to,
		start:    start,
		duration: d,
		curve:    curve,
	}
}

// Advance writes the interpolated offset for now.
func (t *Tween) Advance(now time.Time) bool {
	if t.stopped {
		return true
	}
	if t.duration <= 0 {
		t.set(t.to)
		t.stopped = true
		return true
	}

	p := float64(now.Sub(t.start)) / float64(t.duration)
	if p >= 1 {
		t.set(t.to)
		t.stopped = true
		return true
	}
	if p < 0 {
		p = 0
	}
	t.set(t.from + (t.to-t.from)*t.curve(p))
	return false
}

// Stop interrupts the tween.
func (t *Tween) Stop() {
	t.stopped = true
}

// SweepDuration returns how long a leg of distance takes when a full sweep
// of maxExtent takes cycle. It is 0 when maxExtent is 0.
func SweepDuration(cycle time.Duration, distance, maxExtent float64) time.Duration {
	if maxExtent <= 0 || distance <= 0 {
		return 0
	}
	return time.Duration(float64(cycle) * (distance / maxExtent))
}

// Progress returns offset as a fraction of maxExtent, 0 when there is no extent.
func Progress(offset, maxExtent float64) float64 {
	if maxExtent <= 0 {
		return 0
	}
	return clamp(offset/maxExtent, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
