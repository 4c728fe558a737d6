package scroll

import (
	"math"
	"time"

	"marquee/internal/domain"
)

// Driver moves a Viewport across its extent at constant speed.
//
// It is a state machine advanced by the host: Advance on every frame tick,
// DragStart/DragEnd/DragCancel from input events, Dispose on teardown. All
// calls must come from the same goroutine.
type Driver struct {
	vp     Viewport
	opts   Options
	clock  Clock
	events Publisher

	started         bool
	disposed        bool
	dragging        bool
	sweepingForward bool

	anim      Animation
	legTarget float64
	idleUntil time.Time

	// pending resume; at most one is live
	resumeArmed bool
	resumeAt    time.Time
	resumeGen   uint64
}

// Snapshot is a read-only view of the driver for status rendering.
type Snapshot struct {
	State           domain.DriveState
	Offset          float64
	MaxExtent       float64
	Progress        float64
	SweepingForward bool
	Animating       bool
	Target          float64
	ResumeAt        time.Time // zero unless paused
	ResumeCount     uint64    // resume timers armed so far
	Disposed        bool
}

// NewDriver validates opts and builds a driver for vp.
func NewDriver(vp Viewport, opts Options) (*Driver, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock
	}
	return &Driver{
		vp:              vp,
		opts:            opts,
		clock:           clock,
		events:          opts.Events,
		sweepingForward: opts.Direction == domain.Forward,
	}, nil
}

// Options returns the options the driver was built with.
func (d *Driver) Options() Options {
	return d.opts
}

// UserScrollEnabled reports whether drag hooks have any effect.
func (d *Driver) UserScrollEnabled() bool {
	return d.opts.UserScrollEnabled
}

// State reports Driving, Dragging or PausedPendingResume.
func (d *Driver) State() domain.DriveState {
	switch {
	case d.dragging && d.resumeArmed:
		return domain.PausedPendingResume
	case d.dragging:
		return domain.Dragging
	default:
		return domain.Driving
	}
}

// Snapshot returns the current driver and geometry state.
func (d *Driver) Snapshot() Snapshot {
	s := Snapshot{
		State:           d.State(),
		SweepingForward: d.sweepingForward,
		Animating:       d.anim != nil,
		Target:          d.legTarget,
		Disposed:        d.disposed,
		ResumeCount:     d.resumeGen,
	}
	if d.resumeArmed {
		s.ResumeAt = d.resumeAt
	}
	if !d.disposed {
		s.Offset = d.vp.Offset()
		s.MaxExtent = d.vp.MaxExtent()
		s.Progress = Progress(s.Offset, s.MaxExtent)
	}
	return s
}

// Advance runs the drive loop for the frame at now.
func (d *Driver) Advance(now time.Time) {
	if d.disposed {
		return
	}

	if !d.vp.Attached() {
		// unmounted: drop the animation without touching the viewport
		d.stopAnimation()
		return
	}

	if d.resumeArmed && !now.Before(d.resumeAt) {
		d.fireResume()
	}

	if d.dragging {
		return
	}

	if !d.started && !d.start() {
		return
	}

	if d.anim != nil {
		if !d.legStale() && !d.anim.Advance(now) {
			return
		}
		d.stopAnimation()
		d.publish(domain.SweepCompletedEvent{Offset: d.vp.Offset()})
	} else if now.Before(d.idleUntil) {
		return
	}

	d.step(now)
}

// legStale reports whether the leg's target left the extent, so the viewport
// would stay pinned at the boundary for the rest of the leg.
func (d *Driver) legStale() bool {
	return d.legTarget > d.vp.MaxExtent()
}

// start runs the startup protocol once the viewport has overflow content.
func (d *Driver) start() bool {
	maxExtent := d.vp.MaxExtent()
	if maxExtent <= 0 {
		return false
	}
	d.started = true
	d.publish(domain.DriveStartedEvent{Offset: d.vp.Offset(), MaxExtent: maxExtent})

	if d.opts.Direction == domain.Reverse && d.vp.Offset() <= edgeEpsilon {
		d.jump(maxExtent)
	}
	return true
}

// step is one evaluation of the drive loop: pick a target and start a leg.
func (d *Driver) step(now time.Time) {
	maxExtent := d.vp.MaxExtent()
	if maxExtent <= 0 {
		d.idleUntil = now.Add(PollInterval)
		return
	}

	offset := d.vp.Offset()
	if clamped := clamp(offset, 0, maxExtent); clamped != offset {
		d.vp.JumpTo(clamped)
		offset = clamped
	}

	target := d.target(offset, maxExtent)
	offset = d.vp.Offset()

	distance := math.Abs(target - offset)
	if distance <= arriveEpsilon {
		// land exactly on the edge so the next evaluation turns or wraps
		if distance > 0 {
			d.vp.JumpTo(target)
		}
		d.idleUntil = now.Add(SettleDelay)
		return
	}

	duration := SweepDuration(d.opts.CycleDuration, distance, maxExtent)
	d.sweepingForward = target > offset
	d.legTarget = target
	d.anim = d.vp.AnimateTo(now, target, duration, Linear)
	d.publish(domain.SweepStartedEvent{From: offset, To: target, Duration: duration})
}

// target picks the end of the next leg, jumping first when a loop wraps.
func (d *Driver) target(offset, maxExtent float64) float64 {
	if d.opts.Direction == domain.Reverse {
		if offset > edgeEpsilon {
			return 0
		}
		if d.opts.EndBehavior == domain.PingPong {
			return maxExtent
		}
		d.jump(maxExtent)
		return 0
	}

	if offset < maxExtent-edgeEpsilon {
		return maxExtent
	}
	if d.opts.EndBehavior == domain.PingPong {
		return 0
	}
	d.jump(0)
	return maxExtent
}

func (d *Driver) jump(to float64) {
	from := d.vp.Offset()
	d.vp.JumpTo(to)
	d.publish(domain.OffsetJumpedEvent{From: from, To: d.vp.Offset()})
}

// DragStart suspends the drive loop while the user scrolls by hand.
// Calling it while already dragging only disarms a pending resume.
func (d *Driver) DragStart() {
	if d.disposed || !d.opts.UserScrollEnabled {
		return
	}
	d.cancelResume()
	if d.dragging {
		return
	}

	interrupted := d.anim != nil
	d.stopAnimation()
	d.dragging = true
	d.publish(domain.DragStartedEvent{Offset: d.vp.Offset(), Interrupted: interrupted})
}

// DragEnd arms the resume timer; the newest release always wins.
func (d *Driver) DragEnd() {
	d.release(false)
}

// DragCancel behaves like DragEnd.
func (d *Driver) DragCancel() {
	d.release(true)
}

func (d *Driver) release(canceled bool) {
	if d.disposed || !d.opts.UserScrollEnabled || !d.dragging {
		return
	}
	d.cancelResume()

	if !d.vp.Attached() || d.vp.MaxExtent() <= 0 {
		// nothing to resume
		d.dragging = false
		d.idleUntil = time.Time{}
		d.publish(domain.DragEndedEvent{Offset: d.vp.Offset(), Canceled: canceled})
		return
	}

	d.resumeGen++
	d.resumeArmed = true
	d.resumeAt = d.clock.Now().Add(d.opts.ResumeDelay)
	d.publish(domain.DragEndedEvent{Offset: d.vp.Offset(), ResumeAt: d.resumeAt, Canceled: canceled})
}

func (d *Driver) fireResume() {
	d.resumeArmed = false
	d.resumeAt = time.Time{}
	d.dragging = false
	d.idleUntil = time.Time{}
	d.publish(domain.DriveResumedEvent{Offset: d.vp.Offset()})
}

func (d *Driver) cancelResume() {
	d.resumeArmed = false
	d.resumeAt = time.Time{}
}

// Dispose stops the loop for good. No viewport writes happen afterwards.
func (d *Driver) Dispose() {
	if d.disposed {
		return
	}
	d.stopAnimation()
	d.cancelResume()
	d.dragging = false
	d.disposed = true
	d.publish(domain.DriverDisposedEvent{})
}

func (d *Driver) stopAnimation() {
	if d.anim == nil {
		return
	}
	d.anim.Stop()
	d.anim = nil
}

func (d *Driver) publish(event domain.DomainEvent) {
	if d.events != nil {
		d.events.Publish(event)
	}
}
