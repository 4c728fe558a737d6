// Package scroll drives a horizontal viewport across its scrollable extent
// at constant speed and hands control to the user while they drag.
package scroll

import (
	"time"

	"marquee/internal/domain"
)

// Viewport is the scrollable region the driver moves.
//
// Offsets are in content units (terminal cells for Track). Implementations
// must keep Offset within [0, MaxExtent] and report MaxExtent >= 0.
type Viewport interface {
	// Attached reports whether the viewport is mounted and laid out.
	Attached() bool
	Offset() float64
	MaxExtent() float64
	// JumpTo writes the offset immediately, without animation.
	JumpTo(offset float64)
	// AnimateTo starts a transition from the current offset to target.
	AnimateTo(now time.Time, target float64, d time.Duration, curve Curve) Animation
}

// Animation is an in-flight offset transition.
type Animation interface {
	// Advance writes the offset for now and reports whether the transition
	// has finished. A stopped animation reports finished without writing.
	Advance(now time.Time) bool
	// Stop interrupts the transition; no further writes happen.
	Stop()
}

// Publisher receives driver events. eventbus.EventBus satisfies it.
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// Clock supplies the current time for hook calls.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}
