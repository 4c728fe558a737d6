package scroll

import (
	"fmt"
	"time"

	"marquee/internal/domain"
)

// Defaults for Options
const (
	DefaultCycleDuration = 30 * time.Minute
	DefaultResumeDelay   = 3 * time.Second
)

// Loop timing
const (
	// PollInterval is how long the loop waits before re-reading an empty extent.
	PollInterval = time.Second
	// SettleDelay is the idle wait after arriving at a target.
	SettleDelay = 50 * time.Millisecond
	// edgeEpsilon decides "at the end" for target selection.
	edgeEpsilon = 0.5
	// arriveEpsilon decides "already there" for a computed leg.
	arriveEpsilon = 1.0
)

// Options configures a Driver. They are fixed once the driver is built.
type Options struct {
	Direction         domain.Direction
	CycleDuration     time.Duration // time to sweep the whole extent
	EndBehavior       domain.EndBehavior
	UserScrollEnabled bool
	ResumeDelay       time.Duration

	Clock  Clock     // nil means SystemClock
	Events Publisher // optional
}

// DefaultOptions returns forward, ping-pong, 30m cycle, drag enabled, 3s resume.
func DefaultOptions() Options {
	return Options{
		Direction:         domain.Forward,
		CycleDuration:     DefaultCycleDuration,
		EndBehavior:       domain.PingPong,
		UserScrollEnabled: true,
		ResumeDelay:       DefaultResumeDelay,
	}
}

// Validate checks the option constraints.
func (o Options) Validate() error {
	if o.CycleDuration <= 0 {
		return fmt.Errorf("%w: cycle duration must be positive, got %s", domain.ErrInvalidConfig, o.CycleDuration)
	}
	if o.ResumeDelay < 0 {
		return fmt.Errorf("%w: resume delay must not be negative, got %s", domain.ErrInvalidConfig, o.ResumeDelay)
	}
	switch o.Direction {
	case domain.Forward, domain.Reverse:
	default:
		return fmt.Errorf("%w: unknown direction %d", domain.ErrInvalidConfig, int(o.Direction))
	}
	switch o.EndBehavior {
	case domain.PingPong, domain.Loop:
	default:
		return fmt.Errorf("%w: unknown end behavior %d", domain.ErrInvalidConfig, int(o.EndBehavior))
	}
	return nil
}
