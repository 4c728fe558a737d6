package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for construction-time validation
var (
	ErrInvalidSource = errors.New("invalid item source")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Direction is the natural sweep direction of the strip
type Direction int

const (
	Forward Direction = iota // 0 -> max extent
	Reverse                  // max extent -> 0
)

// String returns the config spelling of the direction
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection parses "forward" or "reverse"
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "fwd", "":
		return Forward, nil
	case "reverse", "rev", "backward":
		return Reverse, nil
	}
	return Forward, fmt.Errorf("%w: unknown direction %q", ErrInvalidConfig, s)
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// EndBehavior decides what happens when a sweep reaches the end of the track
type EndBehavior int

const (
	PingPong EndBehavior = iota // reverse at each end
	Loop                        // jump back to the far end and keep going
)

// String returns the config spelling of the end behavior
func (b EndBehavior) String() string {
	switch b {
	case PingPong:
		return "ping-pong"
	case Loop:
		return "loop"
	default:
		return fmt.Sprintf("EndBehavior(%d)", int(b))
	}
}

// ParseEndBehavior parses "loop" or "ping-pong"
func ParseEndBehavior(s string) (EndBehavior, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ping-pong", "pingpong", "ping_pong", "bounce", "":
		return PingPong, nil
	case "loop", "wrap":
		return Loop, nil
	}
	return PingPong, fmt.Errorf("%w: unknown end behavior %q", ErrInvalidConfig, s)
}

func (b EndBehavior) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *EndBehavior) UnmarshalText(text []byte) error {
	parsed, err := ParseEndBehavior(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// DriveState is the externally visible state of the scroll driver
type DriveState int

const (
	Driving DriveState = iota
	Dragging
	PausedPendingResume
)

func (s DriveState) String() string {
	switch s {
	case Driving:
		return "driving"
	case Dragging:
		return "dragging"
	case PausedPendingResume:
		return "paused"
	default:
		return fmt.Sprintf("DriveState(%d)", int(s))
	}
}
