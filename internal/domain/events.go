package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDriveStarted   EventType = "DriveStarted"
	EventSweepStarted   EventType = "SweepStarted"
	EventSweepCompleted EventType = "SweepCompleted"
	EventOffsetJumped   EventType = "OffsetJumped"
	EventDragStarted    EventType = "DragStarted"
	EventDragEnded      EventType = "DragEnded"
	EventDriveResumed   EventType = "DriveResumed"
	EventDriverDisposed EventType = "DriverDisposed"
	EventItemsLoaded    EventType = "ItemsLoaded"
	EventError          EventType = "Error"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DriveStartedEvent is emitted once the driver first sees an attached viewport
type DriveStartedEvent struct {
	Offset    float64
	MaxExtent float64
}

func (e DriveStartedEvent) Type() EventType { return EventDriveStarted }

// SweepStartedEvent is emitted when an animated leg begins
type SweepStartedEvent struct {
	From     float64
	To       float64
	Duration time.Duration
}

func (e SweepStartedEvent) Type() EventType { return EventSweepStarted }

// SweepCompletedEvent is emitted when an animated leg reaches its target
type SweepCompletedEvent struct {
	Offset float64
}

func (e SweepCompletedEvent) Type() EventType { return EventSweepCompleted }

// OffsetJumpedEvent is emitted for non-animated repositioning (startup and loop wrap)
type OffsetJumpedEvent struct {
	From float64
	To   float64
}

func (e OffsetJumpedEvent) Type() EventType { return EventOffsetJumped }

// DragStartedEvent is emitted when the user takes manual control
type DragStartedEvent struct {
	Offset      float64
	Interrupted bool // an animated leg was cut short
}

func (e DragStartedEvent) Type() EventType { return EventDragStarted }

// DragEndedEvent is emitted when the user releases; ResumeAt is zero when nothing will resume
type DragEndedEvent struct {
	Offset   float64
	ResumeAt time.Time
	Canceled bool
}

func (e DragEndedEvent) Type() EventType { return EventDragEnded }

// DriveResumedEvent is emitted when the resume timer fires
type DriveResumedEvent struct {
	Offset float64
}

func (e DriveResumedEvent) Type() EventType { return EventDriveResumed }

// DriverDisposedEvent is emitted when the driver is torn down
type DriverDisposedEvent struct{}

func (e DriverDisposedEvent) Type() EventType { return EventDriverDisposed }

// ItemsLoadedEvent is emitted when the item source is (re)loaded
type ItemsLoadedEvent struct {
	Path  string
	Count int
}

func (e ItemsLoadedEvent) Type() EventType { return EventItemsLoaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
