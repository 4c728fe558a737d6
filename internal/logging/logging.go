// Package logging sets up the file logger; the terminal belongs to the TUI.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"marquee/internal/eventbus"
)

// DefaultFile is the log file written in the working directory
const DefaultFile = "marquee.log"

// Open creates a logger appending to path. The returned closer closes the file.
func Open(path string, debug bool) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		path = DefaultFile
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("could not open log file: %w", err)
	}
	return New(f, debug), f, nil
}

// New creates a logger writing human-readable lines to w
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// SubscribeBus logs every bus event: errors at error level, the rest at debug
func SubscribeBus(bus eventbus.EventBus, logger zerolog.Logger) {
	for _, et := range eventbus.AllEventTypes {
		bus.Subscribe(et, func(e eventbus.DomainEvent) {
			logEvent(logger, e)
		})
	}
}

func logEvent(logger zerolog.Logger, e eventbus.DomainEvent) {
	switch ev := e.(type) {
	case eventbus.ErrorEvent:
		logger.Error().Err(ev.Err).Msg(ev.Message)
	case eventbus.SweepStartedEvent:
		logger.Debug().
			Float64("from", ev.From).
			Float64("to", ev.To).
			Dur("duration", ev.Duration).
			Msg("sweep started")
	case eventbus.OffsetJumpedEvent:
		logger.Debug().Float64("from", ev.From).Float64("to", ev.To).Msg("offset jumped")
	case eventbus.DragStartedEvent:
		logger.Debug().Float64("offset", ev.Offset).Bool("interrupted", ev.Interrupted).Msg("drag started")
	case eventbus.DragEndedEvent:
		event := logger.Debug().Float64("offset", ev.Offset).Bool("canceled", ev.Canceled)
		if !ev.ResumeAt.IsZero() {
			event = event.Time("resume_at", ev.ResumeAt)
		}
		event.Msg("drag ended")
	case eventbus.ItemsLoadedEvent:
		logger.Info().Str("path", ev.Path).Int("count", ev.Count).Msg("items loaded")
	case eventbus.ConfigLoadedEvent:
		logger.Info().Str("path", ev.Path).Msg("config loaded")
	case eventbus.ConfigSavedEvent:
		logger.Info().Str("path", ev.Path).Msg("config saved")
	default:
		logger.Debug().Str("event", string(e.Type())).Msg("driver event")
	}
}
