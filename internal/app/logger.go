// internal/app/logger.go
package app

import (
	"log"

	"github.com/google/uuid"
	"github.com/sthaarwin/10-min-chaos/internal/component"
	"github.com/sthaarwin/10-min-chaos/internal/event"
)

// EventLogger пишет игровые события в лог с ID забега.
type EventLogger struct {
	runID  uuid.UUID
	logger *log.Logger
}

func NewEventLogger() *EventLogger {
	return &EventLogger{logger: log.Default()}
}

// NewEventLoggerTo пишет в указанный логгер.
func NewEventLoggerTo(logger *log.Logger) *EventLogger {
	return &EventLogger{logger: logger}
}

func (l *EventLogger) OnEvent(e event.Event) {
	if e.Type == event.RunStarted {
		if id, ok := e.Data.(uuid.UUID); ok {
			l.runID = id
		}
	}

	switch data := e.Data.(type) {
	case *component.Bot:
		l.logger.Printf("[Run %s] frame %d: %s at (%.0f, %.0f)", l.runID, e.Frame, e.Type, data.X, data.Y)
	case *component.Bullet:
		l.logger.Printf("[Run %s] frame %d: %s heading (%.1f, %.1f)", l.runID, e.Frame, e.Type, data.Velocity.X, data.Velocity.Y)
	case nil:
		l.logger.Printf("[Run %s] frame %d: %s", l.runID, e.Frame, e.Type)
	default:
		l.logger.Printf("[Run %s] frame %d: %s (%v)", l.runID, e.Frame, e.Type, data)
	}
}
