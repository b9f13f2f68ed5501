package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/rootsofthewild/rootsbot/internal/domain"
)

// Type represents the type of an event
type Type string

// Common event types
const (
	SantaMatchesCompleted Type = "santa.matches.completed"
	SantaReminderDue      Type = "santa.reminder.due"
	WeatherUpdated        Type = "weather.updated"
	BlightProgressed      Type = "blight.progressed"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Typed event payloads for type safety

// MatchesCompletedPayloadV1 is the typed payload for matching run completion
type MatchesCompletedPayloadV1 struct {
	Matches        []domain.Match `json:"matches"`
	UnmatchedCount int            `json:"unmatched_count"`
	Attempts       int            `json:"attempts"`
	UsedFallback   bool           `json:"used_fallback"`
}

// ReminderDuePayloadV1 is the typed payload for deadline reminders
type ReminderDuePayloadV1 struct {
	Deadline  int64 `json:"deadline"`
	DaysLeft  int   `json:"days_left"`
	Timestamp int64 `json:"timestamp"`
}

// WeatherUpdatedPayloadV1 is the typed payload for weather regeneration
type WeatherUpdatedPayloadV1 struct {
	Weather domain.Weather `json:"weather"`
}

// BlightProgressedPayloadV1 is the typed payload for daily blight progression
type BlightProgressedPayloadV1 struct {
	Worsened  int `json:"worsened"`
	Recovered int `json:"recovered"`
	Died      int `json:"died"`
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously;
// handler errors are collected and do not stop later handlers.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe registers a handler for an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
