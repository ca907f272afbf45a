package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event is a single product analytics event. Events are emitted by the serving
// layer and collection jobs through an injected EventSink so the core stays
// pure and testable.
type Event struct {
	// ID is a unique identifier for this event occurrence
	ID string

	// Name is the event name (e.g., "calendar_view")
	Name string

	// OccurredAt is when the event was created
	OccurredAt time.Time

	// Attrs carries event-specific attributes
	Attrs map[string]any
}

// NewEvent creates an event with a fresh ID and the current time.
func NewEvent(name string, attrs map[string]any) Event {
	return Event{
		ID:         uuid.New().String(),
		Name:       name,
		OccurredAt: time.Now(),
		Attrs:      attrs,
	}
}

// Well-known event names.
const (
	EventCalendarView = "calendar_view"
	EventCompareView  = "compare_view"
	EventCollectRun   = "collect_run"
)

// EventSink receives analytics events. Implementations must be safe for
// concurrent use and must not block request handling on delivery.
type EventSink interface {
	Emit(ctx context.Context, e Event)
}

// NopSink discards every event. Useful in tests and as a default.
type NopSink struct{}

// Emit implements EventSink by doing nothing.
func (NopSink) Emit(context.Context, Event) {}
