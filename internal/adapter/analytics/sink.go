// Package analytics delivers product analytics events to the structured log
// stream, where the log pipeline forwards them downstream.
package analytics

import (
	"context"

	"github.com/trip-cost/trip-cost-calendar-service/internal/domain"
	"github.com/trip-cost/trip-cost-calendar-service/internal/infrastructure/logger"
)

// LogSink writes analytics events as structured log records.
// Emit never blocks on delivery and never fails the caller.
type LogSink struct {
	log *logger.Logger
}

var _ domain.EventSink = (*LogSink)(nil)

// NewLogSink creates a sink writing to the given logger.
func NewLogSink(log *logger.Logger) *LogSink {
	return &LogSink{log: log.WithContext("component", "analytics")}
}

// Emit implements domain.EventSink.
func (s *LogSink) Emit(_ context.Context, e domain.Event) {
	evt := s.log.Info().
		Str("event_id", e.ID).
		Str("event", e.Name).
		Time("occurred_at", e.OccurredAt)
	for k, v := range e.Attrs {
		evt = evt.Interface(k, v)
	}
	evt.Msg("Analytics event")
}
