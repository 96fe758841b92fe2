// Package audit provides the fire-and-forget audit sink for the auth core.
package audit

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fancyapps/users-service/internal/api/metrics"
	"github.com/fancyapps/users-service/internal/core/ports"
)

const defaultBuffer = 256

// Trail decouples audit recording from the request path with a buffered
// channel drained by a single worker. Record never blocks: when the buffer is
// full the event is dropped and counted, never queued at the caller's
// expense.
type Trail struct {
	events chan ports.AuditEvent
	log    zerolog.Logger
}

// NewTrail creates a Trail with the given buffer size. If buffer <= 0,
// defaultBuffer is used.
func NewTrail(log zerolog.Logger, buffer int) *Trail {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Trail{
		events: make(chan ports.AuditEvent, buffer),
		log:    log,
	}
}

// Start launches the worker goroutine. The worker stops when ctx is cancelled.
func (t *Trail) Start(ctx context.Context) {
	go t.run(ctx)
}

// Record enqueues an audit event. Fire-and-forget: it never blocks and never
// fails the calling operation.
func (t *Trail) Record(event ports.AuditEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	select {
	case t.events <- event:
	default:
		metrics.AuditDroppedTotal.Inc()
	}
}

func (t *Trail) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-t.events:
			if !ok {
				return
			}
			entry := t.log.Info().
				Str("audit_action", event.Action).
				Time("at", event.Timestamp)
			if event.UserID != "" {
				entry = entry.Str("user_id", event.UserID)
			}
			if event.Email != "" {
				entry = entry.Str("email", event.Email)
			}
			if event.Detail != "" {
				entry = entry.Str("detail", event.Detail)
			}
			entry.Msg("audit")
		}
	}
}
