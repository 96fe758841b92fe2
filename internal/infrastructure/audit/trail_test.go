package audit

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fancyapps/users-service/internal/core/ports"
)

// syncBuffer serialises writes so the worker goroutine and the test can share
// the buffer.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestTrail_RecordsEvent(t *testing.T) {
	out := &syncBuffer{}
	trail := NewTrail(zerolog.New(out), 8)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	trail.Start(ctx)

	trail.Record(ports.AuditEvent{
		Action: "user.registered",
		UserID: "u1",
		Email:  "a@b.com",
	})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(out.String(), "user.registered") {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	got := out.String()
	if !strings.Contains(got, "user.registered") || !strings.Contains(got, "a@b.com") {
		t.Fatalf("audit entry not written: %s", got)
	}
}

func TestTrail_RecordNeverBlocks(t *testing.T) {
	// No worker running: the buffer fills and further events must be dropped,
	// not queued at the caller's expense.
	trail := NewTrail(zerolog.Nop(), 2)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			trail.Record(ports.AuditEvent{Action: "user.logged_in"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Record blocked on a full buffer")
	}
}

func TestTrail_StopsOnCancel(t *testing.T) {
	out := &syncBuffer{}
	trail := NewTrail(zerolog.New(out), 8)

	ctx, cancel := context.WithCancel(context.Background())
	trail.Start(ctx)
	cancel()

	// After cancellation events are silently absorbed by the buffer; this
	// must still not block.
	trail.Record(ports.AuditEvent{Action: "user.logged_in"})
}
