package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/miseboard/kitchen-api/internal/core/domain"
)

type captureRecorder struct {
	mu     sync.Mutex
	events []domain.AuditEvent
	done   chan struct{}
	want   int
}

func newCaptureRecorder(want int) *captureRecorder {
	return &captureRecorder{done: make(chan struct{}), want: want}
}

func (r *captureRecorder) Record(_ context.Context, event domain.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	if len(r.events) == r.want {
		close(r.done)
	}
	return nil
}

func TestDispatcher_PerUserOrdering(t *testing.T) {
	recorder := newCaptureRecorder(3)
	d := NewDispatcher(4, recorder, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	actions := []string{domain.AuditRegisterSuccess, domain.AuditLoginFailure, domain.AuditLoginSuccess}
	for _, a := range actions {
		d.Enqueue(domain.AuditEvent{Username: "alice", Action: a, Timestamp: time.Now()})
	}

	select {
	case <-recorder.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for audit events")
	}

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	for i, a := range actions {
		if recorder.events[i].Action != a {
			t.Fatalf("event %d out of order: expected %s, got %s", i, a, recorder.events[i].Action)
		}
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(8, newCaptureRecorder(0), zerolog.Nop())

	first := d.shardIndex("alice")
	for i := 0; i < 100; i++ {
		if d.shardIndex("alice") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}
