package projection

import (
	"context"
	"sync"
)

// Timeline keeps the last envelopes delivered to it, oldest first.
// It is the in-process client used by the debug endpoint and by tests.
type Timeline struct {
	mu        sync.Mutex
	capacity  int
	envelopes []Envelope
}

func NewTimeline(capacity int) *Timeline {
	return &Timeline{capacity: capacity}
}

func (t *Timeline) Consume(ctx context.Context, e Envelope) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.envelopes = append(t.envelopes, e)
	if t.capacity > 0 && len(t.envelopes) > t.capacity {
		t.envelopes = t.envelopes[len(t.envelopes)-t.capacity:]
	}
	return nil
}

func (t *Timeline) Envelopes() []Envelope {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Envelope(nil), t.envelopes...)
}
