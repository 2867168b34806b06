package testsupport

import (
	"context"
	"sync"

	"github.com/wavehouse/studio-booking/internal/events"
)

type PublishedEvent struct {
	Subject string
	Key     string
	Payload any
}

// EventRecorder keeps published events in memory. Err, when set, is
// returned from every Publish and nothing is recorded.
type EventRecorder struct {
	Err error

	mu     sync.Mutex
	events []PublishedEvent
}

func (r *EventRecorder) Publish(_ context.Context, subject string, key string, payload any) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, PublishedEvent{Subject: subject, Key: key, Payload: payload})
	return nil
}

func (r *EventRecorder) Close() error { return nil }

// Published returns a copy of the recorded events.
func (r *EventRecorder) Published() []PublishedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]PublishedEvent(nil), r.events...)
}

var _ events.Publisher = (*EventRecorder)(nil)
