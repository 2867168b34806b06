package audit

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/wavehouse/studio-booking/internal/models"
	"github.com/wavehouse/studio-booking/internal/testsupport"
)

func TestDispatcherWritesQueuedEventsOnClose(t *testing.T) {
	db := testsupport.NewDB(t)
	d := NewDispatcher(New(db), zaptest.NewLogger(t))

	id := uint(3)
	d.Dispatch(Event{
		Actor:    "admin",
		Action:   "booking_confirmed",
		Entity:   "booking",
		EntityID: &id,
		Email:    "a@x.com",
		Metadata: map[string]string{"from": "pending_confirmation"},
	})
	d.Dispatch(Event{Actor: "client", Action: "verification_session_created", Email: "b@x.com"})
	d.Close()

	var logs []models.AuditLog
	if err := db.Order("id").Find(&logs).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 audit rows, got %d", len(logs))
	}
	if logs[0].Action != "booking_confirmed" || logs[0].EntityID == nil || *logs[0].EntityID != 3 {
		t.Errorf("unexpected first row %+v", logs[0])
	}
	if logs[0].Metadata != `{"from":"pending_confirmation"}` {
		t.Errorf("unexpected metadata %s", logs[0].Metadata)
	}
}

func TestNilDispatcherIsSafe(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: "noop"})
	d.Close()
}
