package audit

import (
	"context"
	"testing"
	"time"

	"github.com/wavehouse/studio-booking/internal/models"
	"github.com/wavehouse/studio-booking/internal/testsupport"
)

func TestLoggerFind(t *testing.T) {
	db := testsupport.NewDB(t)
	l := New(db)

	for _, ev := range []Event{
		{Action: "booking_submitted", Entity: "booking", Email: "a@x.com"},
		{Action: "booking_submitted", Entity: "booking", Email: "b@x.com"},
		{Action: "client_verified", Entity: "client", Email: "a@x.com"},
	} {
		if err := l.Log(ev); err != nil {
			t.Fatalf("log: %v", err)
		}
	}

	old := models.AuditLog{Action: "booking_submitted", Email: "a@x.com", CreatedAt: time.Now().AddDate(0, -1, 0)}
	if err := db.Create(&old).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	tests := []struct {
		name      string
		query     Query
		wantTotal int64
		wantRows  int
	}{
		{name: "all", query: Query{}, wantTotal: 4, wantRows: 4},
		{name: "by_action", query: Query{Action: "booking_submitted"}, wantTotal: 3, wantRows: 3},
		{name: "by_email", query: Query{Email: "a@x.com"}, wantTotal: 3, wantRows: 3},
		{name: "by_entity", query: Query{Entity: "client"}, wantTotal: 1, wantRows: 1},
		{name: "from_excludes_old", query: Query{From: time.Now().AddDate(0, 0, -1)}, wantTotal: 3, wantRows: 3},
		{name: "to_only_old", query: Query{To: time.Now().AddDate(0, 0, -7)}, wantTotal: 1, wantRows: 1},
		{name: "paged", query: Query{Page: 2, Limit: 3}, wantTotal: 4, wantRows: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs, total, err := l.Find(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if total != tt.wantTotal {
				t.Errorf("expected total %d, got %d", tt.wantTotal, total)
			}
			if len(logs) != tt.wantRows {
				t.Errorf("expected %d rows, got %d", tt.wantRows, len(logs))
			}
		})
	}
}

func TestQueryNormalize(t *testing.T) {
	q := Query{Page: -1, Limit: 1000}
	q.Normalize()

	if q.Page != 1 || q.Limit != defaultPageSize {
		t.Errorf("expected page 1 limit %d, got page %d limit %d", defaultPageSize, q.Page, q.Limit)
	}
}
