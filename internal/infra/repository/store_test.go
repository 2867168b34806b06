package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/wavehouse/studio-booking/internal/domain/booking"
	"github.com/wavehouse/studio-booking/internal/domain/client"
	"github.com/wavehouse/studio-booking/internal/domain/store"
	"github.com/wavehouse/studio-booking/internal/httperr"
	"github.com/wavehouse/studio-booking/internal/models"
	"github.com/wavehouse/studio-booking/internal/testsupport"
)

func seedBooking(t *testing.T, s *GormStore, email string, status booking.Status) *models.Booking {
	t.Helper()

	b := &models.Booking{
		Name:        "Ada",
		Email:       email,
		ServiceType: "recording",
		Date:        "2026-05-01",
		StartTime:   "10:00",
		EndTime:     "12:00",
		Status:      string(status),
	}
	if err := s.Bookings().Create(context.Background(), b); err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return b
}

func TestFindByEmailReportsAbsence(t *testing.T) {
	s := NewGormStore(testsupport.NewDB(t))

	c, err := s.Clients().FindByEmail(context.Background(), "nobody@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != nil {
		t.Errorf("expected nil client, got %+v", c)
	}
}

func TestCreateIfAbsentIsIdempotent(t *testing.T) {
	db := testsupport.NewDB(t)
	s := NewGormStore(db)
	ctx := context.Background()

	first, err := s.Clients().CreateIfAbsent(ctx, "a@x.com", "Ada")
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	if first.IsVerified || first.VerificationStatus != string(client.StatusPending) {
		t.Errorf("expected pending unverified client, got %+v", first)
	}

	second, err := s.Clients().CreateIfAbsent(ctx, "a@x.com", "Someone Else")
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if second.ID != first.ID || second.Name != "Ada" || second.VerificationStatus != first.VerificationStatus {
		t.Errorf("expected unchanged record %+v, got %+v", first, second)
	}

	var count int64
	db.Model(&models.Client{}).Where("email = ?", "a@x.com").Count(&count)
	if count != 1 {
		t.Errorf("expected 1 client row, got %d", count)
	}
}

func TestCreateIfAbsentConcurrentCallsStoreOneRow(t *testing.T) {
	db := testsupport.NewDB(t)
	s := NewGormStore(db)

	const workers = 8
	var wg sync.WaitGroup
	ids := make([]uint, workers)
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := s.Clients().CreateIfAbsent(context.Background(), "race@x.com", "Racer")
			errs[i] = err
			if c != nil {
				ids[i] = c.ID
			}
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("worker %d: %v", i, err)
		}
		if ids[i] != ids[0] {
			t.Errorf("worker %d saw client %d, expected %d", i, ids[i], ids[0])
		}
	}

	var count int64
	db.Model(&models.Client{}).Where("email = ?", "race@x.com").Count(&count)
	if count != 1 {
		t.Errorf("expected exactly 1 client row, got %d", count)
	}
}

func TestMarkVerified(t *testing.T) {
	s := NewGormStore(testsupport.NewDB(t))
	ctx := context.Background()

	if _, err := s.Clients().MarkVerified(ctx, "ghost@x.com"); !httperr.IsBusiness(err, "client_not_found") {
		t.Errorf("expected client_not_found, got %v", err)
	}

	if _, err := s.Clients().CreateIfAbsent(ctx, "a@x.com", "Ada"); err != nil {
		t.Fatalf("create: %v", err)
	}

	c, err := s.Clients().MarkVerified(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("mark verified: %v", err)
	}
	if !c.IsVerified || c.VerificationStatus != string(client.StatusVerified) || c.VerifiedAt == nil {
		t.Errorf("expected verified client, got %+v", c)
	}

	stored, _ := s.Clients().FindByEmail(ctx, "a@x.com")
	if !client.IsVerified(stored) {
		t.Errorf("expected stored client to be verified, got %+v", stored)
	}
}

func TestIncrementBookings(t *testing.T) {
	s := NewGormStore(testsupport.NewDB(t))
	ctx := context.Background()

	if err := s.Clients().IncrementBookings(ctx, "ghost@x.com"); !httperr.IsBusiness(err, "client_not_found") {
		t.Errorf("expected client_not_found, got %v", err)
	}

	s.Clients().CreateIfAbsent(ctx, "a@x.com", "Ada")
	for i := 0; i < 3; i++ {
		if err := s.Clients().IncrementBookings(ctx, "a@x.com"); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}

	c, _ := s.Clients().FindByEmail(ctx, "a@x.com")
	if c.TotalBookings != 3 {
		t.Errorf("expected 3 bookings, got %d", c.TotalBookings)
	}
}

func TestPromotePendingOnlyTouchesPendingVerification(t *testing.T) {
	s := NewGormStore(testsupport.NewDB(t))
	ctx := context.Background()

	seedBooking(t, s, "a@x.com", booking.StatusPendingVerification)
	seedBooking(t, s, "a@x.com", booking.StatusPendingVerification)
	confirmed := seedBooking(t, s, "a@x.com", booking.StatusPendingConfirmation)
	other := seedBooking(t, s, "b@x.com", booking.StatusPendingVerification)

	hasVerified, err := s.Bookings().HasVerifiedBooking(ctx, "b@x.com")
	if err != nil || hasVerified {
		t.Errorf("expected no verified booking for b@x.com, got %v %v", hasVerified, err)
	}

	n, err := s.Bookings().PromotePending(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 promoted bookings, got %d", n)
	}

	list, err := s.Bookings().List(ctx, booking.Filter{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, b := range list {
		if b.Status != string(booking.StatusPendingConfirmation) {
			t.Errorf("booking %d: expected pending_confirmation, got %s", b.ID, b.Status)
		}
	}

	untouched, _ := s.Bookings().GetByID(ctx, confirmed.ID)
	if untouched.Status != string(booking.StatusPendingConfirmation) {
		t.Errorf("expected pre-existing pending_confirmation booking to be untouched, got %s", untouched.Status)
	}

	stillPending, _ := s.Bookings().GetByID(ctx, other.ID)
	if stillPending.Status != string(booking.StatusPendingVerification) {
		t.Errorf("expected other client's booking untouched, got %s", stillPending.Status)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	s := NewGormStore(testsupport.NewDB(t))

	if _, err := s.Bookings().GetByID(context.Background(), 42); !httperr.IsBusiness(err, "booking_not_found") {
		t.Errorf("expected booking_not_found, got %v", err)
	}
}

func TestListFiltersByStatus(t *testing.T) {
	s := NewGormStore(testsupport.NewDB(t))

	seedBooking(t, s, "a@x.com", booking.StatusPendingVerification)
	seedBooking(t, s, "b@x.com", booking.StatusConfirmed)

	list, err := s.Bookings().List(context.Background(), booking.Filter{Status: booking.StatusConfirmed})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Email != "b@x.com" {
		t.Errorf("expected only the confirmed booking, got %+v", list)
	}
}

func TestTransactionRollsBackOnError(t *testing.T) {
	s := NewGormStore(testsupport.NewDB(t))
	ctx := context.Background()

	s.Clients().CreateIfAbsent(ctx, "a@x.com", "Ada")
	seedBooking(t, s, "a@x.com", booking.StatusPendingVerification)

	boom := errors.New("boom")
	err := s.Transaction(ctx, func(tx store.Store) error {
		if _, err := tx.Clients().MarkVerified(ctx, "a@x.com"); err != nil {
			return err
		}
		if _, err := tx.Bookings().PromotePending(ctx, "a@x.com"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	c, _ := s.Clients().FindByEmail(ctx, "a@x.com")
	if c.IsVerified {
		t.Error("expected client verification to be rolled back")
	}

	hasVerified, _ := s.Bookings().HasVerifiedBooking(ctx, "a@x.com")
	if hasVerified {
		t.Error("expected booking promotion to be rolled back")
	}
}

func TestClientListSearch(t *testing.T) {
	s := NewGormStore(testsupport.NewDB(t))
	ctx := context.Background()

	s.Clients().CreateIfAbsent(ctx, "ada@x.com", "Ada Lovelace")
	s.Clients().CreateIfAbsent(ctx, "alan@x.com", "Alan Turing")

	clients, err := s.Clients().List(ctx, "lovelace", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(clients) != 1 || clients[0].Email != "ada@x.com" {
		t.Errorf("expected only Ada, got %+v", clients)
	}
}
