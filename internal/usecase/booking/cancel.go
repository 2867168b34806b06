package booking

import (
	"context"

	"github.com/wavehouse/studio-booking/internal/audit"
	domain "github.com/wavehouse/studio-booking/internal/domain/booking"
	"github.com/wavehouse/studio-booking/internal/domain/store"
	"github.com/wavehouse/studio-booking/internal/models"
	"github.com/wavehouse/studio-booking/internal/timezone"
)

type CancelBooking struct {
	store    store.Store
	audit    *audit.Dispatcher
	timezone string
}

func NewCancelBooking(
	store store.Store,
	audit *audit.Dispatcher,
	timezone string,
) *CancelBooking {
	return &CancelBooking{
		store:    store,
		audit:    audit,
		timezone: timezone,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID uint,
	actor string,
) (*models.Booking, error) {

	b, err := uc.store.Bookings().GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	previous := b.Status
	if err := domain.Cancel(b, timezone.NowIn(uc.timezone)); err != nil {
		return nil, err
	}

	if err := uc.store.Bookings().Update(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
		Email:    b.Email,
		Metadata: map[string]string{"from": previous},
	})

	return b, nil
}
