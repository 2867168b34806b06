package booking

import (
	"context"

	domain "github.com/wavehouse/studio-booking/internal/domain/booking"
	"github.com/wavehouse/studio-booking/internal/domain/store"
	"github.com/wavehouse/studio-booking/internal/httperr"
	"github.com/wavehouse/studio-booking/internal/models"
	"github.com/wavehouse/studio-booking/internal/validators"
)

type ListBookings struct {
	store store.Store
}

func NewListBookings(
	store store.Store,
) *ListBookings {
	return &ListBookings{
		store: store,
	}
}

// Execute lists bookings newest first. An empty status matches all.
func (uc *ListBookings) Execute(
	ctx context.Context,
	status string,
	email string,
	limit int,
) ([]models.Booking, error) {

	filter := domain.Filter{Limit: limit}

	if status != "" {
		st, ok := domain.ParseStatus(status)
		if !ok {
			return nil, httperr.ErrValidation("invalid_status")
		}
		filter.Status = st
	}
	if email != "" {
		filter.Email = validators.NormalizeEmail(email)
	}

	return uc.store.Bookings().List(ctx, filter)
}
