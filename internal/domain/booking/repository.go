package booking

import (
	"context"

	"github.com/wavehouse/studio-booking/internal/models"
)

type Filter struct {
	Status Status
	Email  string
	Limit  int
}

type Repository interface {
	Create(
		ctx context.Context,
		b *models.Booking,
	) error

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	Update(
		ctx context.Context,
		b *models.Booking,
	) error

	// PromotePending moves every pending_verification booking of email to
	// pending_confirmation and returns how many rows changed.
	PromotePending(
		ctx context.Context,
		email string,
	) (int64, error)

	// HasVerifiedBooking reports whether email owns a booking that already
	// passed the verification gate.
	HasVerifiedBooking(
		ctx context.Context,
		email string,
	) (bool, error)

	List(
		ctx context.Context,
		filter Filter,
	) ([]models.Booking, error)
}
