package store

import (
	"context"

	"github.com/wavehouse/studio-booking/internal/domain/booking"
	"github.com/wavehouse/studio-booking/internal/domain/client"
)

// Store groups the repositories a workflow touches. Transaction runs fn
// against repositories bound to one database transaction; fn's error rolls
// everything back.
type Store interface {
	Clients() client.Registry
	Bookings() booking.Repository

	Transaction(
		ctx context.Context,
		fn func(tx Store) error,
	) error
}
