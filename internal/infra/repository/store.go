package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wavehouse/studio-booking/internal/domain/booking"
	"github.com/wavehouse/studio-booking/internal/domain/client"
	"github.com/wavehouse/studio-booking/internal/domain/store"
)

type GormStore struct {
	db       *gorm.DB
	clients  *ClientGormRepository
	bookings *BookingGormRepository
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:       db,
		clients:  NewClientGormRepository(db),
		bookings: NewBookingGormRepository(db),
	}
}

func (s *GormStore) Clients() client.Registry {
	return s.clients
}

func (s *GormStore) Bookings() booking.Repository {
	return s.bookings
}

func (s *GormStore) Transaction(
	ctx context.Context,
	fn func(tx store.Store) error,
) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormStore(tx))
	})
}

// Compile-time check
var _ store.Store = (*GormStore)(nil)
