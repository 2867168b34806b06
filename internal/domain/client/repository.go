package client

import (
	"context"

	"github.com/wavehouse/studio-booking/internal/models"
)

type Registry interface {
	// FindByEmail returns nil, nil when no client exists.
	FindByEmail(
		ctx context.Context,
		email string,
	) (*models.Client, error)

	// CreateIfAbsent returns the existing record unchanged when one exists.
	CreateIfAbsent(
		ctx context.Context,
		email string,
		name string,
	) (*models.Client, error)

	MarkVerified(
		ctx context.Context,
		email string,
	) (*models.Client, error)

	IncrementBookings(
		ctx context.Context,
		email string,
	) error

	List(
		ctx context.Context,
		query string,
		limit int,
	) ([]models.Client, error)
}
