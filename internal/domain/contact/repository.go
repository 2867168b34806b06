package contact

import (
	"context"

	"github.com/wavehouse/studio-booking/internal/models"
)

type Repository interface {
	Save(
		ctx context.Context,
		msg *models.ContactMessage,
	) error
}
