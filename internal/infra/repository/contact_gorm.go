package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wavehouse/studio-booking/internal/domain/contact"
	"github.com/wavehouse/studio-booking/internal/httperr"
	"github.com/wavehouse/studio-booking/internal/models"
)

type ContactGormRepository struct {
	db *gorm.DB
}

func NewContactGormRepository(db *gorm.DB) *ContactGormRepository {
	return &ContactGormRepository{db: db}
}

func (r *ContactGormRepository) Save(
	ctx context.Context,
	msg *models.ContactMessage,
) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return httperr.Storage("contact_save_failed", err)
	}
	return nil
}

var _ contact.Repository = (*ContactGormRepository)(nil)
