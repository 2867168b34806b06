package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/wavehouse/studio-booking/internal/domain/booking"
	"github.com/wavehouse/studio-booking/internal/httperr"
	"github.com/wavehouse/studio-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return httperr.Storage("booking_create_failed", err)
	}
	return nil
}

func (r *BookingGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).First(&b, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound("booking_not_found")
	}
	if err != nil {
		return nil, httperr.Storage("booking_lookup_failed", err)
	}
	return &b, nil
}

func (r *BookingGormRepository) Update(
	ctx context.Context,
	b *models.Booking,
) error {
	if err := r.db.WithContext(ctx).Save(b).Error; err != nil {
		return httperr.Storage("booking_update_failed", err)
	}
	return nil
}

func (r *BookingGormRepository) PromotePending(
	ctx context.Context,
	email string,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("email = ? AND status = ?", email, string(domain.StatusPendingVerification)).
		Update("status", string(domain.StatusPendingConfirmation))
	if res.Error != nil {
		return 0, httperr.Storage("booking_update_failed", res.Error)
	}

	return res.RowsAffected, nil
}

func (r *BookingGormRepository) HasVerifiedBooking(
	ctx context.Context,
	email string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"email = ? AND status IN ?",
			email,
			[]string{string(domain.StatusPendingConfirmation), string(domain.StatusConfirmed)},
		).
		Count(&count).Error; err != nil {
		return false, httperr.Storage("booking_lookup_failed", err)
	}

	return count > 0, nil
}

func (r *BookingGormRepository) List(
	ctx context.Context,
	filter domain.Filter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).Model(&models.Booking{})

	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	if filter.Email != "" {
		q = q.Where("email = ?", filter.Email)
	}

	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var bookings []models.Booking
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return nil, httperr.Storage("booking_list_failed", err)
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
