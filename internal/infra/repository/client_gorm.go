package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/wavehouse/studio-booking/internal/domain/client"
	"github.com/wavehouse/studio-booking/internal/httperr"
	"github.com/wavehouse/studio-booking/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.Client, error) {

	var c models.Client
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&c).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, httperr.Storage("client_lookup_failed", err)
	}
	return &c, nil
}

// CreateIfAbsent leans on the unique index on email: the insert is a no-op
// when the row exists, and every caller then reads back the single row.
func (r *ClientGormRepository) CreateIfAbsent(
	ctx context.Context,
	email string,
	name string,
) (*models.Client, error) {

	c := models.Client{
		Email:              email,
		Name:               name,
		IsVerified:         false,
		VerificationStatus: string(domain.InitialStatus()),
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(&c).Error
	if err != nil && !isUniqueViolation(err) {
		return nil, httperr.Storage("client_create_failed", err)
	}

	existing, err := r.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, httperr.Storage("client_create_failed", errors.New("client missing after insert"))
	}
	return existing, nil
}

func (r *ClientGormRepository) MarkVerified(
	ctx context.Context,
	email string,
) (*models.Client, error) {

	c, err := r.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := domain.MarkVerified(c, time.Now().UTC()); err != nil {
		return nil, err
	}

	res := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"is_verified":         c.IsVerified,
			"verification_status": c.VerificationStatus,
			"verified_at":         c.VerifiedAt,
		})
	if res.Error != nil {
		return nil, httperr.Storage("client_update_failed", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, httperr.ErrNotFound("client_not_found")
	}

	return c, nil
}

func (r *ClientGormRepository) IncrementBookings(
	ctx context.Context,
	email string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("email = ?", email).
		Update("total_bookings", gorm.Expr("total_bookings + ?", 1))
	if res.Error != nil {
		return httperr.Storage("client_update_failed", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("client_not_found")
	}
	return nil
}

func (r *ClientGormRepository) List(
	ctx context.Context,
	query string,
	limit int,
) ([]models.Client, error) {

	q := r.db.WithContext(ctx).Model(&models.Client{})

	query = strings.ToLower(strings.TrimSpace(query))
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Find(&clients).Error; err != nil {
		return nil, httperr.Storage("client_list_failed", err)
	}

	return clients, nil
}

// Compile-time check
var _ domain.Registry = (*ClientGormRepository)(nil)
