package audit

import (
	"context"
	"time"

	"github.com/wavehouse/studio-booking/internal/models"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// Query filters the audit trail. Zero fields match everything; To is
// exclusive.
type Query struct {
	Action string
	Entity string
	Email  string
	From   time.Time
	To     time.Time
	Page   int
	Limit  int
}

// Normalize applies the default page and clamps Limit.
func (q *Query) Normalize() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > maxPageSize {
		q.Limit = defaultPageSize
	}
}

// Find returns one page of entries, newest first, and the number of
// entries matching q across all pages.
func (l *Logger) Find(ctx context.Context, q Query) ([]models.AuditLog, int64, error) {
	q.Normalize()

	tx := l.db.WithContext(ctx).Model(&models.AuditLog{})

	if q.Action != "" {
		tx = tx.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		tx = tx.Where("entity = ?", q.Entity)
	}
	if q.Email != "" {
		tx = tx.Where("email = ?", q.Email)
	}
	if !q.From.IsZero() {
		tx = tx.Where("created_at >= ?", q.From)
	}
	if !q.To.IsZero() {
		tx = tx.Where("created_at < ?", q.To)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	err := tx.
		Order("created_at DESC").
		Order("id DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
