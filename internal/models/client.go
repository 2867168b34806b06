package models

import "time"

// Client is identified by email. Verification state is owned by the
// verification workflow.
type Client struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Email string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name  string `gorm:"size:255;not null" json:"name"`

	IsVerified         bool       `gorm:"not null;default:false" json:"is_verified"`
	VerificationStatus string     `gorm:"size:20;not null;default:'pending'" json:"verification_status"`
	VerifiedAt         *time.Time `json:"verified_at"`
	TotalBookings      int        `gorm:"not null;default:0" json:"total_bookings"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
