package models

import "time"

// Booking references its client by email only.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:255;not null" json:"name"`
	Email string `gorm:"size:255;index;not null" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	ServiceType string `gorm:"size:100" json:"service_type"`
	Date        string `gorm:"size:10" json:"date"`
	StartTime   string `gorm:"size:5" json:"start_time"`
	EndTime     string `gorm:"size:5" json:"end_time"`
	Notes       string `gorm:"type:text" json:"notes"`

	Status string `gorm:"size:30;index;not null;default:'pending_verification'" json:"status"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
