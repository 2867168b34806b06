package dto

import (
	"time"

	"github.com/wavehouse/studio-booking/internal/models"
)

type BookingDTO struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	ServiceType string     `json:"service_type"`
	Date        string     `json:"date"`
	StartTime   string     `json:"start_time"`
	EndTime     string     `json:"end_time"`
	Notes       string     `json:"notes"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

type SubmitBookingDTO struct {
	Message           string     `json:"message"`
	Booking           BookingDTO `json:"booking"`
	NeedsVerification bool       `json:"needs_verification"`
}

type ClientDTO struct {
	ID                 uint       `json:"id"`
	Email              string     `json:"email"`
	Name               string     `json:"name"`
	IsVerified         bool       `json:"is_verified"`
	VerificationStatus string     `json:"verification_status"`
	TotalBookings      int        `json:"total_bookings"`
	VerifiedAt         *time.Time `json:"verified_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func FromBooking(b *models.Booking) BookingDTO {
	return BookingDTO{
		ID:          b.ID,
		Name:        b.Name,
		Email:       b.Email,
		Phone:       b.Phone,
		ServiceType: b.ServiceType,
		Date:        b.Date,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Notes:       b.Notes,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
		ConfirmedAt: b.ConfirmedAt,
		CancelledAt: b.CancelledAt,
	}
}

func FromBookings(list []models.Booking) []BookingDTO {
	out := make([]BookingDTO, 0, len(list))
	for i := range list {
		out = append(out, FromBooking(&list[i]))
	}
	return out
}

func FromClients(list []models.Client) []ClientDTO {
	out := make([]ClientDTO, 0, len(list))
	for _, c := range list {
		out = append(out, ClientDTO{
			ID:                 c.ID,
			Email:              c.Email,
			Name:               c.Name,
			IsVerified:         c.IsVerified,
			VerificationStatus: c.VerificationStatus,
			TotalBookings:      c.TotalBookings,
			VerifiedAt:         c.VerifiedAt,
			CreatedAt:          c.CreatedAt,
		})
	}
	return out
}
