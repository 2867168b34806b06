package booking

import "github.com/wavehouse/studio-booking/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPendingVerification Status = "pending_verification"
	StatusPendingConfirmation Status = "pending_confirmation"
	StatusConfirmed           Status = "confirmed"
	StatusCancelled           Status = "cancelled"
)

func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusPendingVerification, StatusPendingConfirmation, StatusConfirmed, StatusCancelled:
		return st, true
	}
	return "", false
}

// InitialStatus places bookings of unverified clients behind the
// verification gate.
func InitialStatus(clientVerified bool) Status {
	if clientVerified {
		return StatusPendingConfirmation
	}
	return StatusPendingVerification
}

// CanConfirm only allows staff confirmation after verification cleared.
func CanConfirm(current Status) error {
	if current != StatusPendingConfirmation {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	switch current {
	case StatusPendingVerification, StatusPendingConfirmation:
		return nil
	}
	return httperr.ErrBusiness("invalid_state")
}
