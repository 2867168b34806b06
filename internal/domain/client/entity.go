package client

import (
	"time"

	"github.com/wavehouse/studio-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func MarkVerified(c *models.Client, now time.Time) error {
	if err := CanVerify(StatusOf(c)); err != nil {
		return err
	}

	c.IsVerified = true
	c.VerificationStatus = string(StatusVerified)
	c.VerifiedAt = &now
	return nil
}

func IsVerified(c *models.Client) bool {
	return c != nil && c.IsVerified && StatusOf(c) == StatusVerified
}

func NeedsVerification(c *models.Client) bool {
	return !IsVerified(c)
}

// IsFirstTime is derived from the booking counter only. Callers that care
// about prior verified bookings ask the booking store separately.
func IsFirstTime(c *models.Client) bool {
	return c == nil || c.TotalBookings == 0
}
