package client

import (
	"github.com/wavehouse/studio-booking/internal/httperr"
	"github.com/wavehouse/studio-booking/internal/models"
)

// ===============================
// Verification Status
// ===============================

type Status string

const (
	// StatusNew is reported for emails with no client record. It is never
	// stored.
	StatusNew      Status = "new_client"
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
)

// InitialStatus is the status of a freshly created client record.
func InitialStatus() Status {
	return StatusPending
}

// StatusOf reads the status of c, treating a missing record as new.
func StatusOf(c *models.Client) Status {
	if c == nil {
		return StatusNew
	}
	return Status(c.VerificationStatus)
}

// CanVerify checks the pending -> verified transition. Verifying an already
// verified client is allowed and changes nothing but the timestamp.
func CanVerify(current Status) error {
	switch current {
	case StatusPending, StatusVerified:
		return nil
	case StatusNew:
		return httperr.ErrNotFound("client_not_found")
	default:
		return httperr.ErrBusiness("invalid_state")
	}
}
