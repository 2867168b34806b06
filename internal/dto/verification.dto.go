package dto

type CheckClientDTO struct {
	ClientExists       bool   `json:"client_exists"`
	IsVerified         bool   `json:"is_verified"`
	NeedsVerification  bool   `json:"needs_verification"`
	VerificationStatus string `json:"verification_status"`
	TotalBookings      int    `json:"total_bookings"`
	IsFirstTime        bool   `json:"is_first_time"`
	HasVerifiedBooking bool   `json:"has_verified_booking"`
}

type VerificationStatusDTO struct {
	Exists             bool   `json:"exists"`
	IsVerified         bool   `json:"is_verified"`
	VerificationStatus string `json:"verification_status"`
	TotalBookings      int    `json:"total_bookings"`
}

type SessionDTO struct {
	SessionID             string `json:"session_id"`
	VerificationSessionID string `json:"verification_session_id"`
	URL                   string `json:"url"`
	Status                string `json:"status"`
	Mock                  bool   `json:"mock"`
}

type CompleteVerificationDTO struct {
	Status          string `json:"status"`
	Message         string `json:"message"`
	UpdatedBookings int64  `json:"updated_bookings"`
}
