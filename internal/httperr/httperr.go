package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

var messages = map[string]string{
	"email_required":                 "Email is required.",
	"email_and_name_required":        "Email and name are required.",
	"invalid_email":                  "Email address is not valid.",
	"name_required":                  "Name is required.",
	"message_required":               "Message is required.",
	"invalid_date":                   "Date must use the YYYY-MM-DD format.",
	"invalid_time":                   "Times must use the HH:MM format.",
	"invalid_time_range":             "End time must be after start time.",
	"client_not_found":               "Client not found.",
	"booking_not_found":              "Booking not found.",
	"invalid_state":                  "Booking cannot change to the requested status.",
	"verification_provider_failed":   "Verification provider is unavailable.",
	"verification_email_failed":      "Failed to send verification email.",
	"contact_email_failed":           "Failed to send email notification.",
	"invalid_credentials":            "Invalid credentials.",
	"admin_login_disabled":           "Admin login is not configured.",
	"timeout":                        "The operation timed out.",
	"failed_to_mark_client_verified": "Failed to mark client as verified.",
	"invalid_status":                 "Unknown booking status.",
	"invalid_booking_id":             "Booking id must be a positive integer.",
	"booking_create_failed":          "Failed to submit booking.",
	"contact_save_failed":            "Failed to save contact message.",
	"client_lookup_failed":           "Failed to check client status.",
}

var statusByKind = map[Kind]int{
	KindValidation:   http.StatusBadRequest,
	KindNotFound:     http.StatusNotFound,
	KindInvalidState: http.StatusBadRequest,
	KindUnauthorized: http.StatusUnauthorized,
	KindStorage:      http.StatusInternalServerError,
	KindTimeout:      http.StatusGatewayTimeout,
	KindNotification: http.StatusInternalServerError,
	KindUpstream:     http.StatusBadGateway,
}

// Respond writes err as a structured error body. Server-side failures are
// also attached to the gin context so error reporting middleware sees them.
func Respond(c *gin.Context, err error) {
	kind := KindOf(err)
	code := CodeOf(err)

	status, ok := statusByKind[kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}

	message, ok := messages[code]
	if !ok {
		message = http.StatusText(status)
	}

	Write(c, status, code, message)
}
