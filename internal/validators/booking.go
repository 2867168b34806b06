package validators

import (
	"time"

	"github.com/wavehouse/studio-booking/internal/httperr"
	"github.com/wavehouse/studio-booking/internal/timezone"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// BookingSlot checks the date and time range of a booking request in the
// studio's timezone.
func BookingSlot(date, start, end, tz string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return httperr.ErrValidation("invalid_date")
	}

	from, err := timezone.ParseLocal(date, start, tz)
	if err != nil {
		return httperr.ErrValidation("invalid_time")
	}
	to, err := timezone.ParseLocal(date, end, tz)
	if err != nil {
		return httperr.ErrValidation("invalid_time")
	}

	if !to.After(from) {
		return httperr.ErrValidation("invalid_time_range")
	}
	return nil
}
