package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/wavehouse/studio-booking/internal/config"
)

const (
	SubjectVerificationCompleted = "verification.completed"
	SubjectBookingSubmitted      = "booking.submitted"
)

type VerificationCompleted struct {
	Email           string    `json:"email"`
	UpdatedBookings int64     `json:"updated_bookings"`
	VerifiedAt      time.Time `json:"verified_at"`
}

type BookingSubmitted struct {
	BookingID uint   `json:"booking_id"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Publisher fans domain events out to the configured broker. Publishing is
// best-effort; callers log failures and carry on.
type Publisher interface {
	Publish(ctx context.Context, subject string, key string, payload any) error
	Close() error
}

// New picks NATS, then Kafka, then a no-op publisher, depending on which
// broker is configured.
func New(cfg config.EventsConfig, log *zap.Logger) (Publisher, error) {
	switch {
	case cfg.NATSURL != "":
		return NewNATSPublisher(cfg.NATSURL, log)
	case len(cfg.KafkaBrokers) > 0:
		return NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, log), nil
	default:
		log.Info("no event broker configured, domain events disabled")
		return Noop{}, nil
	}
}

func encode(payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return data, nil
}

type Noop struct{}

func (Noop) Publish(context.Context, string, string, any) error { return nil }
func (Noop) Close() error                                       { return nil }

var ErrClosed = errors.New("publisher closed")
