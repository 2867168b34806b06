package booking

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/wavehouse/studio-booking/internal/audit"
	"github.com/wavehouse/studio-booking/internal/cache"
	domain "github.com/wavehouse/studio-booking/internal/domain/booking"
	"github.com/wavehouse/studio-booking/internal/domain/client"
	"github.com/wavehouse/studio-booking/internal/domain/store"
	"github.com/wavehouse/studio-booking/internal/dto"
	"github.com/wavehouse/studio-booking/internal/events"
	"github.com/wavehouse/studio-booking/internal/httperr"
	"github.com/wavehouse/studio-booking/internal/models"
	"github.com/wavehouse/studio-booking/internal/monitoring"
	"github.com/wavehouse/studio-booking/internal/notify"
	"github.com/wavehouse/studio-booking/internal/validators"
)

type SubmitInput struct {
	Name        string
	Email       string
	Phone       string
	ServiceType string
	Date        string
	StartTime   string
	EndTime     string
	Notes       string
}

type SubmitBooking struct {
	store     store.Store
	sender    notify.Sender
	templates notify.Templates
	cache     cache.StatusCache
	events    events.Publisher
	audit     *audit.Dispatcher
	log       *zap.Logger
	timezone  string
}

func NewSubmitBooking(
	store store.Store,
	sender notify.Sender,
	templates notify.Templates,
	cache cache.StatusCache,
	events events.Publisher,
	audit *audit.Dispatcher,
	log *zap.Logger,
	timezone string,
) *SubmitBooking {
	return &SubmitBooking{
		store:     store,
		sender:    sender,
		templates: templates,
		cache:     cache,
		events:    events,
		audit:     audit,
		log:       log,
		timezone:  timezone,
	}
}

// Execute registers the client if needed, bumps its booking counter and
// stores the booking behind the verification gate when the client is not
// verified yet.
func (uc *SubmitBooking) Execute(
	ctx context.Context,
	in SubmitInput,
) (*dto.SubmitBookingDTO, error) {

	in.Name = strings.TrimSpace(in.Name)
	if strings.TrimSpace(in.Email) == "" || in.Name == "" {
		return nil, httperr.ErrValidation("email_and_name_required")
	}
	email := validators.NormalizeEmail(in.Email)
	if !validators.IsEmail(email) {
		return nil, httperr.ErrValidation("invalid_email")
	}
	if err := validators.BookingSlot(in.Date, in.StartTime, in.EndTime, uc.timezone); err != nil {
		return nil, err
	}

	b := &models.Booking{
		Name:        in.Name,
		Email:       email,
		Phone:       strings.TrimSpace(in.Phone),
		ServiceType: strings.TrimSpace(in.ServiceType),
		Date:        in.Date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Notes:       in.Notes,
	}
	var verified bool

	err := uc.store.Transaction(ctx, func(tx store.Store) error {
		c, err := tx.Clients().CreateIfAbsent(ctx, email, in.Name)
		if err != nil {
			return err
		}
		if err := tx.Clients().IncrementBookings(ctx, email); err != nil {
			return err
		}

		verified = client.IsVerified(c)
		b.Status = string(domain.InitialStatus(verified))
		return tx.Bookings().Create(ctx, b)
	})
	if err != nil {
		return nil, httperr.AsStorage("booking_create_failed", err)
	}

	monitoring.BookingsSubmitted.WithLabelValues(b.Status).Inc()
	uc.log.Info("booking submitted",
		zap.Uint("booking_id", b.ID),
		zap.String("email", email),
		zap.String("status", b.Status),
	)

	if err := uc.cache.Invalidate(ctx, email); err != nil {
		uc.log.Warn("status cache invalidation failed", zap.String("email", email), zap.Error(err))
	}

	msg := uc.templates.BookingReceived(b.Name, b.ServiceType, b.Date, b.StartTime, b.EndTime, !verified)
	if err := uc.sender.Send(ctx, email, msg.Subject, msg.Body); err != nil {
		uc.log.Warn("booking acknowledgement email failed", zap.Uint("booking_id", b.ID), zap.Error(err))
	}

	if err := uc.events.Publish(ctx, events.SubjectBookingSubmitted, email, events.BookingSubmitted{
		BookingID: b.ID,
		Email:     email,
		Status:    b.Status,
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}); err != nil {
		uc.log.Warn("booking event not published", zap.Uint("booking_id", b.ID), zap.Error(err))
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    "client",
		Action:   "booking_submitted",
		Entity:   "booking",
		EntityID: &b.ID,
		Email:    email,
		Metadata: map[string]string{"status": b.Status},
	})

	return &dto.SubmitBookingDTO{
		Message:           "Booking submitted successfully",
		Booking:           dto.FromBooking(b),
		NeedsVerification: !verified,
	}, nil
}
