package verification

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wavehouse/studio-booking/internal/audit"
	"github.com/wavehouse/studio-booking/internal/cache"
	"github.com/wavehouse/studio-booking/internal/domain/store"
	"github.com/wavehouse/studio-booking/internal/dto"
	"github.com/wavehouse/studio-booking/internal/events"
	"github.com/wavehouse/studio-booking/internal/httperr"
	"github.com/wavehouse/studio-booking/internal/models"
	"github.com/wavehouse/studio-booking/internal/monitoring"
	"github.com/wavehouse/studio-booking/internal/notify"
	"github.com/wavehouse/studio-booking/internal/validators"
)

type Complete struct {
	store     store.Store
	sender    notify.Sender
	templates notify.Templates
	cache     cache.StatusCache
	events    events.Publisher
	audit     *audit.Dispatcher
	log       *zap.Logger
}

func NewComplete(
	store store.Store,
	sender notify.Sender,
	templates notify.Templates,
	cache cache.StatusCache,
	events events.Publisher,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *Complete {
	return &Complete{
		store:     store,
		sender:    sender,
		templates: templates,
		cache:     cache,
		events:    events,
		audit:     audit,
		log:       log,
	}
}

// Execute marks the client verified and promotes its waiting bookings in one
// transaction. Everything after the commit is best-effort: a failed email,
// cache or event call is logged and the verification stands.
func (uc *Complete) Execute(
	ctx context.Context,
	email string,
	actor string,
) (*dto.CompleteVerificationDTO, error) {

	if strings.TrimSpace(email) == "" {
		return nil, httperr.ErrValidation("email_required")
	}
	email = validators.NormalizeEmail(email)

	var (
		verified *models.Client
		promoted int64
	)

	err := uc.store.Transaction(ctx, func(tx store.Store) error {
		c, err := tx.Clients().MarkVerified(ctx, email)
		if err != nil {
			return err
		}

		n, err := tx.Bookings().PromotePending(ctx, email)
		if err != nil {
			return err
		}

		verified, promoted = c, n
		return nil
	})
	if err != nil {
		return nil, httperr.AsStorage("failed_to_mark_client_verified", err)
	}

	monitoring.VerificationsCompleted.Inc()
	uc.log.Info("client verified",
		zap.String("email", email),
		zap.String("actor", actor),
		zap.Int64("updated_bookings", promoted),
	)

	if err := uc.cache.Invalidate(ctx, email); err != nil {
		uc.log.Warn("status cache invalidation failed", zap.String("email", email), zap.Error(err))
	}

	msg := uc.templates.VerificationComplete(verified.Name)
	if err := uc.sender.Send(ctx, email, msg.Subject, msg.Body); err != nil {
		uc.log.Warn("verification confirmation email failed", zap.String("email", email), zap.Error(err))
	}

	verifiedAt := time.Now().UTC()
	if verified.VerifiedAt != nil {
		verifiedAt = *verified.VerifiedAt
	}
	if err := uc.events.Publish(ctx, events.SubjectVerificationCompleted, email, events.VerificationCompleted{
		Email:           email,
		UpdatedBookings: promoted,
		VerifiedAt:      verifiedAt,
	}); err != nil {
		uc.log.Warn("verification event not published", zap.String("email", email), zap.Error(err))
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "client_verified",
		Entity:   "client",
		EntityID: &verified.ID,
		Email:    email,
		Metadata: map[string]int64{"updated_bookings": promoted},
	})

	return &dto.CompleteVerificationDTO{
		Status:          verified.VerificationStatus,
		Message:         "Client marked as verified",
		UpdatedBookings: promoted,
	}, nil
}
