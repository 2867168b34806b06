package verification

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/wavehouse/studio-booking/internal/audit"
	"github.com/wavehouse/studio-booking/internal/cache"
	"github.com/wavehouse/studio-booking/internal/domain/store"
	"github.com/wavehouse/studio-booking/internal/dto"
	"github.com/wavehouse/studio-booking/internal/httperr"
	"github.com/wavehouse/studio-booking/internal/identity"
	"github.com/wavehouse/studio-booking/internal/validators"
)

type CreateSession struct {
	store    store.Store
	provider identity.Provider
	cache    cache.StatusCache
	audit    *audit.Dispatcher
	log      *zap.Logger
}

func NewCreateSession(
	store store.Store,
	provider identity.Provider,
	cache cache.StatusCache,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CreateSession {
	return &CreateSession{
		store:    store,
		provider: provider,
		cache:    cache,
		audit:    audit,
		log:      log,
	}
}

// Execute registers the client when the email is new and asks the identity
// provider for a session.
func (uc *CreateSession) Execute(
	ctx context.Context,
	email string,
	name string,
) (*dto.SessionDTO, error) {

	name = strings.TrimSpace(name)
	if strings.TrimSpace(email) == "" || name == "" {
		return nil, httperr.ErrValidation("email_and_name_required")
	}
	email = validators.NormalizeEmail(email)
	if !validators.IsEmail(email) {
		return nil, httperr.ErrValidation("invalid_email")
	}

	c, err := uc.store.Clients().CreateIfAbsent(ctx, email, name)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Invalidate(ctx, email); err != nil {
		uc.log.Warn("status cache invalidation failed", zap.String("email", email), zap.Error(err))
	}

	session, err := uc.provider.CreateSession(ctx, c.ID, c.Email, c.Name)
	if err != nil {
		return nil, httperr.Upstream("verification_provider_failed", err)
	}

	uc.log.Info("verification session created",
		zap.String("email", email),
		zap.String("provider", uc.provider.Name()),
		zap.String("session_id", session.ID),
	)

	uc.audit.Dispatch(audit.Event{
		Actor:    "client",
		Action:   "verification_session_created",
		Entity:   "client",
		EntityID: &c.ID,
		Email:    email,
		Metadata: map[string]string{
			"provider":   uc.provider.Name(),
			"session_id": session.ID,
		},
	})

	return &dto.SessionDTO{
		SessionID:             session.ID,
		VerificationSessionID: session.ID,
		URL:                   session.URL,
		Status:                session.Status,
		Mock:                  session.Mock,
	}, nil
}
