package verification

import (
	"context"

	"go.uber.org/zap"

	"github.com/wavehouse/studio-booking/internal/cache"
	domain "github.com/wavehouse/studio-booking/internal/domain/client"
	"github.com/wavehouse/studio-booking/internal/domain/store"
	"github.com/wavehouse/studio-booking/internal/dto"
	"github.com/wavehouse/studio-booking/internal/validators"
)

type GetStatus struct {
	store store.Store
	cache cache.StatusCache
	log   *zap.Logger
}

func NewGetStatus(
	store store.Store,
	cache cache.StatusCache,
	log *zap.Logger,
) *GetStatus {
	return &GetStatus{
		store: store,
		cache: cache,
		log:   log,
	}
}

// Execute never fails for an unknown email; it reports new_client instead.
// Only verified answers are cached: verified is terminal, so a cached entry
// can never hide a later transition.
func (uc *GetStatus) Execute(
	ctx context.Context,
	email string,
) (*dto.VerificationStatusDTO, error) {

	email = validators.NormalizeEmail(email)

	cached, err := uc.cache.Get(ctx, email)
	if err != nil {
		uc.log.Warn("status cache read failed", zap.String("email", email), zap.Error(err))
	}
	if cached != nil && cached.IsVerified {
		return cached, nil
	}

	c, err := uc.store.Clients().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	out := &dto.VerificationStatusDTO{
		Exists:             c != nil,
		IsVerified:         domain.IsVerified(c),
		VerificationStatus: string(domain.StatusOf(c)),
	}
	if c != nil {
		out.TotalBookings = c.TotalBookings
	}

	if out.IsVerified {
		if err := uc.cache.Set(ctx, email, out); err != nil {
			uc.log.Warn("status cache write failed", zap.String("email", email), zap.Error(err))
		}
	}

	return out, nil
}
