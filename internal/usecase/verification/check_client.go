package verification

import (
	"context"
	"strings"

	domain "github.com/wavehouse/studio-booking/internal/domain/client"
	"github.com/wavehouse/studio-booking/internal/domain/store"
	"github.com/wavehouse/studio-booking/internal/dto"
	"github.com/wavehouse/studio-booking/internal/httperr"
	"github.com/wavehouse/studio-booking/internal/validators"
)

type CheckClient struct {
	store store.Store
}

func NewCheckClient(
	store store.Store,
) *CheckClient {
	return &CheckClient{
		store: store,
	}
}

// Execute reports both first-time signals: is_first_time counts bookings,
// has_verified_booking looks at booking history.
func (uc *CheckClient) Execute(
	ctx context.Context,
	email string,
) (*dto.CheckClientDTO, error) {

	if strings.TrimSpace(email) == "" {
		return nil, httperr.ErrValidation("email_required")
	}
	email = validators.NormalizeEmail(email)

	c, err := uc.store.Clients().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	out := &dto.CheckClientDTO{
		ClientExists:       c != nil,
		IsVerified:         domain.IsVerified(c),
		NeedsVerification:  domain.NeedsVerification(c),
		VerificationStatus: string(domain.StatusOf(c)),
		IsFirstTime:        domain.IsFirstTime(c),
	}
	if c == nil {
		return out, nil
	}

	out.TotalBookings = c.TotalBookings

	hasVerified, err := uc.store.Bookings().HasVerifiedBooking(ctx, email)
	if err != nil {
		return nil, err
	}
	out.HasVerifiedBooking = hasVerified

	return out, nil
}
