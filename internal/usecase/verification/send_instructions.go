package verification

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/wavehouse/studio-booking/internal/domain/store"
	"github.com/wavehouse/studio-booking/internal/httperr"
	"github.com/wavehouse/studio-booking/internal/notify"
	"github.com/wavehouse/studio-booking/internal/validators"
)

type SendInstructions struct {
	store     store.Store
	sender    notify.Sender
	templates notify.Templates
	log       *zap.Logger
}

func NewSendInstructions(
	store store.Store,
	sender notify.Sender,
	templates notify.Templates,
	log *zap.Logger,
) *SendInstructions {
	return &SendInstructions{
		store:     store,
		sender:    sender,
		templates: templates,
		log:       log,
	}
}

// Execute emails ID verification instructions to a known client. Here the
// email is the operation, so a send failure is returned.
func (uc *SendInstructions) Execute(
	ctx context.Context,
	email string,
	name string,
) error {

	name = strings.TrimSpace(name)
	if strings.TrimSpace(email) == "" || name == "" {
		return httperr.ErrValidation("email_and_name_required")
	}
	email = validators.NormalizeEmail(email)

	c, err := uc.store.Clients().FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if c == nil {
		return httperr.ErrNotFound("client_not_found")
	}

	msg := uc.templates.VerificationInstructions(name)
	if err := uc.sender.Send(ctx, email, msg.Subject, msg.Body); err != nil {
		return httperr.Notification("verification_email_failed", err)
	}

	uc.log.Info("verification instructions sent", zap.String("email", email))
	return nil
}
