package contact

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/wavehouse/studio-booking/internal/audit"
	domain "github.com/wavehouse/studio-booking/internal/domain/contact"
	"github.com/wavehouse/studio-booking/internal/httperr"
	"github.com/wavehouse/studio-booking/internal/models"
	"github.com/wavehouse/studio-booking/internal/notify"
	"github.com/wavehouse/studio-booking/internal/validators"
)

type SubmitContact struct {
	repo       domain.Repository
	sender     notify.Sender
	templates  notify.Templates
	adminEmail string
	audit      *audit.Dispatcher
	log        *zap.Logger
}

func NewSubmitContact(
	repo domain.Repository,
	sender notify.Sender,
	templates notify.Templates,
	adminEmail string,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *SubmitContact {
	return &SubmitContact{
		repo:       repo,
		sender:     sender,
		templates:  templates,
		adminEmail: adminEmail,
		audit:      audit,
		log:        log,
	}
}

// Execute stores the message and forwards it to the studio inbox. The
// stored copy survives a failed send.
func (uc *SubmitContact) Execute(
	ctx context.Context,
	name string,
	email string,
	message string,
) error {

	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)
	if name == "" {
		return httperr.ErrValidation("name_required")
	}
	if strings.TrimSpace(email) == "" {
		return httperr.ErrValidation("email_required")
	}
	if message == "" {
		return httperr.ErrValidation("message_required")
	}
	email = validators.NormalizeEmail(email)
	if !validators.IsEmail(email) {
		return httperr.ErrValidation("invalid_email")
	}

	msg := &models.ContactMessage{Name: name, Email: email, Message: message}
	if err := uc.repo.Save(ctx, msg); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    "visitor",
		Action:   "contact_submitted",
		Entity:   "contact_message",
		EntityID: &msg.ID,
		Email:    email,
	})

	out := uc.templates.ContactSubmission(name, email, message)
	if err := uc.sender.Send(ctx, uc.adminEmail, out.Subject, out.Body); err != nil {
		return httperr.Notification("contact_email_failed", err)
	}

	uc.log.Info("contact message forwarded", zap.Uint("message_id", msg.ID), zap.String("email", email))
	return nil
}
