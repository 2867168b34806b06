package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/wavehouse/studio-booking/internal/config"
	"github.com/wavehouse/studio-booking/internal/monitoring"
)

// Sender delivers a plain-text email to one recipient. A nil error means
// the message was handed to the transport.
type Sender interface {
	Send(
		ctx context.Context,
		to string,
		subject string,
		body string,
	) error
}

// New returns the SMTP sender when SMTP is configured and a log-only sender
// otherwise. Both are wrapped with delivery metrics.
func New(cfg *config.Config, log *zap.Logger) (Sender, error) {
	if !cfg.SMTPEnabled() {
		log.Warn("SMTP_HOST not set, emails will only be logged")
		return Instrumented(NewLogSender(log)), nil
	}

	s, err := NewSMTPSender(cfg.SMTP)
	if err != nil {
		return nil, err
	}
	return Instrumented(s), nil
}

// LogSender writes messages to the log instead of delivering them.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log.Named("mail")}
}

func (s *LogSender) Send(
	ctx context.Context,
	to string,
	subject string,
	body string,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.log.Info("email not delivered, SMTP disabled",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("body_bytes", len(body)),
	)
	return nil
}

type instrumented struct {
	next Sender
}

// Instrumented counts every send by result.
func Instrumented(next Sender) Sender {
	return &instrumented{next: next}
}

func (s *instrumented) Send(
	ctx context.Context,
	to string,
	subject string,
	body string,
) error {
	err := s.next.Send(ctx, to, subject, body)

	result := "sent"
	if err != nil {
		result = "failed"
	}
	monitoring.EmailsSent.WithLabelValues(result).Inc()

	return err
}
