package events

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

type natsConnection interface {
	Publish(subj string, data []byte) error
	Drain() error
	IsClosed() bool
}

type NATSPublisher struct {
	conn   natsConnection
	logger *zap.Logger
}

func NewNATSPublisher(url string, logger *zap.Logger) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("studio-booking"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info("connected to NATS", zap.String("url", url))
	return &NATSPublisher{conn: conn, logger: logger}, nil
}

// Publish sends payload as JSON on subject. NATS has no message key, so
// key is only logged.
func (p *NATSPublisher) Publish(ctx context.Context, subject string, key string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.conn.IsClosed() {
		return ErrClosed
	}

	data, err := encode(payload)
	if err != nil {
		return err
	}

	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}

	p.logger.Debug("event published", zap.String("subject", subject), zap.String("key", key))
	return nil
}

func (p *NATSPublisher) Close() error {
	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}
	p.logger.Info("NATS connection draining")
	return p.conn.Drain()
}
