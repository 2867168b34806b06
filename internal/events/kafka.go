package events

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes every subject to one topic. The subject travels in
// the "event" header and the client email is the partition key.
type KafkaPublisher struct {
	writer messageWriter
	logger *zap.Logger
}

func NewKafkaPublisher(brokers []string, topic string, logger *zap.Logger) *KafkaPublisher {
	logger.Info("kafka publisher ready", zap.Strings("brokers", brokers), zap.String("topic", topic))
	return &KafkaPublisher{writer: newKafkaWriter(brokers, topic, logger), logger: logger}
}

// newKafkaWriter returns an async writer so Publish never waits for a
// batch to fill. Delivery failures surface through Completion; Close
// flushes what is still buffered.
func newKafkaWriter(brokers []string, topic string, logger *zap.Logger) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		Async:                  true,
		Completion:             logDeliveryFailures(logger),
		AllowAutoTopicCreation: true,
	}
}

func logDeliveryFailures(logger *zap.Logger) func([]kafka.Message, error) {
	return func(msgs []kafka.Message, err error) {
		if err == nil {
			return
		}
		for _, m := range msgs {
			logger.Warn("event delivery failed",
				zap.String("subject", eventHeader(m)),
				zap.String("key", string(m.Key)),
				zap.Error(err),
			)
		}
	}
}

func eventHeader(m kafka.Message) string {
	for _, h := range m.Headers {
		if h.Key == "event" {
			return string(h.Value)
		}
	}
	return ""
}

func (p *KafkaPublisher) Publish(ctx context.Context, subject string, key string, payload any) error {
	msg, err := kafkaMessage(subject, key, payload)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write %s: %w", subject, err)
	}

	p.logger.Debug("event published", zap.String("subject", subject), zap.String("key", key))
	return nil
}

func kafkaMessage(subject string, key string, payload any) (kafka.Message, error) {
	data, err := encode(payload)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(key),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(subject)},
		},
	}, nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
