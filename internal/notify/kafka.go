package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/config"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/entities"
	"github.com/segmentio/kafka-go"
)

// KafkaNotifier publishes notifications to the notifications topic. Writes are
// asynchronous, delivery errors are only logged.
type KafkaNotifier struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewKafkaNotifier(logger *slog.Logger, cfg config.Kafka) *KafkaNotifier {
	logger = logger.With(slog.String("notifier", "kafka"))
	return &KafkaNotifier{
		logger: logger,
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.NotificationsTopic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: cfg.BatchTimeout,
			Async:        true,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					logger.Error("failed to deliver notifications", slog.Int("count", len(messages)), slog.Any("error", err))
				}
			},
		},
	}
}

func (n *KafkaNotifier) Notify(ctx context.Context, notification entities.Notification) error {
	m, err := message(notification)
	if err != nil {
		return err
	}
	if err := n.writer.WriteMessages(ctx, m); err != nil {
		return fmt.Errorf("failed to write notification: %w", err)
	}
	n.logger.DebugContext(ctx, "notification queued", slog.String("recipient", notification.Recipient))
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}

// message keys notifications by recipient so one admin's notifications stay
// ordered within a partition.
func message(notification entities.Notification) (kafka.Message, error) {
	value, err := json.Marshal(notification)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal notification: %w", err)
	}
	return kafka.Message{
		Key:   []byte(notification.Recipient),
		Value: value,
	}, nil
}
