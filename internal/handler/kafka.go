package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/config"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/intake"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type OrderCreator interface {
	CreateOrder(ctx context.Context, form intake.Form) (entities.Order, error)
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaHandler turns storefront checkouts from the intake topic into orders.
// Messages that cannot be stored are moved to <topic>-dlq.
type KafkaHandler struct {
	dlq      MessageWriter
	reader   MessageReader
	logger   *slog.Logger
	validate *validator.Validate
	creator  OrderCreator
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, creator OrderCreator) *KafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.IntakeTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return newKafkaHandler(logger, reader, dlq, creator)
}

func newKafkaHandler(logger *slog.Logger, reader MessageReader, dlq MessageWriter, creator OrderCreator) *KafkaHandler {
	return &KafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: newValidator(),
		creator:  creator,
	}
}

func (h *KafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		h.process(ctx, m)
	}
}

func (h *KafkaHandler) process(ctx context.Context, m kafka.Message) {
	checkoutsInProgress.Inc()
	defer checkoutsInProgress.Dec()
	start := time.Now()

	// В CreateOrder чтения каталога уже с retry
	if err := h.handleCheckout(ctx, m); err != nil {
		checkoutsFailed.WithLabelValues(failureReason(err)).Inc()
		h.logger.Error("failed to handle message", slog.Any("error", err), slog.Int64("offset", m.Offset))

		// В библиотеке уже есть retry
		if err := h.WriteToDLQ(ctx, m); err != nil {
			h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
			return
		}
		checkoutsDLQ.Inc()
	} else {
		checkoutsProcessed.Inc()
	}
	checkoutProcessingDuration.Observe(time.Since(start).Seconds())

	if err := h.reader.CommitMessages(ctx, m); err != nil {
		commitErrors.Inc()
		h.logger.Error("failed to commit message", slog.Any("error", err))
	}
}

func (h *KafkaHandler) handleCheckout(ctx context.Context, m kafka.Message) error {
	var checkout CheckoutMessage
	if err := json.Unmarshal(m.Value, &checkout); err != nil {
		return fmt.Errorf("failed to unmarshal checkout: %w", err)
	}

	if err := h.validate.Struct(checkout); err != nil {
		return fmt.Errorf("invalid checkout data: %w", err)
	}

	order, err := h.creator.CreateOrder(ctx, CheckoutToIntake(checkout))
	if err != nil {
		return err
	}
	h.logger.Debug("checkout stored", slog.String("booking_trx_id", order.BookingTrxID))
	return nil
}

func (h *KafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	dead := kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	}
	return h.dlq.WriteMessages(ctx, dead)
}

func (h *KafkaHandler) Close() error {
	return errors.Join(h.reader.Close(), h.dlq.Close())
}

func failureReason(err error) string {
	var ve *intake.ValidationError
	var fe validator.ValidationErrors
	var se *json.SyntaxError
	switch {
	case errors.As(err, &ve), errors.As(err, &fe):
		return "invalid"
	case errors.As(err, &se):
		return "malformed"
	default:
		return "internal"
	}
}
