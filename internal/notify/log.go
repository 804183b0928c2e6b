package notify

import (
	"context"
	"log/slog"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/entities"
)

// LogNotifier writes notifications to the log. Used when Kafka is disabled.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With(slog.String("notifier", "log"))}
}

func (n *LogNotifier) Notify(ctx context.Context, notification entities.Notification) error {
	n.logger.InfoContext(ctx, notification.Title,
		slog.String("recipient", notification.Recipient),
		slog.String("severity", string(notification.Severity)),
		slog.String("body", notification.Body),
	)
	return nil
}
