package notify

import (
	"context"
	"log/slog"

	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

// NoOpNotifier implements Notifier by logging discarded alerts. It backs
// dry runs and deployments without a Discord sink.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards alerts with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendDirect logs and discards the alert.
func (n *NoOpNotifier) SendDirect(_ context.Context, userID string, deal *domain.Deal) error {
	n.log.Info("notification discarded (no backend configured)",
		"route", "direct",
		"owner", userID,
		"search", deal.SearchName,
		"listing", deal.Title,
		"profit", deal.EstimatedProfit.StringFixed(1),
	)
	return nil
}

// SendFallback logs and discards the alert.
func (n *NoOpNotifier) SendFallback(_ context.Context, userID string, deal *domain.Deal) error {
	n.log.Info("notification discarded (no backend configured)",
		"route", "fallback",
		"owner", userID,
		"search", deal.SearchName,
		"listing", deal.Title,
	)
	return nil
}
