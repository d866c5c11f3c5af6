// Package notify defines the notification interface and the Discord sinks
// that deliver deal alerts.
package notify

import (
	"context"
	"errors"

	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

// ErrDirectUnsupported is returned by sinks that cannot message a user
// privately. Callers fall back to SendFallback.
var ErrDirectUnsupported = errors.New("direct messages not supported by this notifier")

// Notifier defines the two delivery routes for a deal alert: a direct
// message to the owner, and a broadcast channel post that mentions them.
type Notifier interface {
	SendDirect(ctx context.Context, userID string, deal *domain.Deal) error
	SendFallback(ctx context.Context, userID string, deal *domain.Deal) error
}

// Mention formats a Discord user mention.
func Mention(userID string) string {
	return "<@" + userID + ">"
}
