package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/donaldgifford/deal-scanner/internal/metrics"
	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

// WebhookNotifier implements Notifier via a Discord channel webhook. A
// webhook cannot open a DM, so SendDirect always fails with
// ErrDirectUnsupported and every alert lands in the webhook's channel.
type WebhookNotifier struct {
	webhookURL string
	client     *http.Client
}

// WebhookOption configures a WebhookNotifier.
type WebhookOption func(*WebhookNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) WebhookOption {
	return func(w *WebhookNotifier) {
		w.client = c
	}
}

// NewWebhookNotifier creates a new WebhookNotifier.
func NewWebhookNotifier(webhookURL string, opts ...WebhookOption) *WebhookNotifier {
	w := &WebhookNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

type webhookPayload struct {
	Content         string                            `json:"content,omitempty"`
	Embeds          []*discordgo.MessageEmbed         `json:"embeds"`
	AllowedMentions *discordgo.MessageAllowedMentions `json:"allowed_mentions,omitempty"`
}

// SendDirect implements Notifier.
func (w *WebhookNotifier) SendDirect(context.Context, string, *domain.Deal) error {
	return ErrDirectUnsupported
}

// SendFallback posts the deal embed to the webhook channel, mentioning the
// owner.
func (w *WebhookNotifier) SendFallback(ctx context.Context, userID string, deal *domain.Deal) error {
	return w.post(ctx, webhookPayload{
		Content: Mention(userID),
		Embeds:  []*discordgo.MessageEmbed{BuildEmbed(deal)},
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Users: []string{userID},
		},
	})
}

func (w *WebhookNotifier) post(ctx context.Context, payload webhookPayload) error {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		w.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return errors.New("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
