package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/deal-scanner/internal/metrics"
	"github.com/donaldgifford/deal-scanner/internal/notify"
	"github.com/donaldgifford/deal-scanner/internal/store"
	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

// ErrDeliveryFailed is returned when neither the direct nor the fallback
// route accepted a deal.
var ErrDeliveryFailed = errors.New("deal delivery failed")

// Route identifies how a deal reached its owner.
type Route string

// Delivery routes.
const (
	RouteDirect   Route = "direct"
	RouteFallback Route = "fallback"
)

// Delivery describes a successful notification.
type Delivery struct {
	Route Route
	// Recorded is false when the seen store rejected the key.
	Recorded bool
}

// Dispatcher sends a deal to its owner, falling back to the broadcast
// channel, and records the dedup key once the deal got through.
type Dispatcher struct {
	sink   notify.Notifier
	seen   store.SeenStore
	log    *slog.Logger
	tracer trace.Tracer
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(sink notify.Notifier, seen store.SeenStore, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{sink: sink, seen: seen, log: log, tracer: defaultTracer()}
}

// Notify delivers deal to ownerID. The key is marked seen only after one of
// the routes succeeded; when both fail the returned error wraps
// ErrDeliveryFailed and both causes.
func (d *Dispatcher) Notify(ctx context.Context, deal *domain.Deal, ownerID string) (_ Delivery, err error) {
	ctx, span := d.tracer.Start(ctx, "notify.deliver", trace.WithAttributes(
		attribute.String("listing.id", deal.ListingID),
		attribute.String("owner.id", ownerID),
	))
	defer func() { finishSpan(span, err) }()

	route := RouteDirect

	directErr := d.sink.SendDirect(ctx, ownerID, deal)
	if directErr != nil {
		if !errors.Is(directErr, notify.ErrDirectUnsupported) {
			d.log.Warn("direct message failed, using fallback channel",
				"owner", ownerID,
				"listing", deal.ListingID,
				"error", directErr,
			)
		}

		route = RouteFallback
		if fallbackErr := d.sink.SendFallback(ctx, ownerID, deal); fallbackErr != nil {
			metrics.NotificationFailuresTotal.Inc()
			return Delivery{}, errors.Join(
				fmt.Errorf("%w for listing %s", ErrDeliveryFailed, deal.ListingID),
				directErr,
				fallbackErr,
			)
		}
	}

	metrics.NotificationsTotal.WithLabelValues(string(route)).Inc()
	span.SetAttributes(attribute.String("notify.route", string(route)))

	delivery := Delivery{Route: route, Recorded: true}
	if err := d.seen.MarkSeen(ctx, deal.Key); err != nil {
		metrics.SeenStoreErrorsTotal.WithLabelValues("mark").Inc()
		d.log.Error("recording delivered deal failed",
			"key", deal.Key,
			"error", err,
		)
		delivery.Recorded = false
	}

	return delivery, nil
}
