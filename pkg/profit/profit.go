// Package profit decides whether a listing is worth flipping and estimates
// the resale margin.
package profit

import (
	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

// Policy holds the constants of the resale model.
type Policy struct {
	// RetentionRate is the share of the resale price kept after platform fees.
	RetentionRate decimal.Decimal
	// FixedFee is subtracted once per sale (shipping, packaging).
	FixedFee decimal.Decimal
	// DefaultMargin is used when a search does not set its own multiplier.
	DefaultMargin decimal.Decimal
	// DefaultMinProfit seeds the floor of searches created without one.
	DefaultMinProfit decimal.Decimal
}

// DefaultPolicy returns the standard resale model: 87% retained, a fixed 2
// unit fee, a 1.8 resale multiplier and a minimum profit of 8.
func DefaultPolicy() Policy {
	return Policy{
		RetentionRate:    decimal.RequireFromString("0.87"),
		FixedFee:         decimal.NewFromInt(2),
		DefaultMargin:    decimal.RequireFromString("1.8"),
		DefaultMinProfit: decimal.NewFromInt(8),
	}
}

// Reason explains the outcome of an evaluation.
type Reason string

// Evaluation outcomes.
const (
	ReasonDeal           Reason = "deal"
	ReasonSeen           Reason = "seen"
	ReasonOverBudget     Reason = "over_budget"
	ReasonBelowMinProfit Reason = "below_min_profit"
	ReasonUnparsable     Reason = "unparsable"
)

// SeenFunc reports whether a dedup key has already been notified.
type SeenFunc func(key string) bool

// Result is the outcome of evaluating one listing against one search.
type Result struct {
	Deal   *domain.Deal
	Reason Reason
	Profit decimal.Decimal
}

// Evaluator applies a Policy to listings.
type Evaluator struct {
	policy Policy
	scheme domain.KeyScheme
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithKeyScheme selects the dedup key derivation.
func WithKeyScheme(k domain.KeyScheme) EvaluatorOption {
	return func(e *Evaluator) {
		e.scheme = k
	}
}

// NewEvaluator creates an Evaluator for the given policy.
func NewEvaluator(p Policy, opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{policy: p, scheme: domain.KeyListingID}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Policy returns the evaluator's resale model.
func (e *Evaluator) Policy() Policy {
	return e.policy
}

// KeyScheme returns the dedup key derivation used by Evaluate.
func (e *Evaluator) KeyScheme() domain.KeyScheme {
	return e.scheme
}

// Estimate returns price*margin*retention - price - fixed fee.
func (e *Evaluator) Estimate(price, margin decimal.Decimal) decimal.Decimal {
	return price.Mul(margin).Mul(e.policy.RetentionRate).Sub(price).Sub(e.policy.FixedFee)
}

// Evaluate applies the rules in order: already seen, over the search's max
// price, below the minimum profit. A listing passing all three is a Deal.
// A nil seen func treats every key as unseen. Listings that failed to parse
// are rejected before any rule runs.
func (e *Evaluator) Evaluate(l *domain.Listing, spec *domain.SearchSpec, seen SeenFunc) Result {
	if l.ParseErr != nil {
		return Result{Reason: ReasonUnparsable}
	}

	key := l.DedupKey(e.scheme)
	if seen != nil && seen(key) {
		return Result{Reason: ReasonSeen}
	}

	if l.Price.GreaterThan(spec.MaxPrice) {
		return Result{Reason: ReasonOverBudget}
	}

	// A valid search always has a margin above one, so zero means unset.
	// MinProfit is taken as given: zero is a legitimate floor.
	margin := spec.ProfitMargin
	if margin.IsZero() {
		margin = e.policy.DefaultMargin
	}

	est := e.Estimate(l.Price, margin)
	if est.LessThan(spec.MinProfit) {
		return Result{Reason: ReasonBelowMinProfit, Profit: est}
	}

	return Result{
		Reason: ReasonDeal,
		Profit: est,
		Deal: &domain.Deal{
			ListingID:       l.ListingID,
			Key:             key,
			Title:           l.Title,
			Price:           l.Price,
			Currency:        l.Currency,
			EstimatedProfit: est,
			SearchName:      spec.Name,
			URL:             l.URL,
		},
	}
}
