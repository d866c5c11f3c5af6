// Package store defines the state abstractions of the deal scanner: the
// per-owner search registry and the global seen-item set. Business logic
// depends on these interfaces, never on a concrete backend, so the engine
// and handlers can be tested with mocks or the in-memory implementation.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

var (
	// ErrSearchNotFound is returned when an owner has no search at the
	// requested position.
	ErrSearchNotFound = errors.New("search not found")
	// ErrDuplicateSearch is returned when a search ID is already registered.
	ErrDuplicateSearch = errors.New("search already exists")
)

// SearchRegistry stores saved searches grouped by owner. Iteration order is
// owner first-insertion order, then search insertion order within an owner.
type SearchRegistry interface {
	AddSearch(ctx context.Context, spec *domain.SearchSpec) error
	ListSearches(ctx context.Context, ownerID string) ([]domain.SearchSpec, error)
	// RemoveSearchByIndex removes the owner's search at the 1-based
	// position reported by ListSearches and returns it.
	RemoveSearchByIndex(ctx context.Context, ownerID string, index int) (*domain.SearchSpec, error)
	// SnapshotSearches returns a copy of every search in cycle order.
	SnapshotSearches(ctx context.Context) ([]domain.SearchSpec, error)
	CountSearches(ctx context.Context) (searches, owners int, err error)
}

// SeenStore is the global set of dedup keys that have been notified.
type SeenStore interface {
	IsSeen(ctx context.Context, key string) (bool, error)
	MarkSeen(ctx context.Context, key string) error
	CountSeen(ctx context.Context) (int64, error)
	// PruneSeen drops keys first seen before olderThan and returns how
	// many were removed.
	PruneSeen(ctx context.Context, olderThan time.Time) (int64, error)
}

// Store is a backend holding both the registry and the seen set.
type Store interface {
	SearchRegistry
	SeenStore

	Ping(ctx context.Context) error
	Close()
}
