package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

// MemoryStore implements Store in process memory. State is lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	owners   []string
	searches map[string][]domain.SearchSpec
	seen     map[string]time.Time
	nowFunc  func() time.Time
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithMemoryNowFunc overrides the clock used to stamp seen keys.
func WithMemoryNowFunc(f func() time.Time) MemoryOption {
	return func(m *MemoryStore) {
		m.nowFunc = f
	}
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	m := &MemoryStore{
		searches: make(map[string][]domain.SearchSpec),
		seen:     make(map[string]time.Time),
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Ping always succeeds.
func (*MemoryStore) Ping(context.Context) error { return nil }

// Close is a no-op.
func (*MemoryStore) Close() {}

// AddSearch appends spec to its owner's searches.
func (m *MemoryStore) AddSearch(_ context.Context, spec *domain.SearchSpec) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.searches[spec.OwnerID]
	if !ok {
		m.owners = append(m.owners, spec.OwnerID)
	}
	if slices.ContainsFunc(existing, func(s domain.SearchSpec) bool { return s.ID == spec.ID }) {
		return fmt.Errorf("%w: %s", ErrDuplicateSearch, spec.ID)
	}

	m.searches[spec.OwnerID] = append(existing, *spec)
	return nil
}

// ListSearches returns a copy of the owner's searches in insertion order.
func (m *MemoryStore) ListSearches(_ context.Context, ownerID string) ([]domain.SearchSpec, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.searches[ownerID]), nil
}

// RemoveSearchByIndex removes the owner's search at the 1-based index.
// An owner left with no searches is dropped from the registry.
func (m *MemoryStore) RemoveSearchByIndex(
	_ context.Context,
	ownerID string,
	index int,
) (*domain.SearchSpec, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	specs := m.searches[ownerID]
	if index < 1 || index > len(specs) {
		return nil, fmt.Errorf("%w: owner %s has %d searches, got index %d",
			ErrSearchNotFound, ownerID, len(specs), index)
	}

	removed := specs[index-1]
	specs = slices.Delete(specs, index-1, index)

	if len(specs) == 0 {
		delete(m.searches, ownerID)
		m.owners = slices.DeleteFunc(m.owners, func(o string) bool { return o == ownerID })
	} else {
		m.searches[ownerID] = specs
	}

	return &removed, nil
}

// SnapshotSearches returns every search, owners in first-insertion order.
func (m *MemoryStore) SnapshotSearches(context.Context) ([]domain.SearchSpec, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []domain.SearchSpec
	for _, owner := range m.owners {
		out = append(out, m.searches[owner]...)
	}
	return out, nil
}

// CountSearches returns the total number of searches and owners.
func (m *MemoryStore) CountSearches(context.Context) (int, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var n int
	for _, specs := range m.searches {
		n += len(specs)
	}
	return n, len(m.owners), nil
}

// IsSeen reports whether key has been marked.
func (m *MemoryStore) IsSeen(_ context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.seen[key]
	return ok, nil
}

// MarkSeen records key. Marking an existing key keeps its first-seen time.
func (m *MemoryStore) MarkSeen(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.seen[key]; !ok {
		m.seen[key] = m.nowFunc()
	}
	return nil
}

// CountSeen returns the number of seen keys.
func (m *MemoryStore) CountSeen(context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.seen)), nil
}

// PruneSeen removes keys first seen before olderThan.
func (m *MemoryStore) PruneSeen(_ context.Context, olderThan time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for k, at := range m.seen {
		if at.Before(olderThan) {
			delete(m.seen, k)
			n++
		}
	}
	return n, nil
}
