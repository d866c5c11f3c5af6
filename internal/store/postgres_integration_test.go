//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/deal-scanner/internal/store"
	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("ds_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr, store.WithPoolSize(4))
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testSpec(owner, id string) *domain.SearchSpec {
	return &domain.SearchSpec{
		ID:           id,
		OwnerID:      owner,
		Name:         id,
		Keywords:     "nike " + id,
		MaxPrice:     decimal.RequireFromString("29.90"),
		ProfitMargin: decimal.RequireFromString("1.8"),
		MinProfit:    decimal.NewFromInt(8),
		CreatedAt:    time.Now().Truncate(time.Microsecond),
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_MigrateIdempotent(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Migrate(context.Background()))
}

func TestPostgresStore_SearchRegistry(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	require.NoError(t, s.AddSearch(ctx, testSpec("alice", "a1")))
	require.NoError(t, s.AddSearch(ctx, testSpec("bob", "b1")))
	require.NoError(t, s.AddSearch(ctx, testSpec("alice", "a2")))

	err := s.AddSearch(ctx, testSpec("alice", "a1"))
	require.ErrorIs(t, err, store.ErrDuplicateSearch)

	list, err := s.ListSearches(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a1", list[0].ID)
	assert.True(t, decimal.RequireFromString("29.90").Equal(list[0].MaxPrice))
	assert.True(t, decimal.RequireFromString("1.8").Equal(list[0].ProfitMargin))

	snap, err := s.SnapshotSearches(ctx)
	require.NoError(t, err)
	require.Len(t, snap, 3)
	assert.Equal(t, []string{"a1", "a2", "b1"}, []string{snap[0].ID, snap[1].ID, snap[2].ID})

	searches, owners, err := s.CountSearches(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, searches)
	assert.Equal(t, 2, owners)

	_, err = s.RemoveSearchByIndex(ctx, "alice", 3)
	require.ErrorIs(t, err, store.ErrSearchNotFound)

	removed, err := s.RemoveSearchByIndex(ctx, "alice", 1)
	require.NoError(t, err)
	assert.Equal(t, "a1", removed.ID)

	removed, err = s.RemoveSearchByIndex(ctx, "alice", 1)
	require.NoError(t, err)
	assert.Equal(t, "a2", removed.ID)

	// alice re-registers behind bob.
	require.NoError(t, s.AddSearch(ctx, testSpec("alice", "a3")))
	snap, err = s.SnapshotSearches(ctx)
	require.NoError(t, err)
	require.Len(t, snap, 2)
	assert.Equal(t, "b1", snap[0].ID)
	assert.Equal(t, "a3", snap[1].ID)
}

func TestPostgresStore_SeenItems(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	seen, err := s.IsSeen(ctx, "100")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, s.MarkSeen(ctx, "100"))
	require.NoError(t, s.MarkSeen(ctx, "100"))
	require.NoError(t, s.MarkSeen(ctx, "200"))

	seen, err = s.IsSeen(ctx, "100")
	require.NoError(t, err)
	assert.True(t, seen)

	n, err := s.CountSeen(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	pruned, err := s.PruneSeen(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), pruned)

	n, err = s.CountSeen(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
