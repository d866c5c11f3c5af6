package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// PostgresOption configures a PostgresStore.
type PostgresOption func(*pgxpool.Config)

// WithPoolSize overrides the maximum number of pooled connections.
func WithPoolSize(n int32) PostgresOption {
	return func(c *pgxpool.Config) {
		if n > 0 {
			c.MaxConns = n
		}
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string, opts ...PostgresOption) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// AddSearch inserts spec and registers its owner for cycle ordering.
func (s *PostgresStore) AddSearch(ctx context.Context, spec *domain.SearchSpec) error {
	createdAt := spec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	args := pgx.NamedArgs{
		"search_id":     spec.ID,
		"owner_id":      spec.OwnerID,
		"name":          spec.Name,
		"keywords":      spec.Keywords,
		"max_price":     spec.MaxPrice.String(),
		"profit_margin": spec.ProfitMargin.String(),
		"min_profit":    spec.MinProfit.String(),
		"created_at":    createdAt,
	}

	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, queryRegisterOwner, args); err != nil {
			return fmt.Errorf("registering owner %s: %w", spec.OwnerID, err)
		}
		if _, err := tx.Exec(ctx, queryInsertSearch, args); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %s", ErrDuplicateSearch, spec.ID)
			}
			return fmt.Errorf("inserting search %s: %w", spec.ID, err)
		}
		return nil
	})
}

// ListSearches returns the owner's searches in insertion order.
func (s *PostgresStore) ListSearches(ctx context.Context, ownerID string) ([]domain.SearchSpec, error) {
	rows, err := s.pool.Query(ctx, queryListSearches, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing searches: %w", err)
	}
	return collectSearches(rows)
}

// SnapshotSearches returns every search in cycle order.
func (s *PostgresStore) SnapshotSearches(ctx context.Context) ([]domain.SearchSpec, error) {
	rows, err := s.pool.Query(ctx, querySnapshotSearches)
	if err != nil {
		return nil, fmt.Errorf("snapshotting searches: %w", err)
	}
	return collectSearches(rows)
}

// RemoveSearchByIndex deletes the owner's search at the 1-based index.
func (s *PostgresStore) RemoveSearchByIndex(
	ctx context.Context,
	ownerID string,
	index int,
) (*domain.SearchSpec, error) {
	if index < 1 {
		return nil, fmt.Errorf("%w: index %d", ErrSearchNotFound, index)
	}

	var removed *domain.SearchSpec
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		var seq int64
		spec, err := scanSearch(tx.QueryRow(ctx, querySearchAtIndex, ownerID, index-1), &seq)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: owner %s index %d", ErrSearchNotFound, ownerID, index)
		}
		if err != nil {
			return fmt.Errorf("locating search: %w", err)
		}

		if _, err := tx.Exec(ctx, queryDeleteSearch, seq); err != nil {
			return fmt.Errorf("deleting search: %w", err)
		}
		if _, err := tx.Exec(ctx, queryDropOwnerIfEmpty, ownerID); err != nil {
			return fmt.Errorf("dropping empty owner: %w", err)
		}

		removed = spec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// CountSearches returns the number of searches and distinct owners.
func (s *PostgresStore) CountSearches(ctx context.Context) (int, int, error) {
	var searches, owners int
	if err := s.pool.QueryRow(ctx, queryCountSearches).Scan(&searches, &owners); err != nil {
		return 0, 0, fmt.Errorf("counting searches: %w", err)
	}
	return searches, owners, nil
}

// IsSeen reports whether key has been recorded.
func (s *PostgresStore) IsSeen(ctx context.Context, key string) (bool, error) {
	var exists bool
	if err := s.pool.QueryRow(ctx, queryIsSeen, key).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking seen key: %w", err)
	}
	return exists, nil
}

// MarkSeen records key, keeping the first-seen time on repeats.
func (s *PostgresStore) MarkSeen(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, queryMarkSeen, key); err != nil {
		return fmt.Errorf("marking seen key: %w", err)
	}
	return nil
}

// CountSeen returns the size of the seen set.
func (s *PostgresStore) CountSeen(ctx context.Context) (int64, error) {
	var n int64
	if err := s.pool.QueryRow(ctx, queryCountSeen).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting seen keys: %w", err)
	}
	return n, nil
}

// PruneSeen deletes keys first seen before olderThan.
func (s *PostgresStore) PruneSeen(ctx context.Context, olderThan time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, queryPruneSeen, olderThan)
	if err != nil {
		return 0, fmt.Errorf("pruning seen keys: %w", err)
	}
	return tag.RowsAffected(), nil
}

func collectSearches(rows pgx.Rows) ([]domain.SearchSpec, error) {
	defer rows.Close()

	var out []domain.SearchSpec
	for rows.Next() {
		spec, err := scanSearch(rows, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, *spec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating searches: %w", err)
	}
	return out, nil
}

// scanSearch reads one searchColumns row. When seq is non-nil the row is
// expected to be prefixed with the seq column.
func scanSearch(row pgx.Row, seq *int64) (*domain.SearchSpec, error) {
	var (
		spec                        domain.SearchSpec
		maxPrice, margin, minProfit string
	)

	dest := []any{
		&spec.ID, &spec.OwnerID, &spec.Name, &spec.Keywords,
		&maxPrice, &margin, &minProfit, &spec.CreatedAt,
	}
	if seq != nil {
		dest = append([]any{seq}, dest...)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	var err error
	if spec.MaxPrice, err = decimal.NewFromString(maxPrice); err != nil {
		return nil, fmt.Errorf("parsing max_price: %w", err)
	}
	if spec.ProfitMargin, err = decimal.NewFromString(margin); err != nil {
		return nil, fmt.Errorf("parsing profit_margin: %w", err)
	}
	if spec.MinProfit, err = decimal.NewFromString(minProfit); err != nil {
		return nil, fmt.Errorf("parsing min_profit: %w", err)
	}
	return &spec, nil
}
