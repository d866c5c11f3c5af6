package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultRedisPrefix = "ds:"
	redisScanCount     = 500
	redisPingTimeout   = 5 * time.Second
)

// RedisSeenStore implements SeenStore with one Redis key per dedup key.
// Each value holds the first-seen unix time; keys expire after ttl when
// ttl is positive.
type RedisSeenStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// RedisOption configures a RedisSeenStore.
type RedisOption func(*RedisSeenStore)

// WithRedisPrefix namespaces every key.
func WithRedisPrefix(p string) RedisOption {
	return func(r *RedisSeenStore) {
		r.prefix = p
	}
}

// WithRedisTTL expires seen keys after d. Zero keeps them forever.
func WithRedisTTL(d time.Duration) RedisOption {
	return func(r *RedisSeenStore) {
		r.ttl = d
	}
}

// NewRedisClient builds a client and verifies connectivity.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", addr, err)
	}
	return client, nil
}

// NewRedisSeenStore wraps an existing client.
func NewRedisSeenStore(client *redis.Client, opts ...RedisOption) *RedisSeenStore {
	r := &RedisSeenStore{
		client: client,
		prefix: defaultRedisPrefix,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RedisSeenStore) key(k string) string {
	return r.prefix + "seen:" + k
}

// Ping checks the connection.
func (r *RedisSeenStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the client.
func (r *RedisSeenStore) Close() {
	_ = r.client.Close()
}

// IsSeen reports whether key exists.
func (r *RedisSeenStore) IsSeen(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("checking seen key: %w", err)
	}
	return n == 1, nil
}

// MarkSeen records key unless it is already present.
func (r *RedisSeenStore) MarkSeen(ctx context.Context, key string) error {
	now := strconv.FormatInt(time.Now().Unix(), 10)
	if err := r.client.SetNX(ctx, r.key(key), now, r.ttl).Err(); err != nil {
		return fmt.Errorf("marking seen key: %w", err)
	}
	return nil
}

// CountSeen scans the key space under the store prefix.
func (r *RedisSeenStore) CountSeen(ctx context.Context) (int64, error) {
	var n int64
	err := r.scan(ctx, func(keys []string) error {
		n += int64(len(keys))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// PruneSeen deletes keys whose first-seen time is before olderThan.
// Values that do not parse as a unix time are left in place.
func (r *RedisSeenStore) PruneSeen(ctx context.Context, olderThan time.Time) (int64, error) {
	var removed int64
	cutoff := olderThan.Unix()

	err := r.scan(ctx, func(keys []string) error {
		vals, err := r.client.MGet(ctx, keys...).Result()
		if err != nil {
			return fmt.Errorf("reading seen keys: %w", err)
		}

		var stale []string
		for i, v := range vals {
			s, ok := v.(string)
			if !ok {
				continue
			}
			at, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				continue
			}
			if at < cutoff {
				stale = append(stale, keys[i])
			}
		}
		if len(stale) == 0 {
			return nil
		}

		n, err := r.client.Del(ctx, stale...).Result()
		if err != nil {
			return fmt.Errorf("deleting stale seen keys: %w", err)
		}
		removed += n
		return nil
	})
	if err != nil {
		return removed, err
	}
	return removed, nil
}

func (r *RedisSeenStore) scan(ctx context.Context, fn func(keys []string) error) error {
	var cursor uint64
	match := r.key("*")

	for {
		keys, next, err := r.client.Scan(ctx, cursor, match, redisScanCount).Result()
		if err != nil {
			return fmt.Errorf("scanning seen keys: %w", err)
		}
		if len(keys) > 0 {
			if err := fn(keys); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
