package vinted_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/deal-scanner/internal/vinted"
)

func TestRateLimiter_Wait(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rate    float64
		burst   int
		daily   int64
		calls   int
		wantErr bool
	}{
		{
			name:  "allows calls within rate",
			rate:  100,
			burst: 10,
			daily: 500,
			calls: 3,
		},
		{
			name:  "allows burst",
			rate:  100,
			burst: 5,
			daily: 500,
			calls: 5,
		},
		{
			name:  "zero daily limit is unbounded",
			rate:  1000,
			burst: 20,
			daily: 0,
			calls: 20,
		},
		{
			name:    "rejects when daily limit reached",
			rate:    100,
			burst:   10,
			daily:   2,
			calls:   3,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rl := vinted.NewRateLimiter(tt.rate, tt.burst, tt.daily)

			var lastErr error
			for range tt.calls {
				lastErr = rl.Wait(context.Background())
				if lastErr != nil {
					break
				}
			}

			if tt.wantErr {
				require.Error(t, lastErr)
				assert.ErrorIs(t, lastErr, vinted.ErrDailyLimitReached)
			} else {
				require.NoError(t, lastErr)
			}
		})
	}
}

func TestRateLimiter_DailyCountAndRemaining(t *testing.T) {
	t.Parallel()

	rl := vinted.NewRateLimiter(100, 10, 5)

	assert.Equal(t, int64(0), rl.DailyCount())
	assert.Equal(t, int64(5), rl.Remaining())

	require.NoError(t, rl.Wait(context.Background()))
	require.NoError(t, rl.Wait(context.Background()))

	assert.Equal(t, int64(2), rl.DailyCount())
	assert.Equal(t, int64(3), rl.Remaining())

	unbounded := vinted.NewRateLimiter(100, 10, 0)
	assert.Equal(t, int64(-1), unbounded.Remaining())
}

func TestRateLimiter_WindowReset(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	current := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	now := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return current
	}

	rl := vinted.NewRateLimiter(100, 10, 2, vinted.WithRateLimiterNowFunc(now))
	assert.Equal(t, current.Add(24*time.Hour), rl.ResetAt())

	require.NoError(t, rl.Wait(context.Background()))
	require.NoError(t, rl.Wait(context.Background()))
	require.ErrorIs(t, rl.Wait(context.Background()), vinted.ErrDailyLimitReached)

	mu.Lock()
	current = current.Add(25 * time.Hour)
	mu.Unlock()

	require.NoError(t, rl.Wait(context.Background()))
	assert.Equal(t, int64(1), rl.DailyCount())
}

func TestRateLimiter_ContextCanceledReleasesBudget(t *testing.T) {
	t.Parallel()

	// Burst of 1 at a very low rate: the second call must block.
	rl := vinted.NewRateLimiter(0.001, 1, 10)
	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := rl.Wait(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, vinted.ErrDailyLimitReached)
	assert.Equal(t, int64(1), rl.DailyCount())
}
