package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/deal-scanner/internal/notify"
	notifyMocks "github.com/donaldgifford/deal-scanner/internal/notify/mocks"
	storeMocks "github.com/donaldgifford/deal-scanner/internal/store/mocks"
	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

func testDeal() *domain.Deal {
	return &domain.Deal{
		ListingID:       "101",
		Key:             "101",
		Title:           "Nike Air Max",
		Price:           decimal.NewFromInt(20),
		Currency:        "EUR",
		EstimatedProfit: decimal.RequireFromString("9.32"),
		SearchName:      "nike",
	}
}

func TestDispatcher_Notify(t *testing.T) {
	t.Parallel()

	errDM := errors.New("cannot send messages to this user")
	errChannel := errors.New("missing permissions")

	tests := []struct {
		name         string
		directErr    error
		fallbackErr  error
		callFallback bool
		markErr      error
		callMark     bool
		wantRoute    Route
		wantRecorded bool
		wantErr      bool
	}{
		{
			name:         "direct succeeds",
			callMark:     true,
			wantRoute:    RouteDirect,
			wantRecorded: true,
		},
		{
			name:         "direct fails, fallback succeeds",
			directErr:    errDM,
			callFallback: true,
			callMark:     true,
			wantRoute:    RouteFallback,
			wantRecorded: true,
		},
		{
			name:         "direct unsupported, fallback succeeds",
			directErr:    notify.ErrDirectUnsupported,
			callFallback: true,
			callMark:     true,
			wantRoute:    RouteFallback,
			wantRecorded: true,
		},
		{
			name:         "both routes fail",
			directErr:    errDM,
			fallbackErr:  errChannel,
			callFallback: true,
			wantErr:      true,
		},
		{
			name:      "delivered but mark fails",
			markErr:   errors.New("redis down"),
			callMark:  true,
			wantRoute: RouteDirect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sink := notifyMocks.NewMockNotifier(t)
			seen := storeMocks.NewMockSeenStore(t)
			deal := testDeal()

			sink.EXPECT().SendDirect(mock.Anything, "u1", deal).Return(tt.directErr).Once()
			if tt.callFallback {
				sink.EXPECT().SendFallback(mock.Anything, "u1", deal).Return(tt.fallbackErr).Once()
			}
			if tt.callMark {
				seen.EXPECT().MarkSeen(mock.Anything, "101").Return(tt.markErr).Once()
			}

			d := NewDispatcher(sink, seen, quietLogger())
			got, err := d.Notify(context.Background(), deal, "u1")

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrDeliveryFailed)
				assert.ErrorIs(t, err, tt.directErr)
				assert.ErrorIs(t, err, tt.fallbackErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRoute, got.Route)
			assert.Equal(t, tt.wantRecorded, got.Recorded)
		})
	}
}

func TestNewDispatcher_DefaultLogger(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(notifyMocks.NewMockNotifier(t), storeMocks.NewMockSeenStore(t), nil)
	assert.NotNil(t, d.log)
}
