package razorpay

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subplane/subplane-api/internal/payment"
)

func TestMapSubscription(t *testing.T) {
	t.Parallel()

	t.Run("full payload", func(t *testing.T) {
		t.Parallel()

		// JSON decoding yields float64 for every number.
		body := map[string]interface{}{
			"id":          "sub_00000000000001",
			"plan_id":     "plan_abc",
			"customer_id": "cust_123",
			"status":      "created",
			"total_count": float64(12),
			"paid_count":  float64(3),
			"start_at":    float64(1768478430),
			"short_url":   "https://rzp.io/i/abc",
			"created_at":  float64(1768478400),
		}

		sub := mapSubscription(body)
		require.NotNil(t, sub)

		assert.Equal(t, "sub_00000000000001", sub.ID)
		assert.Equal(t, "plan_abc", sub.PlanID)
		assert.Equal(t, "cust_123", sub.CustomerRef)
		assert.Equal(t, "created", sub.Status)
		assert.Equal(t, 12, sub.TotalCount)
		assert.Equal(t, 3, sub.PaidCount)
		assert.Equal(t, time.Unix(1768478430, 0).UTC(), sub.StartAt)
		assert.Equal(t, "https://rzp.io/i/abc", sub.ShortURL)
	})

	t.Run("native integer fields", func(t *testing.T) {
		t.Parallel()

		body := map[string]interface{}{
			"id":          "sub_1",
			"total_count": 12,
			"start_at":    int64(1768478430),
		}

		sub := mapSubscription(body)
		assert.Equal(t, 12, sub.TotalCount)
		assert.Equal(t, time.Unix(1768478430, 0).UTC(), sub.StartAt)
	})

	t.Run("missing fields are zero-valued", func(t *testing.T) {
		t.Parallel()

		sub := mapSubscription(map[string]interface{}{"id": "sub_1"})

		assert.Equal(t, "sub_1", sub.ID)
		assert.Empty(t, sub.Status)
		assert.Zero(t, sub.TotalCount)
		assert.True(t, sub.StartAt.IsZero())
		assert.True(t, sub.CreatedAt.IsZero())
	})

	t.Run("wrong types are ignored", func(t *testing.T) {
		t.Parallel()

		sub := mapSubscription(map[string]interface{}{
			"id":          42,
			"total_count": "twelve",
		})

		assert.Empty(t, sub.ID)
		assert.Zero(t, sub.TotalCount)
	})
}

func TestSubscriptionRequest(t *testing.T) {
	t.Parallel()

	cfg := Config{
		PlanID:     "plan_abc",
		TotalCount: 12,
		StartDelay: 30 * time.Second,
	}
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	data := subscriptionRequest(cfg, "cust_123", now)

	assert.Equal(t, "plan_abc", data["plan_id"])
	assert.Equal(t, "cust_123", data["customer_id"])
	assert.Equal(t, 12, data["total_count"])

	// The subscription must start the configured delay after the clock
	// reading, never earlier.
	startAt, ok := data["start_at"].(int64)
	require.True(t, ok)
	assert.Equal(t, now.Add(30*time.Second).Unix(), startAt)
	assert.GreaterOrEqual(t, startAt, now.Unix()+30)
}

func TestClassifyError(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		wantSent error
	}{
		{
			name:     "nil",
			err:      nil,
			wantSent: nil,
		},
		{
			name:     "unknown id",
			err:      errors.New("The id provided does not exist"),
			wantSent: payment.ErrSubscriptionNotFound,
		},
		{
			name:     "not found wording",
			err:      errors.New("subscription not found"),
			wantSent: payment.ErrSubscriptionNotFound,
		},
		{
			name:     "anything else",
			err:      errors.New("BAD_REQUEST_ERROR: plan id is invalid"),
			wantSent: payment.ErrProviderFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := classifyError(tc.err)
			if tc.wantSent == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.wantSent)
			// The upstream diagnostic stays available for operator logs.
			assert.Contains(t, got.Error(), tc.err.Error())
		})
	}
}
