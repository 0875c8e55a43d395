package razorpay

import (
	"fmt"
	"strings"
	"time"

	"github.com/subplane/subplane-api/internal/domain"
	"github.com/subplane/subplane-api/internal/payment"
)

// subscriptionRequest builds the creation payload for a subscription: the
// configured plan and cycle count, the caller's customer reference, and a
// start time offset into the future so the request settles before the first
// charge attempt.
func subscriptionRequest(cfg Config, customerRef string, now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"plan_id":     cfg.PlanID,
		"customer_id": customerRef,
		"total_count": cfg.TotalCount,
		"start_at":    now.Add(cfg.StartDelay).Unix(),
	}
}

// mapSubscription converts a raw Razorpay subscription payload into the
// domain representation. Unknown or missing fields are left zero-valued;
// the provider owns the resource, so nothing here is validated locally.
func mapSubscription(body map[string]interface{}) *domain.Subscription {
	return &domain.Subscription{
		ID:          stringField(body, "id"),
		PlanID:      stringField(body, "plan_id"),
		CustomerRef: stringField(body, "customer_id"),
		Status:      stringField(body, "status"),
		TotalCount:  intField(body, "total_count"),
		PaidCount:   intField(body, "paid_count"),
		StartAt:     timeField(body, "start_at"),
		ShortURL:    stringField(body, "short_url"),
		CreatedAt:   timeField(body, "created_at"),
	}
}

// classifyError translates an SDK error into the payment error taxonomy.
// The SDK surfaces API failures as plain errors carrying the provider's
// diagnostic description, so not-found detection keys off the description
// Razorpay uses for unknown resource IDs. The original error is wrapped for
// operator-facing logs; clients only ever see the mapped sentinel.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "does not exist"), strings.Contains(msg, "not found"):
		return fmt.Errorf("%w: %v", payment.ErrSubscriptionNotFound, err)
	default:
		return fmt.Errorf("%w: %v", payment.ErrProviderFailure, err)
	}
}

// stringField reads a string value from the payload, returning "" when the
// field is absent or not a string.
func stringField(body map[string]interface{}, key string) string {
	if v, ok := body[key].(string); ok {
		return v
	}
	return ""
}

// intField reads a numeric value from the payload. JSON decoding yields
// float64 for all numbers, but the SDK may also hand through native ints.
func intField(body map[string]interface{}, key string) int {
	switch v := body[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	default:
		return 0
	}
}

// timeField reads a Unix timestamp field from the payload. Absent or zero
// values map to the zero time.
func timeField(body map[string]interface{}, key string) time.Time {
	sec := int64(intField(body, key))
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}
