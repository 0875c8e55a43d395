package domain

import "time"

// Subscription represents a billing subscription owned by the external
// payment provider. The provider is the system of record: the application
// never persists subscriptions locally and every read is a live fetch.
type Subscription struct {
	ID          string    `json:"id"`
	PlanID      string    `json:"plan_id"`
	CustomerRef string    `json:"customer_ref"`
	Status      string    `json:"status"`
	TotalCount  int       `json:"total_count"`
	PaidCount   int       `json:"paid_count"`
	StartAt     time.Time `json:"start_at"`
	ShortURL    string    `json:"short_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
