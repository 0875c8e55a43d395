// Package payment defines the interfaces the application uses to talk to
// the external payment provider. The provider owns customers and
// subscriptions; this system only references them by opaque ID.
package payment

import (
	"context"

	"github.com/subplane/subplane-api/internal/domain"
)

// CustomerProvisioner creates customer resources at the payment provider.
// Provisioning is a prerequisite for persisting a local user record: the
// signup flow aborts without writing anything locally if it fails.
type CustomerProvisioner interface {
	// CreateCustomer provisions a provider customer for the given identity
	// and returns the provider-assigned customer reference.
	// The call is not idempotent at the provider boundary; callers must not
	// retry blindly. Returns an error matching ErrProvisioningFailed on
	// failure or timeout.
	CreateCustomer(ctx context.Context, name, email, contact string) (string, error)
}

// SubscriptionProvider manages subscription resources at the payment
// provider. The provider is the system of record; none of these operations
// touch local state.
type SubscriptionProvider interface {
	// CreateSubscription creates a subscription for the given customer
	// reference using the externally configured plan. Unknown customer
	// references are rejected by the provider, surfacing as
	// ErrProviderFailure.
	CreateSubscription(ctx context.Context, customerRef string) (*domain.Subscription, error)

	// FetchSubscription retrieves a subscription by its provider-assigned
	// ID. Returns ErrSubscriptionNotFound for unknown IDs.
	FetchSubscription(ctx context.Context, subscriptionID string) (*domain.Subscription, error)

	// CancelSubscription cancels a subscription by its provider-assigned
	// ID and returns the provider's view of the cancelled resource.
	// Idempotence of cancellation is entirely the provider's contract.
	CancelSubscription(ctx context.Context, subscriptionID string) (*domain.Subscription, error)
}
