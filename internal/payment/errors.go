package payment

import "errors"

// Common payment provider errors.
var (
	// ErrProvisioningFailed indicates the provider rejected or timed out a
	// customer creation request. The signup flow treats this as fatal for
	// the request: no local record is persisted.
	ErrProvisioningFailed = errors.New("customer provisioning failed")

	// ErrProviderFailure indicates the provider rejected or failed a
	// subscription operation. The upstream diagnostic is wrapped for
	// operator visibility but must never reach clients verbatim.
	ErrProviderFailure = errors.New("payment provider request failed")

	// ErrSubscriptionNotFound indicates the provider does not know the
	// given subscription ID.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)
