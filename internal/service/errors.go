// Package service contains the application services orchestrating the
// identity and subscription flows.
package service

import "errors"

// Common service errors
var (
	// ErrInvalidCredentials is returned by LogIn for both an unknown email
	// and a wrong password. The two cases are deliberately indistinguishable
	// to prevent account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrStorageFailure indicates local persistence failed. When it occurs
	// after provider provisioning succeeded, an orphaned provider customer
	// exists with no local record; the inconsistency is logged for
	// out-of-band reconciliation.
	ErrStorageFailure = errors.New("storage failure")
)
