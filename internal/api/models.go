package api

import (
	"github.com/google/uuid"

	"github.com/subplane/subplane-api/internal/domain"
)

// Common request/response structures

// SignupRequest defines the payload for the user signup endpoint.
// Validation rules match the signup contract: every failing field is
// reported, not just the first.
type SignupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Mobile   string `json:"mobile"   validate:"required"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// CreateSubscriptionRequest defines the payload for creating a subscription
// against a previously provisioned customer reference.
type CreateSubscriptionRequest struct {
	CustomerRef string `json:"customer_ref" validate:"required"`
}

// UserResponse is the externally visible shape of a user. The password hash
// is structurally excluded, not merely tagged away.
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Mobile      string    `json:"mobile"`
	CustomerRef string    `json:"customer_ref,omitempty"`
}

// NewUserResponse maps a domain user to its response representation.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Mobile:      user.Mobile,
		CustomerRef: user.CustomerRef,
	}
}

// SignupResponse defines the successful response for the signup endpoint.
type SignupResponse struct {
	User UserResponse `json:"user"`

	// CustomerRef is the payment provider's customer reference provisioned
	// during signup, duplicated at the top level for client convenience.
	CustomerRef string `json:"customer_ref"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	// Token is the signed session token, valid for the configured lifetime.
	Token string `json:"token"`

	User UserResponse `json:"user"`
}
