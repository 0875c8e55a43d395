package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/subplane/subplane-api/internal/api/shared"
	"github.com/subplane/subplane-api/internal/domain"
	"github.com/subplane/subplane-api/internal/payment"
	"github.com/subplane/subplane-api/internal/service"
	"github.com/subplane/subplane-api/internal/service/auth"
	"github.com/subplane/subplane-api/internal/store"
)

// Stable error-kind tags clients can branch on. These are part of the API
// contract; messages are not.
const (
	KindValidation     = "validation"
	KindConflict       = "conflict"
	KindAuthentication = "authentication"
	KindProvisioning   = "provisioning"
	KindProvider       = "provider"
	KindNotFound       = "not_found"
	KindStorage        = "storage"
	KindInternal       = "internal"
)

// MapError translates a service-layer error into an HTTP status, a stable
// kind tag, and a sanitized client-facing message. Raw upstream diagnostics
// never appear in the result; callers log them server-side instead.
func MapError(err error) (status int, kind, message string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, KindValidation, "Validation failed"

	case errors.Is(err, store.ErrUserExists):
		return http.StatusBadRequest, KindConflict, "User already exists"

	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusBadRequest, KindAuthentication, "Invalid email or password"

	case errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized, KindAuthentication, "Invalid or expired token"

	case errors.Is(err, payment.ErrSubscriptionNotFound):
		return http.StatusNotFound, KindNotFound, "Subscription not found"

	case errors.Is(err, payment.ErrProvisioningFailed):
		return http.StatusInternalServerError, KindProvisioning, "Failed to provision payment profile"

	case errors.Is(err, payment.ErrProviderFailure):
		return http.StatusInternalServerError, KindProvider, "Payment provider request failed"

	case errors.Is(err, service.ErrStorageFailure):
		return http.StatusInternalServerError, KindStorage, "Internal storage error"

	default:
		return http.StatusInternalServerError, KindInternal, "An unexpected error occurred"
	}
}

// HandleServiceError maps the error and writes the standard error envelope,
// logging the underlying diagnostic server-side.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, kind, message := MapError(err)
	shared.RespondWithErrorAndLog(w, r, status, kind, message, err)
}

// ValidationFields converts a validation failure into the per-field detail
// list included in validation error responses. Both validator.Struct errors
// and domain ValidationErrors are supported; every failing field is
// reported.
func ValidationFields(err error) []domain.FieldError {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]domain.FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, domain.FieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: validationTagMessage(fe),
			})
		}
		return fields
	}

	var domainErr *domain.ValidationError
	if errors.As(err, &domainErr) {
		return domainErr.Fields
	}

	return nil
}

// RespondWithValidationError writes a 400 validation response listing every
// failing field.
func RespondWithValidationError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithJSON(w, r, http.StatusBadRequest, shared.ErrorResponse{
		Error:   "Validation failed",
		Kind:    KindValidation,
		Fields:  ValidationFields(err),
		TraceID: shared.GetTraceID(r.Context()),
	})
}

// validationTagMessage maps validation tags to user-friendly error messages
func validationTagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "is too short"
	case "max":
		return "is too long"
	default:
		return "is invalid"
	}
}
