package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/subplane/subplane-api/internal/api/shared"
	"github.com/subplane/subplane-api/internal/service"
)

// AuthHandler handles signup and login API requests.
type AuthHandler struct {
	identityService service.IdentityService
	validator       *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(identityService service.IdentityService) *AuthHandler {
	return &AuthHandler{
		identityService: identityService,
		validator:       validator.New(),
	}
}

// Signup handles the /auth/signup endpoint.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, KindValidation, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithValidationError(w, r, err)
		return
	}

	user, err := h.identityService.SignUp(r.Context(), req.Name, req.Email, req.Mobile, req.Password)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, SignupResponse{
		User:        NewUserResponse(user),
		CustomerRef: user.CustomerRef,
	})
}

// Login handles the /auth/login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, KindValidation, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithValidationError(w, r, err)
		return
	}

	user, token, err := h.identityService.LogIn(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Token: token,
		User:  NewUserResponse(user),
	})
}
