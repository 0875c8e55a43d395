package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/subplane/subplane-api/internal/api/shared"
	"github.com/subplane/subplane-api/internal/service"
)

// SubscriptionHandler handles subscription lifecycle API requests.
type SubscriptionHandler struct {
	subscriptionService service.SubscriptionService
	validator           *validator.Validate
}

// NewSubscriptionHandler creates a new SubscriptionHandler with the given dependencies.
func NewSubscriptionHandler(subscriptionService service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
		validator:           validator.New(),
	}
}

// Create handles POST /subscriptions.
func (h *SubscriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSubscriptionRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, KindValidation, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithValidationError(w, r, err)
		return
	}

	sub, err := h.subscriptionService.CreateSubscription(r.Context(), req.CustomerRef)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, sub)
}

// Get handles GET /subscriptions/{id}.
func (h *SubscriptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	subscriptionID := chi.URLParam(r, "id")
	if subscriptionID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, KindValidation, "Subscription ID is required")
		return
	}

	sub, err := h.subscriptionService.GetSubscription(r.Context(), subscriptionID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sub)
}

// Cancel handles POST /subscriptions/{id}/cancel.
func (h *SubscriptionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	subscriptionID := chi.URLParam(r, "id")
	if subscriptionID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, KindValidation, "Subscription ID is required")
		return
	}

	sub, err := h.subscriptionService.CancelSubscription(r.Context(), subscriptionID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sub)
}
