package service

import (
	"context"
	"log/slog"

	"github.com/subplane/subplane-api/internal/domain"
	"github.com/subplane/subplane-api/internal/payment"
)

// SubscriptionService exposes subscription lifecycle operations. All three
// are passthroughs: the provider owns the subscription state machine and
// this service only observes it, never drives it. No results are persisted
// locally.
type SubscriptionService interface {
	// CreateSubscription creates a subscription for a previously
	// provisioned customer reference. The reference is not validated
	// locally; the provider rejects unknown customers.
	CreateSubscription(ctx context.Context, customerRef string) (*domain.Subscription, error)

	// GetSubscription retrieves a subscription by its provider-assigned ID.
	GetSubscription(ctx context.Context, subscriptionID string) (*domain.Subscription, error)

	// CancelSubscription cancels a subscription by its provider-assigned ID.
	CancelSubscription(ctx context.Context, subscriptionID string) (*domain.Subscription, error)
}

// SubscriptionServiceImpl implements the SubscriptionService interface.
type SubscriptionServiceImpl struct {
	provider payment.SubscriptionProvider
	logger   *slog.Logger
}

// NewSubscriptionService creates a new SubscriptionService backed by the
// given provider.
func NewSubscriptionService(provider payment.SubscriptionProvider, logger *slog.Logger) *SubscriptionServiceImpl {
	return &SubscriptionServiceImpl{
		provider: provider,
		logger:   logger.With("component", "subscription_service"),
	}
}

// Ensure SubscriptionServiceImpl implements SubscriptionService
var _ SubscriptionService = (*SubscriptionServiceImpl)(nil)

// CreateSubscription implements SubscriptionService.CreateSubscription.
func (s *SubscriptionServiceImpl) CreateSubscription(
	ctx context.Context,
	customerRef string,
) (*domain.Subscription, error) {
	sub, err := s.provider.CreateSubscription(ctx, customerRef)
	if err != nil {
		s.logger.Error("subscription creation failed",
			"error", err,
			"customer_ref", customerRef)
		return nil, err
	}

	s.logger.Info("subscription created",
		"subscription_id", sub.ID,
		"customer_ref", customerRef,
		"plan_id", sub.PlanID,
		"start_at", sub.StartAt)

	return sub, nil
}

// GetSubscription implements SubscriptionService.GetSubscription.
func (s *SubscriptionServiceImpl) GetSubscription(
	ctx context.Context,
	subscriptionID string,
) (*domain.Subscription, error) {
	sub, err := s.provider.FetchSubscription(ctx, subscriptionID)
	if err != nil {
		s.logger.Debug("subscription fetch failed",
			"error", err,
			"subscription_id", subscriptionID)
		return nil, err
	}

	return sub, nil
}

// CancelSubscription implements SubscriptionService.CancelSubscription.
func (s *SubscriptionServiceImpl) CancelSubscription(
	ctx context.Context,
	subscriptionID string,
) (*domain.Subscription, error) {
	sub, err := s.provider.CancelSubscription(ctx, subscriptionID)
	if err != nil {
		s.logger.Error("subscription cancellation failed",
			"error", err,
			"subscription_id", subscriptionID)
		return nil, err
	}

	s.logger.Info("subscription cancelled",
		"subscription_id", sub.ID,
		"status", sub.Status)

	return sub, nil
}
