// Package razorpay implements the payment provider interfaces against the
// Razorpay API using the official Go SDK.
package razorpay

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/subplane/subplane-api/internal/domain"
	"github.com/subplane/subplane-api/internal/payment"
)

// Config holds the provider settings the client needs at construction time.
type Config struct {
	// KeyID and KeySecret authenticate API requests.
	KeyID     string
	KeySecret string

	// PlanID is the externally configured plan every subscription is
	// created against.
	PlanID string

	// TotalCount is the number of billing cycles for new subscriptions.
	TotalCount int

	// StartDelay offsets a new subscription's start time into the future so
	// the request settles before the first charge attempt.
	StartDelay time.Duration

	// RequestTimeout bounds each provider call. Zero means the caller's
	// context deadline (if any) is the only bound.
	RequestTimeout time.Duration
}

// Client talks to Razorpay. It is safe for concurrent use.
type Client struct {
	api    *razorpay.Client
	cfg    Config
	logger *slog.Logger

	// timeFunc is injectable for testing subscription start times.
	timeFunc func() time.Time
}

// Ensure Client implements the payment provider interfaces
var (
	_ payment.CustomerProvisioner  = (*Client)(nil)
	_ payment.SubscriptionProvider = (*Client)(nil)
)

// NewClient creates a Razorpay-backed provider client.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.KeyID == "" || cfg.KeySecret == "" {
		return nil, fmt.Errorf("razorpay key id and secret are required")
	}
	if cfg.PlanID == "" {
		return nil, fmt.Errorf("razorpay plan id is required")
	}
	if cfg.TotalCount <= 0 {
		return nil, fmt.Errorf("razorpay total count must be positive, got %d", cfg.TotalCount)
	}

	return &Client{
		api:      razorpay.NewClient(cfg.KeyID, cfg.KeySecret),
		cfg:      cfg,
		logger:   logger.With("component", "razorpay_client"),
		timeFunc: time.Now,
	}, nil
}

// CreateCustomer implements payment.CustomerProvisioner.
// A timed-out call is reported identically to a rejected one: the signup
// flow must not persist a local record either way.
func (c *Client) CreateCustomer(ctx context.Context, name, email, contact string) (string, error) {
	data := map[string]interface{}{
		"name":    name,
		"email":   email,
		"contact": contact,
	}

	body, err := c.call(ctx, func() (map[string]interface{}, error) {
		return c.api.Customer.Create(data, nil)
	})
	if err != nil {
		c.logger.Error("customer provisioning failed",
			"error", err,
			"email", email)
		return "", fmt.Errorf("%w: %v", payment.ErrProvisioningFailed, err)
	}

	ref, ok := body["id"].(string)
	if !ok || ref == "" {
		c.logger.Error("provider returned customer payload without id")
		return "", fmt.Errorf("%w: response missing customer id", payment.ErrProvisioningFailed)
	}

	c.logger.Debug("provider customer created", "customer_ref", ref)
	return ref, nil
}

// CreateSubscription implements payment.SubscriptionProvider.
func (c *Client) CreateSubscription(ctx context.Context, customerRef string) (*domain.Subscription, error) {
	data := subscriptionRequest(c.cfg, customerRef, c.timeFunc())

	body, err := c.call(ctx, func() (map[string]interface{}, error) {
		return c.api.Subscription.Create(data, nil)
	})
	if err != nil {
		c.logger.Error("subscription creation failed",
			"error", err,
			"customer_ref", customerRef,
			"plan_id", c.cfg.PlanID)
		return nil, classifyError(err)
	}

	return mapSubscription(body), nil
}

// FetchSubscription implements payment.SubscriptionProvider.
func (c *Client) FetchSubscription(ctx context.Context, subscriptionID string) (*domain.Subscription, error) {
	body, err := c.call(ctx, func() (map[string]interface{}, error) {
		return c.api.Subscription.Fetch(subscriptionID, nil, nil)
	})
	if err != nil {
		c.logger.Debug("subscription fetch failed",
			"error", err,
			"subscription_id", subscriptionID)
		return nil, classifyError(err)
	}

	return mapSubscription(body), nil
}

// CancelSubscription implements payment.SubscriptionProvider.
func (c *Client) CancelSubscription(ctx context.Context, subscriptionID string) (*domain.Subscription, error) {
	body, err := c.call(ctx, func() (map[string]interface{}, error) {
		return c.api.Subscription.Cancel(subscriptionID, nil, nil)
	})
	if err != nil {
		c.logger.Error("subscription cancellation failed",
			"error", err,
			"subscription_id", subscriptionID)
		return nil, classifyError(err)
	}

	c.logger.Info("subscription cancelled", "subscription_id", subscriptionID)
	return mapSubscription(body), nil
}

// call runs a provider operation bounded by the context and the configured
// request timeout. The SDK has no context support, so the call runs in its
// own goroutine and the wait is abandoned when the context expires; the
// abandoned goroutine finishes the SDK's HTTP exchange and exits.
func (c *Client) call(
	ctx context.Context,
	op func() (map[string]interface{}, error),
) (map[string]interface{}, error) {
	if c.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.RequestTimeout)
		defer cancel()
	}

	type result struct {
		body map[string]interface{}
		err  error
	}

	ch := make(chan result, 1)
	go func() {
		body, err := op()
		ch <- result{body: body, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.body, res.err
	}
}
