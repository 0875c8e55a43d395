package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/subplane/subplane-api/internal/domain"
	"github.com/subplane/subplane-api/internal/payment"
	"github.com/subplane/subplane-api/internal/service/auth"
	"github.com/subplane/subplane-api/internal/store"
)

// IdentityService orchestrates user signup and login.
type IdentityService interface {
	// SignUp registers a new user: validate, check uniqueness, hash the
	// password, provision a provider customer, then persist. The returned
	// user carries the provisioned customer reference.
	//
	// Error contract: domain.ValidationError for malformed input,
	// store.ErrUserExists when the email or mobile is taken,
	// payment.ErrProvisioningFailed when the provider call fails (no local
	// record is created), ErrStorageFailure when persistence fails after
	// provisioning succeeded.
	SignUp(ctx context.Context, name, email, mobile, password string) (*domain.User, error)

	// LogIn authenticates a user by email and password and issues a session
	// token. Unknown email and wrong password both return
	// ErrInvalidCredentials.
	LogIn(ctx context.Context, email, password string) (*domain.User, string, error)
}

// IdentityServiceImpl implements the IdentityService interface.
type IdentityServiceImpl struct {
	userStore   store.UserStore
	provisioner payment.CustomerProvisioner
	hasher      auth.PasswordHasher
	verifier    auth.PasswordVerifier
	jwtService  auth.JWTService
	logger      *slog.Logger
}

// NewIdentityService creates a new IdentityService with explicitly injected
// collaborators.
func NewIdentityService(
	userStore store.UserStore,
	provisioner payment.CustomerProvisioner,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	jwtService auth.JWTService,
	logger *slog.Logger,
) *IdentityServiceImpl {
	return &IdentityServiceImpl{
		userStore:   userStore,
		provisioner: provisioner,
		hasher:      hasher,
		verifier:    verifier,
		jwtService:  jwtService,
		logger:      logger.With("component", "identity_service"),
	}
}

// Ensure IdentityServiceImpl implements IdentityService
var _ IdentityService = (*IdentityServiceImpl)(nil)

// SignUp implements IdentityService.SignUp.
//
// Ordering is deliberate: the provider customer is created before the local
// insert, so a failure can only ever leave an orphaned provider-side
// customer (reconcilable out of band), never a local account with no
// external counterpart. The store's unique constraints backstop the
// existence check against concurrent signups for the same email or mobile.
func (s *IdentityServiceImpl) SignUp(
	ctx context.Context,
	name, email, mobile, password string,
) (*domain.User, error) {
	user, err := domain.NewUser(name, email, mobile, password)
	if err != nil {
		s.logger.Debug("signup rejected by validation",
			"error", err,
			"email", email)
		return nil, err
	}

	_, err = s.userStore.GetByEmailOrMobile(ctx, email, mobile)
	if err == nil {
		s.logger.Debug("signup rejected: user already exists", "email", email)
		return nil, fmt.Errorf("%w: email or mobile number already registered", store.ErrUserExists)
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		s.logger.Error("uniqueness check failed", "error", err, "email", email)
		return nil, fmt.Errorf("%w: uniqueness check: %v", ErrStorageFailure, err)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("password hashing failed", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = "" // plaintext must not outlive hashing

	customerRef, err := s.provisioner.CreateCustomer(ctx, name, email, mobile)
	if err != nil {
		s.logger.Error("customer provisioning failed, aborting signup",
			"error", err,
			"email", email)
		return nil, err
	}
	user.CustomerRef = customerRef

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			// Lost the race against a concurrent signup; the provider-side
			// customer created above is now orphaned.
			s.logger.Warn("concurrent signup conflict after provisioning",
				"email", email,
				"orphaned_customer_ref", customerRef)
			return nil, err
		}
		s.logger.Error("failed to persist user after provisioning; provider customer orphaned",
			"error", err,
			"email", email,
			"orphaned_customer_ref", customerRef)
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("user registered",
		"user_id", user.ID,
		"customer_ref", customerRef)

	return user, nil
}

// LogIn implements IdentityService.LogIn.
func (s *IdentityServiceImpl) LogIn(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Identical failure to a wrong password; see ErrInvalidCredentials.
			s.logger.Debug("login failed: unknown email")
			return nil, "", ErrInvalidCredentials
		}
		s.logger.Error("login lookup failed", "error", err)
		return nil, "", fmt.Errorf("%w: login lookup: %v", ErrStorageFailure, err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("login failed: password mismatch", "user_id", user.ID)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		s.logger.Error("token issuance failed", "error", err, "user_id", user.ID)
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return user, token, nil
}
