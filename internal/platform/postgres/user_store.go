package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/subplane/subplane-api/internal/domain"
	"github.com/subplane/subplane-api/internal/store"
)

// UserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type UserStore struct {
	db store.DBTX
}

// NewUserStore creates a new PostgreSQL implementation of the UserStore
// interface. It accepts a database connection that should be initialized
// and managed by the caller.
func NewUserStore(db store.DBTX) *UserStore {
	return &UserStore{db: db}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create
// The unique indexes on email and mobile_number are the authoritative
// uniqueness guarantee; a concurrent insert that slipped past the service's
// existence check surfaces here as ErrEmailExists/ErrMobileExists.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if user.HashedPassword == "" {
		return store.NewStoreError("user", "create", "refusing to persist user without hashed password", nil)
	}

	query := `
		INSERT INTO users (id, name, email, mobile_number, hashed_password, customer_ref, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Mobile,
		user.HashedPassword,
		nullableString(user.CustomerRef),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			switch constraint := ConstraintName(err); {
			case strings.Contains(constraint, "email"):
				return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
			case strings.Contains(constraint, "mobile"):
				return fmt.Errorf("%w: %v", store.ErrMobileExists, err)
			default:
				return fmt.Errorf("%w: %v", store.ErrUserExists, err)
			}
		}
		return store.NewStoreError("user", "create", "insert failed", MapError(err))
	}

	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := userSelectColumns + ` WHERE id = $1`
	return s.scanUser(s.db.QueryRowContext(ctx, query, id))
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := userSelectColumns + ` WHERE email = $1`
	return s.scanUser(s.db.QueryRowContext(ctx, query, email))
}

// GetByEmailOrMobile implements store.UserStore.GetByEmailOrMobile
func (s *UserStore) GetByEmailOrMobile(ctx context.Context, email, mobile string) (*domain.User, error) {
	query := userSelectColumns + ` WHERE email = $1 OR mobile_number = $2 LIMIT 1`
	return s.scanUser(s.db.QueryRowContext(ctx, query, email, mobile))
}

const userSelectColumns = `
	SELECT id, name, email, mobile_number, hashed_password, customer_ref, created_at, updated_at
	FROM users`

// scanUser maps a single user row into a domain.User, translating
// sql.ErrNoRows into store.ErrUserNotFound.
func (s *UserStore) scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	var customerRef sql.NullString

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Mobile,
		&user.HashedPassword,
		&customerRef,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, store.ErrUserNotFound
		}
		return nil, store.NewStoreError("user", "get", "scan failed", err)
	}

	if customerRef.Valid {
		user.CustomerRef = customerRef.String
	}

	return &user, nil
}

// nullableString converts an empty string to a SQL NULL so the
// customer_ref column stays NULL until provisioning succeeds.
func nullableString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
