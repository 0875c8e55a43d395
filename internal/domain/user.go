package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyMobile         = errors.New("mobile number cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered user of the application.
// CustomerRef holds the payment provider's customer identifier obtained
// during signup provisioning. It is set at most once and never changed.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Mobile         string    `json:"mobile"`
	Password       string    `json:"-"` // Plaintext password, used temporarily during registration
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	CustomerRef    string    `json:"customer_ref,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given identity fields.
// It generates a new UUID for the user ID and sets the creation/update timestamps.
// Returns a ValidationError listing every failing field if validation fails.
//
// NOTE: This function only sets up the user structure with the plaintext password.
// The caller is responsible for hashing the password before storing the user.
func NewUser(name, email, mobile, password string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Mobile:    mobile,
		Password:  password, // Plaintext password - must be hashed before storage
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// All failing fields are collected into a single ValidationError so callers
// can report every problem at once rather than just the first.
func (u *User) Validate() error {
	var fields []FieldError

	if u.ID == uuid.Nil {
		fields = append(fields, FieldError{Field: "id", Message: ErrEmptyUserID.Error()})
	}

	if strings.TrimSpace(u.Name) == "" {
		fields = append(fields, FieldError{Field: "name", Message: ErrEmptyName.Error()})
	}

	if u.Email == "" {
		fields = append(fields, FieldError{Field: "email", Message: ErrEmptyEmail.Error()})
	} else if !validateEmailFormat(u.Email) {
		fields = append(fields, FieldError{Field: "email", Message: ErrInvalidEmail.Error()})
	}

	if strings.TrimSpace(u.Mobile) == "" {
		fields = append(fields, FieldError{Field: "mobile", Message: ErrEmptyMobile.Error()})
	}

	// During user creation we validate the provided plaintext password.
	// Existing users loaded from the store carry only the hash.
	if u.Password != "" {
		if len(u.Password) < minPasswordLength {
			fields = append(fields, FieldError{Field: "password", Message: ErrPasswordTooShort.Error()})
		} else if len(u.Password) > maxPasswordLength {
			fields = append(fields, FieldError{Field: "password", Message: ErrPasswordTooLong.Error()})
		}
	} else if u.HashedPassword == "" {
		fields = append(fields, FieldError{Field: "password", Message: ErrEmptyPassword.Error()})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	return nil
}

// Password length bounds. The minimum matches the signup contract; the
// maximum is bcrypt's practical input limit.
const (
	minPasswordLength = 6
	maxPasswordLength = 72
)

// validateEmailFormat performs basic validation of email format.
// Returns true if the email appears to be in a valid format.
// Request-level validation uses go-playground/validator's email rule;
// this is the domain-level backstop for users constructed in code.
func validateEmailFormat(email string) bool {
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domainPart := email[atIndex+1:]
	if len(domainPart) < 3 { // minimum would be "a.b"
		return false
	}

	dotIndex := strings.IndexByte(domainPart, '.')
	if dotIndex <= 0 || dotIndex == len(domainPart)-1 {
		return false
	}

	return true
}
