package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subplane/subplane-api/internal/domain"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid user", func(t *testing.T) {
		t.Parallel()

		user, err := domain.NewUser("Jane Doe", "jane@example.com", "+15550100", "password123")
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.NotEqual(t, "", user.ID.String())
		assert.Equal(t, "Jane Doe", user.Name)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.Equal(t, "+15550100", user.Mobile)
		assert.Equal(t, "password123", user.Password)
		assert.Empty(t, user.HashedPassword)
		assert.Empty(t, user.CustomerRef)
		assert.False(t, user.CreatedAt.IsZero())
		assert.False(t, user.UpdatedAt.IsZero())
	})

	t.Run("invalid users", func(t *testing.T) {
		t.Parallel()

		testCases := []struct {
			name       string
			userName   string
			email      string
			mobile     string
			password   string
			wantFields []string
		}{
			{
				name:       "empty name",
				userName:   "",
				email:      "jane@example.com",
				mobile:     "+15550100",
				password:   "password123",
				wantFields: []string{"name"},
			},
			{
				name:       "whitespace name",
				userName:   "   ",
				email:      "jane@example.com",
				mobile:     "+15550100",
				password:   "password123",
				wantFields: []string{"name"},
			},
			{
				name:       "empty email",
				userName:   "Jane Doe",
				email:      "",
				mobile:     "+15550100",
				password:   "password123",
				wantFields: []string{"email"},
			},
			{
				name:       "malformed email",
				userName:   "Jane Doe",
				email:      "not-an-email",
				mobile:     "+15550100",
				password:   "password123",
				wantFields: []string{"email"},
			},
			{
				name:       "email without domain dot",
				userName:   "Jane Doe",
				email:      "jane@example",
				mobile:     "+15550100",
				password:   "password123",
				wantFields: []string{"email"},
			},
			{
				name:       "empty mobile",
				userName:   "Jane Doe",
				email:      "jane@example.com",
				mobile:     "",
				password:   "password123",
				wantFields: []string{"mobile"},
			},
			{
				name:       "password too short",
				userName:   "Jane Doe",
				email:      "jane@example.com",
				mobile:     "+15550100",
				password:   "12345",
				wantFields: []string{"password"},
			},
			{
				name:       "empty password",
				userName:   "Jane Doe",
				email:      "jane@example.com",
				mobile:     "+15550100",
				password:   "",
				wantFields: []string{"password"},
			},
			{
				name:       "everything missing",
				userName:   "",
				email:      "",
				mobile:     "",
				password:   "",
				wantFields: []string{"name", "email", "mobile", "password"},
			},
			{
				name:       "bad email and short password together",
				userName:   "Jane Doe",
				email:      "nope",
				mobile:     "+15550100",
				password:   "123",
				wantFields: []string{"email", "password"},
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()

				user, err := domain.NewUser(tc.userName, tc.email, tc.mobile, tc.password)
				require.Error(t, err)
				assert.Nil(t, user)
				assert.True(t, errors.Is(err, domain.ErrValidation))

				var validationErr *domain.ValidationError
				require.True(t, errors.As(err, &validationErr))

				gotFields := make([]string, 0, len(validationErr.Fields))
				for _, fe := range validationErr.Fields {
					gotFields = append(gotFields, fe.Field)
				}
				assert.ElementsMatch(t, tc.wantFields, gotFields,
					"every failing field must be reported")
			})
		}
	})

	t.Run("password at length bounds", func(t *testing.T) {
		t.Parallel()

		// Exactly 6 characters is valid.
		_, err := domain.NewUser("Jane Doe", "jane@example.com", "+15550100", "123456")
		assert.NoError(t, err)

		// Exactly 72 characters is valid.
		longest := make([]byte, 72)
		for i := range longest {
			longest[i] = 'a'
		}
		_, err = domain.NewUser("Jane Doe", "jane@example.com", "+15550100", string(longest))
		assert.NoError(t, err)

		// 73 characters exceeds bcrypt's input limit.
		_, err = domain.NewUser("Jane Doe", "jane@example.com", "+15550100", string(longest)+"a")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at most 72")
	})
}

func TestUserValidateStoredUser(t *testing.T) {
	t.Parallel()

	// Users loaded from the store carry only the hash; that must validate.
	user, err := domain.NewUser("Jane Doe", "jane@example.com", "+15550100", "password123")
	require.NoError(t, err)

	user.HashedPassword = "$2a$10$abcdefghijklmnopqrstuv"
	user.Password = ""

	assert.NoError(t, user.Validate())
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: []domain.FieldError{
		{Field: "email", Message: "invalid email format"},
		{Field: "password", Message: "password must be at least 6 characters long"},
	}}

	msg := err.Error()
	assert.Contains(t, msg, "email")
	assert.Contains(t, msg, "password")
}
