package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subplane/subplane-api/internal/api"
	"github.com/subplane/subplane-api/internal/domain"
	"github.com/subplane/subplane-api/internal/payment"
	"github.com/subplane/subplane-api/internal/service"
	"github.com/subplane/subplane-api/internal/store"
)

// fakeIdentityService returns canned results for handler tests.
type fakeIdentityService struct {
	signUpUser *domain.User
	signUpErr  error

	logInUser  *domain.User
	logInToken string
	logInErr   error
}

func (s *fakeIdentityService) SignUp(_ context.Context, _, _, _, _ string) (*domain.User, error) {
	return s.signUpUser, s.signUpErr
}

func (s *fakeIdentityService) LogIn(_ context.Context, _, _ string) (*domain.User, string, error) {
	return s.logInUser, s.logInToken, s.logInErr
}

func testUser() *domain.User {
	return &domain.User{
		ID:          uuid.New(),
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Mobile:      "+15550100",
		CustomerRef: "cust_123",
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAuthHandlerSignup(t *testing.T) {
	t.Parallel()

	validBody := map[string]string{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"mobile":   "+15550100",
		"password": "password123",
	}

	t.Run("success returns 201 with user and customer ref", func(t *testing.T) {
		t.Parallel()

		user := testUser()
		handler := api.NewAuthHandler(&fakeIdentityService{signUpUser: user})

		w := postJSON(t, handler.Signup, "/api/auth/signup", validBody)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp api.SignupResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, user.ID, resp.User.ID)
		assert.Equal(t, "cust_123", resp.CustomerRef)
		assert.Equal(t, "cust_123", resp.User.CustomerRef)

		// The password hash must not appear anywhere in the payload.
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("malformed JSON returns 400 validation", func(t *testing.T) {
		t.Parallel()

		handler := api.NewAuthHandler(&fakeIdentityService{})

		req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader([]byte("{not json")))
		w := httptest.NewRecorder()
		handler.Signup(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, api.KindValidation, resp["kind"])
	})

	t.Run("validation lists every failing field", func(t *testing.T) {
		t.Parallel()

		handler := api.NewAuthHandler(&fakeIdentityService{})

		w := postJSON(t, handler.Signup, "/api/auth/signup", map[string]string{
			"name":     "",
			"email":    "not-an-email",
			"mobile":   "",
			"password": "123",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		resp := decodeError(t, w)
		assert.Equal(t, api.KindValidation, resp["kind"])

		fields, ok := resp["fields"].([]any)
		require.True(t, ok, "fields must be present on validation errors")
		assert.Len(t, fields, 4)

		names := make([]string, 0, len(fields))
		for _, f := range fields {
			fieldMap, ok := f.(map[string]any)
			require.True(t, ok)
			names = append(names, fieldMap["field"].(string))
		}
		assert.ElementsMatch(t, []string{"name", "email", "mobile", "password"}, names)
	})

	t.Run("existing user returns 400 conflict", func(t *testing.T) {
		t.Parallel()

		handler := api.NewAuthHandler(&fakeIdentityService{signUpErr: store.ErrUserExists})

		w := postJSON(t, handler.Signup, "/api/auth/signup", validBody)
		require.Equal(t, http.StatusBadRequest, w.Code)

		resp := decodeError(t, w)
		assert.Equal(t, api.KindConflict, resp["kind"])
	})

	t.Run("provisioning failure returns 500 without provider detail", func(t *testing.T) {
		t.Parallel()

		provErr := payment.ErrProvisioningFailed
		handler := api.NewAuthHandler(&fakeIdentityService{signUpErr: provErr})

		w := postJSON(t, handler.Signup, "/api/auth/signup", validBody)
		require.Equal(t, http.StatusInternalServerError, w.Code)

		resp := decodeError(t, w)
		assert.Equal(t, api.KindProvisioning, resp["kind"])
	})

	t.Run("storage failure returns 500", func(t *testing.T) {
		t.Parallel()

		handler := api.NewAuthHandler(&fakeIdentityService{signUpErr: service.ErrStorageFailure})

		w := postJSON(t, handler.Signup, "/api/auth/signup", validBody)
		require.Equal(t, http.StatusInternalServerError, w.Code)

		resp := decodeError(t, w)
		assert.Equal(t, api.KindStorage, resp["kind"])
	})
}

func TestAuthHandlerLogin(t *testing.T) {
	t.Parallel()

	validBody := map[string]string{
		"email":    "jane@example.com",
		"password": "password123",
	}

	t.Run("success returns token and user", func(t *testing.T) {
		t.Parallel()

		user := testUser()
		handler := api.NewAuthHandler(&fakeIdentityService{
			logInUser:  user,
			logInToken: "signed.jwt.token",
		})

		w := postJSON(t, handler.Login, "/api/auth/login", validBody)
		require.Equal(t, http.StatusOK, w.Code)

		var resp api.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "signed.jwt.token", resp.Token)
		assert.Equal(t, user.Email, resp.User.Email)
	})

	t.Run("invalid credentials return 400 authentication", func(t *testing.T) {
		t.Parallel()

		handler := api.NewAuthHandler(&fakeIdentityService{logInErr: service.ErrInvalidCredentials})

		unknownEmail := postJSON(t, handler.Login, "/api/auth/login", map[string]string{
			"email":    "nobody@example.com",
			"password": "password123",
		})
		wrongPassword := postJSON(t, handler.Login, "/api/auth/login", map[string]string{
			"email":    "jane@example.com",
			"password": "wrong-password",
		})

		require.Equal(t, http.StatusBadRequest, unknownEmail.Code)
		require.Equal(t, http.StatusBadRequest, wrongPassword.Code)

		// Identical body shape: no account enumeration through responses.
		assert.JSONEq(t, unknownEmail.Body.String(), wrongPassword.Body.String())

		resp := decodeError(t, unknownEmail)
		assert.Equal(t, api.KindAuthentication, resp["kind"])
	})

	t.Run("missing fields return 400 validation", func(t *testing.T) {
		t.Parallel()

		handler := api.NewAuthHandler(&fakeIdentityService{})

		w := postJSON(t, handler.Login, "/api/auth/login", map[string]string{})
		require.Equal(t, http.StatusBadRequest, w.Code)

		resp := decodeError(t, w)
		assert.Equal(t, api.KindValidation, resp["kind"])
	})
}
