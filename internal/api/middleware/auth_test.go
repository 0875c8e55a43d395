package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subplane/subplane-api/internal/api"
	"github.com/subplane/subplane-api/internal/api/middleware"
	"github.com/subplane/subplane-api/internal/service/auth"
)

const testSecret = "test-jwt-secret-thirty-two-chars-long!!"

func protectedHandler(t *testing.T, gotUserID *uuid.UUID) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserID(r)
		require.True(t, ok, "authenticated requests must carry a user ID")
		*gotUserID = userID
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	jwtService, err := auth.NewJWTService(testSecret, time.Hour)
	require.NoError(t, err)
	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	t.Run("valid token passes through with user ID", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		token, err := jwtService.GenerateToken(context.Background(), userID, "jane@example.com")
		require.NoError(t, err)

		var gotUserID uuid.UUID
		req := httptest.NewRequest(http.MethodGet, "/api/subscriptions/sub_1", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		authMiddleware.Authenticate(protectedHandler(t, &gotUserID)).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userID, gotUserID)
	})

	t.Run("rejected requests", func(t *testing.T) {
		t.Parallel()

		expiredService := auth.NewTestJWTService(testSecret, time.Hour, func() time.Time {
			return time.Now().Add(-2 * time.Hour)
		})
		expiredToken, err := expiredService.GenerateToken(context.Background(), uuid.New(), "jane@example.com")
		require.NoError(t, err)

		testCases := []struct {
			name   string
			header string
		}{
			{name: "missing header", header: ""},
			{name: "not a bearer token", header: "Basic dXNlcjpwYXNz"},
			{name: "malformed token", header: "Bearer not.a.token"},
			{name: "expired token", header: "Bearer " + expiredToken},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()

				req := httptest.NewRequest(http.MethodGet, "/api/subscriptions/sub_1", nil)
				if tc.header != "" {
					req.Header.Set("Authorization", tc.header)
				}
				w := httptest.NewRecorder()

				called := false
				next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
					called = true
				})
				authMiddleware.Authenticate(next).ServeHTTP(w, req)

				assert.Equal(t, http.StatusUnauthorized, w.Code)
				assert.False(t, called, "rejected requests must not reach the handler")

				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, api.KindAuthentication, resp["kind"])
			})
		}
	})
}
