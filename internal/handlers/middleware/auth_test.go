package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gan-2/real-estate-api/internal/apperrors"
	"github.com/gan-2/real-estate-api/internal/handlers/userctx"
	"github.com/gan-2/real-estate-api/internal/models"
)

// Allow to use a function as auth service
type authFunc func(ctx context.Context, r *http.Request) (models.User, error)

func (f authFunc) UserFromRequest(ctx context.Context, r *http.Request) (models.User, error) {
	return f(ctx, r)
}

func TestAuthMiddleware(t *testing.T) {
	// Simple handler that writes the context user's name to the response
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Must always be true cause middleware has to set user or reject the request
		user, ok := userctx.FromContext(r.Context())
		require.True(t, ok)

		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(user.Username))
		require.NoError(t, err, "should write username to response")
	})

	serve := func(t *testing.T, as authFunc) *http.Response {
		t.Helper()

		middleware := AuthMiddleware(as)
		srv := httptest.NewServer(middleware(handler))
		t.Cleanup(srv.Close)

		resp, err := http.Get(srv.URL + "/test")
		require.NoError(t, err, "should make request to test server")
		return resp
	}

	t.Run("auth ok", func(t *testing.T) {
		resp := serve(t, func(ctx context.Context, r *http.Request) (models.User, error) {
			return models.User{Username: "test-user"}, nil
		})

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err, "should read response body")
		defer resp.Body.Close() // nolint:errcheck

		require.Equalf(t, http.StatusOK, resp.StatusCode, "should return status OK. Resp: %s", string(body))
		require.Equal(t, "test-user", string(body), "should return username in response")
	})

	t.Run("no token", func(t *testing.T) {
		resp := serve(t, func(ctx context.Context, r *http.Request) (models.User, error) {
			return models.User{}, apperrors.ErrNoToken
		})

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err, "should read response body")
		defer resp.Body.Close() // nolint:errcheck

		require.Equalf(t, http.StatusUnauthorized, resp.StatusCode, "missing token is 401. Resp: %s", string(body))
		require.JSONEq(t,
			`{
				"error": "service_error",
				"message": "No token provided"
			}`,
			string(body),
		)
	})

	t.Run("invalid token", func(t *testing.T) {
		resp := serve(t, func(ctx context.Context, r *http.Request) (models.User, error) {
			return models.User{}, apperrors.ErrTokenInvalid
		})

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err, "should read response body")
		defer resp.Body.Close() // nolint:errcheck

		require.Equalf(t, http.StatusForbidden, resp.StatusCode, "invalid token is 403. Resp: %s", string(body))
		require.JSONEq(t,
			`{
				"error": "service_error",
				"message": "Invalid token"
			}`,
			string(body),
		)
	})
}
