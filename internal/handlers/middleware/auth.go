package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gan-2/real-estate-api/internal/apperrors"
	"github.com/gan-2/real-estate-api/internal/handlers/render"
	"github.com/gan-2/real-estate-api/internal/handlers/userctx"
	"github.com/gan-2/real-estate-api/internal/models"
)

type authService interface {
	UserFromRequest(ctx context.Context, r *http.Request) (models.User, error)
}

// AuthMiddleware gates protected routes behind a bearer token
// Missing token and invalid token are distinct failures: 401 vs 403
func AuthMiddleware(as authService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := as.UserFromRequest(r.Context(), r)

			switch {
			case err == nil:
				ctx := userctx.New(r.Context(), user)
				next.ServeHTTP(w, r.WithContext(ctx))
			case errors.Is(err, apperrors.ErrNoToken):
				render.ServiceError(w, "No token provided", http.StatusUnauthorized)
			default:
				render.ServiceError(w, "Invalid token", http.StatusForbidden)
			}
		})
	}
}
