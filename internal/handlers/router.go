package handlers

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/gan-2/real-estate-api/internal/handlers/middleware"
	"github.com/gan-2/real-estate-api/internal/logger"
	"github.com/gan-2/real-estate-api/internal/models"
)

// chain applies middlewares in the given order: m1(m2(...(h)))
func chain(h http.Handler, mds ...func(next http.Handler) http.Handler) http.Handler {
	for i := len(mds) - 1; i >= 0; i-- {
		h = mds[i](h)
	}
	return h
}

func NewRouter(
	authService authService,
	propertyService propertyService,
	logger logger.Logger,
) http.Handler {
	authMiddleware := middleware.AuthMiddleware(authService)
	withAuth := func(h http.Handler) http.Handler {
		return authMiddleware(h)
	}

	mux := http.NewServeMux()

	mux.Handle("GET /{$}", handleHome())
	mux.Handle("POST /register", handleRegister(authService, logger))
	mux.Handle("POST /login", handleLogin(authService, logger))

	mux.Handle("GET /properties", handleListProperties(propertyService, logger))
	mux.Handle("POST /properties", withAuth(handleCreateProperty(propertyService, logger)))

	handler := chain(mux,
		middleware.LoggerMiddleware(logger),
	)

	return handler
}

type authService interface {
	// Register user with username and password
	// Has to return apperrors.ErrUserAlreadyExists if username is taken
	Register(ctx context.Context, username string, password string) (models.User, error)

	// Login user with username and password
	// Has to return apperrors.ErrUserNotFound if user not found
	// Has to return apperrors.ErrInvalidPassword if password doesn't match
	Login(ctx context.Context, username string, password string) (models.User, models.IssuedToken, error)

	// Get request and return user if it authenticated or error
	UserFromRequest(ctx context.Context, r *http.Request) (models.User, error)
}

type propertyService interface {
	List(ctx context.Context) ([]models.Property, error)
	Create(ctx context.Context, title string, price decimal.Decimal) (models.Property, error)
}
