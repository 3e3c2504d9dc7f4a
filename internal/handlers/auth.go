package handlers

import (
	"errors"
	"net/http"

	"github.com/gan-2/real-estate-api/internal/apperrors"
	"github.com/gan-2/real-estate-api/internal/handlers/render"
	"github.com/gan-2/real-estate-api/internal/logger"
)

func handleRegister(s authService, l logger.Logger) http.Handler {
	type request struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	type response struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		user, err := s.Register(r.Context(), data.Username, data.Password)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrUserAlreadyExists):
				render.ServiceError(w, "Username already exists", http.StatusBadRequest)
			default:
				l.Error("user registration failed", "error", err.Error())
				render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
			}
			return
		}

		// Never return the password hash
		render.JSON(w, response{ID: user.ID, Username: user.Username})
	})
}

func handleLogin(s authService, l logger.Logger) http.Handler {
	type request struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	type response struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		_, token, err := s.Login(r.Context(), data.Username, data.Password)
		if err != nil {
			// Distinct messages for unknown user and wrong password are part
			// of the observable contract, even though they leak which
			// usernames exist
			switch {
			case errors.Is(err, apperrors.ErrUserNotFound):
				render.ServiceError(w, "User not found", http.StatusBadRequest)
			case errors.Is(err, apperrors.ErrInvalidPassword):
				render.ServiceError(w, "Invalid password", http.StatusBadRequest)
			default:
				l.Error("user login failed", "error", err.Error())
				render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
			}
			return
		}

		render.JSON(w, response{Message: "Login successful", Token: token.Value})
	})
}
