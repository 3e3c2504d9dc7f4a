package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gan-2/real-estate-api/internal/apperrors"
	"github.com/gan-2/real-estate-api/internal/repository/postgres"
	"github.com/gan-2/real-estate-api/internal/service/auth/tokenmanager"
	"github.com/gan-2/real-estate-api/internal/testutil"
)

func Test_AuthService(t *testing.T) {
	t.Parallel()

	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	withTx := func(t *testing.T, fn func(s *AuthService, userRepo *postgres.UserRepo)) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			userRepo := &postgres.UserRepo{DB: tx}

			tokenManager, err := tokenmanager.New(tokenmanager.Config{SecretKey: "test-secret"})
			require.NoError(t, err, "token manager should be created without errors")

			s, err := NewService(tokenManager, nil, userRepo)
			require.NoError(t, err, "auth service should be created without errors")

			fn(s, userRepo)
		})
	}

	t.Run("register stores verifiable hash", func(t *testing.T) {
		withTx(t, func(s *AuthService, userRepo *postgres.UserRepo) {
			user, err := s.Register(t.Context(), "nk", "StrongEnoughPassword")
			require.NoError(t, err)
			require.Equal(t, "nk", user.Username)
			require.Positive(t, user.ID, "store assigns the id")

			stored, err := userRepo.GetUserByUsername(t.Context(), "nk")
			require.NoError(t, err)

			assert.NotEqual(t, "StrongEnoughPassword", stored.PasswordHash, "plaintext must never be stored")
			assert.NoError(t, BcryptHasher{}.Compare(stored.PasswordHash, "StrongEnoughPassword"), "stored hash should verify against the original password")
		})
	})

	t.Run("register same username twice fails", func(t *testing.T) {
		withTx(t, func(s *AuthService, userRepo *postgres.UserRepo) {
			_, err := s.Register(t.Context(), "nk", "StrongEnoughPassword")
			require.NoError(t, err)

			_, err = s.Register(t.Context(), "nk", "AnotherPassword")
			require.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
		})
	})

	t.Run("login ok issues token with same identity", func(t *testing.T) {
		withTx(t, func(s *AuthService, userRepo *postgres.UserRepo) {
			registered, err := s.Register(t.Context(), "nk", "StrongEnoughPassword")
			require.NoError(t, err)

			user, token, err := s.Login(t.Context(), "nk", "StrongEnoughPassword")
			require.NoError(t, err)
			require.Equal(t, registered.ID, user.ID)
			require.NotEmpty(t, token.Value)

			// Token carries the same identity it was issued for
			req := httptest.NewRequest("POST", "/properties", nil)
			req.Header.Set("Authorization", "Bearer "+token.Value)

			fromToken, err := s.UserFromRequest(t.Context(), req)
			require.NoError(t, err)
			assert.Equal(t, registered.ID, fromToken.ID)
			assert.Equal(t, registered.Username, fromToken.Username)
		})
	})

	t.Run("login wrong password", func(t *testing.T) {
		withTx(t, func(s *AuthService, userRepo *postgres.UserRepo) {
			_, err := s.Register(t.Context(), "nk", "StrongEnoughPassword")
			require.NoError(t, err)

			_, token, err := s.Login(t.Context(), "nk", "WrongPassword")
			require.ErrorIs(t, err, apperrors.ErrInvalidPassword)
			require.Empty(t, token.Value, "no token should be issued")
		})
	})

	t.Run("login unknown user", func(t *testing.T) {
		withTx(t, func(s *AuthService, userRepo *postgres.UserRepo) {
			_, token, err := s.Login(t.Context(), "ghost", "whatever")
			require.ErrorIs(t, err, apperrors.ErrUserNotFound)
			require.Empty(t, token.Value, "no token should be issued")
		})
	})

	t.Run("request without header", func(t *testing.T) {
		withTx(t, func(s *AuthService, userRepo *postgres.UserRepo) {
			req := httptest.NewRequest("POST", "/properties", nil)

			_, err := s.UserFromRequest(t.Context(), req)
			require.ErrorIs(t, err, apperrors.ErrNoToken)
		})
	})

	t.Run("request with mangled token", func(t *testing.T) {
		withTx(t, func(s *AuthService, userRepo *postgres.UserRepo) {
			req := httptest.NewRequest("POST", "/properties", nil)
			req.Header.Set("Authorization", "Bearer not-a-jwt")

			_, err := s.UserFromRequest(t.Context(), req)
			require.ErrorIs(t, err, apperrors.ErrTokenInvalid)
		})
	})
}
