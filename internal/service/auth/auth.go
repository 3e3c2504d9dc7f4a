package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gan-2/real-estate-api/internal/apperrors"
	"github.com/gan-2/real-estate-api/internal/models"
	"github.com/gan-2/real-estate-api/internal/repository"
	"github.com/gan-2/real-estate-api/internal/service/auth/tokenmanager"
)

// Interface to create or compare user password hashes
type PasswordHasher interface {
	// Generate hash from password
	Hash(password string) (string, error)

	// Compare known hashedPassword and user provided password
	// Must be protected against timing attacks
	Compare(hashedPassword string, password string) error
}

// Auth service: registration, login and request authentication
type AuthService struct {
	// Manager to issue and parse signed tokens
	tokens *tokenmanager.TokenManager

	// Hasher to hash or compare user passwords
	hasher PasswordHasher

	// Repository to access long term data
	userRepo repository.UserRepo
}

func NewService(tokens *tokenmanager.TokenManager, hasher PasswordHasher, userRepo repository.UserRepo) (*AuthService, error) {
	if tokens == nil || userRepo == nil {
		return nil, errors.New("token manager and user repo must not be nil")
	}

	// Set default bcrypt hasher if not provided by caller
	if hasher == nil {
		hasher = BcryptHasher{}
	}

	return &AuthService{
		tokens:   tokens,
		hasher:   hasher,
		userRepo: userRepo,
	}, nil
}

// Register user with username and password
// Returns apperrors.ErrUserAlreadyExists if username is taken
func (s *AuthService) Register(ctx context.Context, username string, password string) (models.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, fmt.Errorf("can't use this as password, error=%w", err)
	}

	user, err := s.userRepo.CreateUser(ctx, username, hash)
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login user with username and password and issue a token
// Returns apperrors.ErrUserNotFound if username is unknown
// Returns apperrors.ErrInvalidPassword if password doesn't match
func (s *AuthService) Login(ctx context.Context, username string, password string) (models.User, models.IssuedToken, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, models.IssuedToken{}, err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return models.User{}, models.IssuedToken{}, apperrors.ErrInvalidPassword
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return models.User{}, models.IssuedToken{}, fmt.Errorf("token could not be generated, sorry. %w", err)
	}

	return user, token, nil
}

// Authenticate request by its 'Authorization: Bearer <token>' header
// Returns apperrors.ErrNoToken if the header is missing
// Returns apperrors.ErrTokenInvalid if token is malformed, forged or expired
func (s *AuthService) UserFromRequest(ctx context.Context, r *http.Request) (models.User, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return models.User{}, apperrors.ErrNoToken
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return models.User{}, apperrors.ErrNoToken
	}

	user, err := s.tokens.Parse(token)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", apperrors.ErrTokenInvalid, err)
	}

	return user, nil
}
