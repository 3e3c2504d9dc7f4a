package tokenmanager

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gan-2/real-estate-api/internal/models"
)

const (
	defaultTokenTTL      = time.Hour
	defaultSigningMethod = "HS256"
)

type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"id"`
	Username string `json:"username"`
}

// Token manager config with sensible defaults
type Config struct {
	// Secret key to sign token payload
	// Required to be set
	SecretKey string

	// JWT MAC (Message Authentication Code) algorithm
	// If not set then default is used
	Alg string

	// Token lifetime
	// If not set then default (1 hour) is used
	TTL time.Duration
}

type TokenManager struct {
	// Secret key to sign tokens
	key string

	// JWT MAC (Message Authentication Code) algorithm
	alg jwt.SigningMethod

	// Token lifetime
	ttl time.Duration

	// Clock, overridable in tests
	timeNow func() time.Time
}

func New(cfg Config) (*TokenManager, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("secret key must not be empty")
	}

	if cfg.Alg == "" {
		cfg.Alg = defaultSigningMethod
	}

	if cfg.TTL == 0 {
		cfg.TTL = defaultTokenTTL
	}

	return &TokenManager{
		key:     cfg.SecretKey,
		alg:     jwt.GetSigningMethod(cfg.Alg),
		ttl:     cfg.TTL,
		timeNow: time.Now,
	}, nil
}

// Issue signed token that embeds user id and username
func (m *TokenManager) Issue(user models.User) (models.IssuedToken, error) {
	now := m.timeNow().Truncate(time.Second)
	expiresAt := now.Add(m.ttl)

	token := jwt.NewWithClaims(
		m.alg,
		Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        uuid.NewString(),
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(expiresAt),
			},
			UserID:   user.ID,
			Username: user.Username,
		},
	)

	signed, err := token.SignedString([]byte(m.key))
	if err != nil {
		return models.IssuedToken{}, fmt.Errorf("error while signing token. Err: %w", err)
	}

	return models.IssuedToken{Value: signed, ExpiresAt: expiresAt}, nil
}

// Parse and validate token, return embedded identity claims
// Validity is determined by signature and expiry only, no server side state
func (m *TokenManager) Parse(token string) (models.User, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(
		token,
		claims,
		func(t *jwt.Token) (any, error) {
			return []byte(m.key), nil
		},
		jwt.WithValidMethods([]string{m.alg.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return m.timeNow() }),
	)
	if err != nil {
		return models.User{}, fmt.Errorf("error while parsing or validating token. Err: %w", err)
	}

	return models.User{ID: claims.UserID, Username: claims.Username}, nil
}
