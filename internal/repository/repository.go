package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gan-2/real-estate-api/internal/models"
)

// User repository interface
type UserRepo interface {
	// Create user with already hashed password
	// If user with the same username exists has to return apperrors.ErrUserAlreadyExists
	CreateUser(ctx context.Context, username string, passwordHash string) (models.User, error)

	// Get user by username
	// If user not found must return apperrors.ErrUserNotFound
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
}

// Property repository interface
type PropertyRepo interface {
	// Create property record, id is assigned by the store
	CreateProperty(ctx context.Context, title string, price decimal.Decimal) (models.Property, error)

	// List all known properties in insertion order
	ListProperties(ctx context.Context) ([]models.Property, error)
}

// Storage aggregates repositories over a shared connection or transaction
type Storage interface {
	User() UserRepo
	Property() PropertyRepo
}
