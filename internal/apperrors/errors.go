package apperrors

import (
	"errors"
)

var (
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidPassword   = errors.New("invalid password")

	ErrNoToken      = errors.New("no token provided")
	ErrTokenInvalid = errors.New("token is invalid or expired")
)
