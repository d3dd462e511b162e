package domain

import "errors"

// Sentinel errors shared across services, repositories and the HTTP error
// handler. The error handler owns the mapping to status codes.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrMissingToken       = errors.New("missing token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrTooManyAttempts    = errors.New("too many login attempts")

	ErrRecipeNotFound       = errors.New("recipe not found")
	ErrCleaningTaskNotFound = errors.New("cleaning task not found")
)
