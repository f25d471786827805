package domain

import (
	"errors"
	"strings"
)

// Sentinel errors. Every failure surfaced to a client funnels through the
// API error handler, which maps these to HTTP statuses and fixed messages.
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token expired")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidReference   = errors.New("invalid reference")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// ValidationError carries the per-field messages of a failed input
// validation. The API layer renders Fields in the error envelope.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, "; ")
}
