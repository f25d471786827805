package ports

import (
	"context"

	"github.com/stackmart/catalog-api/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string // defaults to "user" when empty
}

// AuthService defines registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token plus the
	// authenticated account.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// LoginLimiter throttles repeated failed login attempts per account key.
type LoginLimiter interface {
	// Allow returns domain.ErrTooManyAttempts when key is currently blocked.
	Allow(ctx context.Context, key string) error
	// Fail records a failed attempt for key.
	Fail(ctx context.Context, key string) error
	// Reset clears the failure count for key after a successful login.
	Reset(ctx context.Context, key string) error
}
