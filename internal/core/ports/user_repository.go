package ports

import (
	"context"

	"github.com/stackmart/catalog-api/internal/core/domain"
)

// ListUsersFilter carries pagination parameters for the admin user listing.
type ListUsersFilter struct {
	Page  int // 1-based
	Limit int // capped at 100 by the service
}

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns a page of accounts and the total count.
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
	// SetActive flips the account's active flag.
	SetActive(ctx context.Context, id string, active bool) (*domain.User, error)
}
