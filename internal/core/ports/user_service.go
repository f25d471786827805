package ports

import (
	"context"

	"github.com/stackmart/catalog-api/internal/core/domain"
)

// ListUsersResult is returned by UserService.List.
type ListUsersResult struct {
	Items      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UserService defines admin-only account management use cases.
type UserService interface {
	List(ctx context.Context, page, limit int) (*ListUsersResult, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	// SetActive flips the account's active flag. Deactivation is the
	// documented deletion path; there is no hard delete.
	SetActive(ctx context.Context, id string, active bool, actorID string) (*domain.User, error)
}
