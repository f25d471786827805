package ports

import (
	"context"

	"github.com/stackmart/catalog-api/internal/core/domain"
)

// ListProductsFilter carries all query parameters for listing products.
// OwnerID is enforced by the service layer: empty means no owner scoping
// (admin); non-empty scopes the listing to that account.
type ListProductsFilter struct {
	OwnerID  string
	Category string  // optional: exact match
	Search   string  // optional: partial match on name
	PriceMin float64 // optional: price >= PriceMin when > 0
	PriceMax float64 // optional: price <= PriceMax when > 0
	Page     int     // 1-based
	Limit    int     // max rows per page (capped at 100 by service)
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// List returns a page of products matching filter and the total count.
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}
