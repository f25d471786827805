package ports

import (
	"context"

	"github.com/stackmart/catalog-api/internal/core/domain"
)

// CreateProductInput carries all data needed to create a product.
// OwnerID is always the authenticated account, never client-supplied.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
	Category    string
	OwnerID     string
}

// UpdateProductInput is a full replacement of the mutable product fields.
type UpdateProductInput struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
	Category    string
	ActorID     string
}

// ListProductsInput carries all parameters for the list endpoint.
type ListProductsInput struct {
	OwnerID  string // empty = all owners (admin only)
	Category string
	Search   string
	PriceMin float64
	PriceMax float64
	Page     int
	Limit    int
}

// ListProductsResult is returned by List.
type ListProductsResult struct {
	Items      []*domain.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProductService defines use-case operations for products.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, input ListProductsInput) (*ListProductsResult, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id, actorID string) error
	// OwnerOf resolves the owning account id of a product. Used by the
	// ownership middleware so the owner is always read from the store.
	OwnerOf(ctx context.Context, id string) (string, error)
}
