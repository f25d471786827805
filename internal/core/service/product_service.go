package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/stackmart/catalog-api/internal/core/domain"
	"github.com/stackmart/catalog-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ProductService implements product CRUD. Ownership enforcement lives in
// the middleware chain; this layer is a thin pass-through to the store plus
// pagination math.
type ProductService struct {
	repo   ports.ProductRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, audit ports.AuditRecorder, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, audit: audit, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Category:    input.Category,
		OwnerID:     input.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", product.ID).Str("owner_id", product.OwnerID).Msg("product created")
	s.record(domain.AuditEntry{ActorID: input.OwnerID, Action: domain.AuditProductCreated, ResourceID: product.ID})

	return product, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context, input ports.ListProductsInput) (*ports.ListProductsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, ports.ListProductsFilter{
		OwnerID:  input.OwnerID,
		Category: input.Category,
		Search:   input.Search,
		PriceMin: input.PriceMin,
		PriceMax: input.PriceMax,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ports.ListProductsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *ProductService) Update(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Quantity = input.Quantity
	product.Category = input.Category
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.record(domain.AuditEntry{ActorID: input.ActorID, Action: domain.AuditProductUpdated, ResourceID: id})
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id, actorID string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.record(domain.AuditEntry{ActorID: actorID, Action: domain.AuditProductDeleted, ResourceID: id})
	return nil
}

// OwnerOf resolves the owning account id from the store; the ownership
// middleware uses this so client data never establishes ownership of an
// existing record.
func (s *ProductService) OwnerOf(ctx context.Context, id string) (string, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return product.OwnerID, nil
}

func (s *ProductService) record(entry domain.AuditEntry) {
	if s.audit != nil {
		s.audit.Record(entry)
	}
}
