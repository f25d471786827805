package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/stackmart/catalog-api/internal/core/domain"
	"github.com/stackmart/catalog-api/internal/core/ports"
)

type stubProductRepo struct {
	products   map[string]*domain.Product
	lastFilter ports.ListProductsFilter
	listTotal  int64
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) error {
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) List(_ context.Context, filter ports.ListProductsFilter) ([]*domain.Product, int64, error) {
	r.lastFilter = filter
	return nil, r.listTotal, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func newProductService(repo ports.ProductRepository) (*ProductService, *stubAudit) {
	audit := &stubAudit{}
	return NewProductService(repo, audit, zerolog.Nop()), audit
}

func TestProductService_Create(t *testing.T) {
	repo := newStubProductRepo()
	svc, audit := newProductService(repo)

	product, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name:     "widget",
		Price:    9.99,
		Quantity: 3,
		Category: "tools",
		OwnerID:  "u1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if product.ID == "" {
		t.Fatalf("expected generated id")
	}
	if product.OwnerID != "u1" {
		t.Fatalf("expected owner u1, got %q", product.OwnerID)
	}
	if product.CreatedAt.IsZero() || product.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
	if len(audit.entries) != 1 || audit.entries[0].Action != domain.AuditProductCreated {
		t.Fatalf("expected one product_created audit entry, got %+v", audit.entries)
	}
}

func TestProductService_List_PaginationDefaults(t *testing.T) {
	repo := newStubProductRepo()
	repo.listTotal = 45
	svc, _ := newProductService(repo)

	result, err := svc.List(context.Background(), ports.ListProductsInput{OwnerID: "u1"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.lastFilter.Page != 1 || repo.lastFilter.Limit != 20 {
		t.Fatalf("expected defaults page=1 limit=20, got %+v", repo.lastFilter)
	}
	if result.TotalPages != 3 {
		t.Fatalf("expected 3 total pages for 45/20, got %d", result.TotalPages)
	}
	if repo.lastFilter.OwnerID != "u1" {
		t.Fatalf("owner scoping not forwarded: %+v", repo.lastFilter)
	}
}

func TestProductService_List_LimitCap(t *testing.T) {
	repo := newStubProductRepo()
	svc, _ := newProductService(repo)

	if _, err := svc.List(context.Background(), ports.ListProductsInput{Page: 2, Limit: 500}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.lastFilter.Limit != 100 {
		t.Fatalf("expected limit capped at 100, got %d", repo.lastFilter.Limit)
	}
	if repo.lastFilter.Page != 2 {
		t.Fatalf("expected page 2, got %d", repo.lastFilter.Page)
	}
}

func TestProductService_Update(t *testing.T) {
	repo := newStubProductRepo()
	svc, audit := newProductService(repo)

	created, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "widget", Price: 1, Category: "tools", OwnerID: "u1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateProductInput{
		Name: "widget v2", Price: 2, Quantity: 7, Category: "tools", ActorID: "u1",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "widget v2" || updated.Price != 2 || updated.Quantity != 7 {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.OwnerID != "u1" {
		t.Fatalf("owner must not change on update, got %q", updated.OwnerID)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) && !updated.UpdatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("expected UpdatedAt to advance")
	}
	if len(audit.entries) != 2 || audit.entries[1].Action != domain.AuditProductUpdated {
		t.Fatalf("expected product_updated audit entry, got %+v", audit.entries)
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	svc, _ := newProductService(newStubProductRepo())

	if _, err := svc.Update(context.Background(), "missing", ports.UpdateProductInput{Name: "x"}); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Delete(t *testing.T) {
	repo := newStubProductRepo()
	svc, audit := newProductService(repo)

	created, _ := svc.Create(context.Background(), ports.CreateProductInput{Name: "widget", Price: 1, Category: "tools", OwnerID: "u1"})

	if err := svc.Delete(context.Background(), created.ID, "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected product gone, got %v", err)
	}
	if audit.entries[len(audit.entries)-1].Action != domain.AuditProductDeleted {
		t.Fatalf("expected product_deleted audit entry")
	}
}

func TestProductService_OwnerOf(t *testing.T) {
	repo := newStubProductRepo()
	svc, _ := newProductService(repo)

	created, _ := svc.Create(context.Background(), ports.CreateProductInput{Name: "widget", Price: 1, Category: "tools", OwnerID: "u7"})

	owner, err := svc.OwnerOf(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("OwnerOf: %v", err)
	}
	if owner != "u7" {
		t.Fatalf("expected owner u7, got %q", owner)
	}

	if _, err := svc.OwnerOf(context.Background(), "missing"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
