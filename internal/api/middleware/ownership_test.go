package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/stackmart/catalog-api/internal/core/domain"
)

func newOwnershipContext(acct *domain.User, body string, pathID string) echo.Context {
	e := echo.New()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(http.MethodPut, "/", reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if pathID != "" {
		c.SetParamNames("id")
		c.SetParamValues(pathID)
	}
	if acct != nil {
		SetAccount(c, acct)
	}
	return c
}

func passThrough(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true
		return c.NoContent(http.StatusOK)
	}
}

func TestOwnerOrAdmin_AdminBypassesOwnership(t *testing.T) {
	c := newOwnershipContext(&domain.User{ID: "admin-1", Role: domain.RoleAdmin}, "", "")
	SetResourceOwner(c, "someone-else")

	called := false
	if err := OwnerOrAdmin()(passThrough(&called))(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestOwnerOrAdmin_OwnerMatches(t *testing.T) {
	c := newOwnershipContext(&domain.User{ID: "u1", Role: domain.RoleUser}, "", "")
	SetResourceOwner(c, "u1")

	called := false
	if err := OwnerOrAdmin()(passThrough(&called))(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestOwnerOrAdmin_OwnerMismatch(t *testing.T) {
	c := newOwnershipContext(&domain.User{ID: "u1", Role: domain.RoleUser}, "", "")
	SetResourceOwner(c, "u2")

	handler := OwnerOrAdmin()(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestOwnerOrAdmin_NoOwnerSource(t *testing.T) {
	c := newOwnershipContext(&domain.User{ID: "u1", Role: domain.RoleUser}, "", "")

	if err := OwnerOrAdmin()(func(c echo.Context) error { return nil })(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestOwnerOrAdmin_BodyFallback(t *testing.T) {
	c := newOwnershipContext(&domain.User{ID: "u1", Role: domain.RoleUser}, `{"owner_id":"u1","name":"x"}`, "")

	called := false
	handler := OwnerOrAdmin()(func(c echo.Context) error {
		called = true
		// Body must be readable again after the owner peek.
		var payload struct {
			Name string `json:"name"`
		}
		if err := c.Bind(&payload); err != nil {
			t.Fatalf("bind after peek: %v", err)
		}
		if payload.Name != "x" {
			t.Fatalf("body not restored, got %+v", payload)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestOwnerOrAdmin_PathFallback(t *testing.T) {
	c := newOwnershipContext(&domain.User{ID: "u1", Role: domain.RoleUser}, "", "u1")

	called := false
	if err := OwnerOrAdmin()(passThrough(&called))(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

// Precedence: a loader-attached owner always wins over client-supplied data.
func TestOwnerOrAdmin_AttachedValueBeatsBody(t *testing.T) {
	c := newOwnershipContext(&domain.User{ID: "u1", Role: domain.RoleUser}, `{"owner_id":"u1"}`, "")
	SetResourceOwner(c, "u2")

	if err := OwnerOrAdmin()(func(c echo.Context) error { return nil })(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden (attached owner wins), got %v", err)
	}
}

func TestOwnerOrAdmin_BodyBeatsPath(t *testing.T) {
	c := newOwnershipContext(&domain.User{ID: "u1", Role: domain.RoleUser}, `{"owner_id":"u2"}`, "u1")

	if err := OwnerOrAdmin()(func(c echo.Context) error { return nil })(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden (body owner wins over path), got %v", err)
	}
}

func TestResourceOwner_AttachesStoreValue(t *testing.T) {
	lookup := func(_ context.Context, id string) (string, error) {
		if id != "p1" {
			t.Fatalf("unexpected id %q", id)
		}
		return "u9", nil
	}

	c := newOwnershipContext(&domain.User{ID: "u9", Role: domain.RoleUser}, "", "p1")

	called := false
	chain := ResourceOwner(lookup)(OwnerOrAdmin()(passThrough(&called)))
	if err := chain(c); err != nil {
		t.Fatalf("chain error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestResourceOwner_LookupError(t *testing.T) {
	lookup := func(_ context.Context, _ string) (string, error) {
		return "", domain.ErrProductNotFound
	}

	c := newOwnershipContext(&domain.User{ID: "u1", Role: domain.RoleUser}, "", "p1")

	chain := ResourceOwner(lookup)(OwnerOrAdmin()(func(c echo.Context) error { return nil }))
	if err := chain(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
