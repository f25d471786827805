package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/stackmart/catalog-api/internal/core/domain"
)

// ownerBodyField is the request-body field consulted when no loader has
// attached an owner id. Only meaningful for newly created records; existing
// records always go through ResourceOwner.
const ownerBodyField = "owner_id"

// ResourceOwner loads the true owning account id of the resource addressed
// by the :id path parameter and attaches it for OwnerOrAdmin. lookup reads
// the record's owner column from the store, so ownership of existing records
// is never established from client-supplied data.
func ResourceOwner(lookup func(ctx context.Context, id string) (string, error)) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ownerID, err := lookup(c.Request().Context(), c.Param("id"))
			if err != nil {
				return err
			}
			SetResourceOwner(c, ownerID)
			return next(c)
		}
	}
}

// OwnerOrAdmin permits the request when the authenticated account is an
// admin or owns the target resource. Must run after Auth, and after the
// owner id is known.
//
// The owner id is resolved with a fixed precedence:
//  1. loader/handler-attached value (SetResourceOwner)
//  2. request-body "owner_id" field
//  3. the :id path parameter (account self-routes, where the resource is
//     the account itself)
func OwnerOrAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			acct := AccountFromContext(c)
			if acct == nil {
				return domain.ErrUnauthenticated
			}
			if acct.Role == domain.RoleAdmin {
				return next(c)
			}

			ownerID := resolveOwnerID(c)
			if ownerID == "" || ownerID != acct.ID {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

func resolveOwnerID(c echo.Context) string {
	if v, ok := c.Get(resourceOwnerKey).(string); ok && v != "" {
		return v
	}
	if v := ownerFromBody(c); v != "" {
		return v
	}
	return c.Param("id")
}

// ownerFromBody peeks at the JSON body for the owner field, restoring the
// body so the handler can still bind it.
func ownerFromBody(c echo.Context) string {
	req := c.Request()
	if req.Body == nil || req.ContentLength == 0 {
		return ""
	}

	raw, err := io.ReadAll(req.Body)
	req.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil {
		return ""
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return ""
	}
	owner, _ := fields[ownerBodyField].(string)
	return owner
}
