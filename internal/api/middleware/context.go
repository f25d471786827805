package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/stackmart/catalog-api/internal/core/domain"
)

// Context keys owned by this package. Handlers never touch these directly;
// they go through the typed helpers below, which eliminates accidental
// field-name collisions between middlewares.
const (
	accountKey       = "auth.account"
	resourceOwnerKey = "auth.resource_owner_id"
)

// SetAccount attaches the authenticated account to the request context.
// The account is request-scoped and never shared across requests.
func SetAccount(c echo.Context, u *domain.User) {
	c.Set(accountKey, u)
}

// AccountFromContext returns the account attached by the Auth middleware,
// or nil when the request is unauthenticated.
func AccountFromContext(c echo.Context) *domain.User {
	u, _ := c.Get(accountKey).(*domain.User)
	return u
}

// SetResourceOwner attaches the owning account id of the target resource,
// as resolved from the store. This is the highest-precedence owner source
// for the ownership gate: client-supplied data never establishes ownership
// of existing records.
func SetResourceOwner(c echo.Context, ownerID string) {
	c.Set(resourceOwnerKey, ownerID)
}
