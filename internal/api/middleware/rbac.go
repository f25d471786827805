package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/stackmart/catalog-api/internal/core/domain"
)

// RequireRole enforces role-based access control. Must run after Auth.
// Pure predicate over the already-resolved account; no side effects.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			acct := AccountFromContext(c)
			if acct == nil {
				return domain.ErrUnauthenticated
			}
			if _, ok := allowed[acct.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
