package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/stackmart/catalog-api/internal/api/middleware"
	"github.com/stackmart/catalog-api/internal/core/domain"
)

// ctxAccount returns the account resolved by the Auth middleware and
// fast-fails before any service call when it is absent (presence proves the
// middleware ran on this route).
func ctxAccount(c echo.Context) (*domain.User, error) {
	acct := middleware.AccountFromContext(c)
	if acct == nil {
		return nil, domain.ErrUnauthenticated
	}
	return acct, nil
}
