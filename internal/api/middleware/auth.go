package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/stackmart/catalog-api/internal/api/metrics"
	"github.com/stackmart/catalog-api/internal/auth"
	"github.com/stackmart/catalog-api/internal/core/domain"
	"github.com/stackmart/catalog-api/internal/core/ports"
)

// Auth validates the bearer token and resolves the current account.
//
// The token carries only the subject id; role and active-state are re-read
// from the store on exactly one lookup per request, so privilege changes and
// deactivations take effect on the next request. A missing account and an
// inactive account are rejected with the same error so the response does not
// reveal whether the account exists.
func Auth(codec *auth.Codec, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing_header").Inc()
				return domain.ErrUnauthenticated
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("bad_scheme").Inc()
				return domain.ErrUnauthenticated
			}

			subject, err := codec.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrExpiredToken) {
					metrics.TokenRejectionsTotal.WithLabelValues("expired").Inc()
				} else {
					metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				}
				return err
			}

			user, err := users.FindByID(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.TokenRejectionsTotal.WithLabelValues("no_account").Inc()
					return domain.ErrUnauthenticated
				}
				return err
			}
			if !user.Active {
				metrics.TokenRejectionsTotal.WithLabelValues("no_account").Inc()
				return domain.ErrUnauthenticated
			}

			SetAccount(c, user)
			return next(c)
		}
	}
}
