package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/stackmart/catalog-api/internal/core/domain"
)

// errorEnvelope is the canonical error body for all 4xx/5xx responses:
// {"success": false, "message": "...", "errors": [...]}.
type errorEnvelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// NewHTTPErrorHandler returns the single error normalizer every failed
// request funnels through. It:
//   - Maps domain errors to deterministic HTTP statuses and fixed messages.
//   - Never names the colliding field on uniqueness violations and never
//     reveals whether an account exists.
//   - Logs the raw error server-side on every path, whatever the client sees.
//   - Includes error detail on 500s only outside production.
func NewHTTPErrorHandler(log zerolog.Logger, env string) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, envelope := normalize(err, env)

		event := log.Warn()
		if code >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.Err(err).
			Int("status", code).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("request failed")

		_ = c.JSON(code, envelope)
	}
}

func normalize(err error, env string) (int, errorEnvelope) {
	// Input validation: joined human-readable field messages.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorEnvelope{Message: "validation failed", Errors: ve.Fields}
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorEnvelope{Message: fmt.Sprintf("%v", he.Message)}
	}

	switch {
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, errorEnvelope{Message: "invalid token"}
	case errors.Is(err, domain.ErrExpiredToken):
		return http.StatusUnauthorized, errorEnvelope{Message: "token expired"}
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, errorEnvelope{Message: "authentication required"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorEnvelope{Message: "invalid credentials"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorEnvelope{Message: "forbidden"}
	case errors.Is(err, domain.ErrDuplicateEntry):
		// Fixed message; naming the field would allow account enumeration.
		return http.StatusConflict, errorEnvelope{Message: "duplicate entry"}
	case errors.Is(err, domain.ErrInvalidReference):
		return http.StatusBadRequest, errorEnvelope{Message: "invalid reference"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorEnvelope{Message: "user not found"}
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, errorEnvelope{Message: "product not found"}
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, errorEnvelope{Message: "too many login attempts"}
	}

	envelope := errorEnvelope{Message: "internal server error"}
	if env != "production" {
		envelope.Errors = []string{err.Error()}
	}
	return http.StatusInternalServerError, envelope
}
