package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stackmart/catalog-api/internal/core/ports"
)

// UserHandler exposes the admin-only account management endpoints. Routes
// are mounted behind RequireRole(admin).
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /v1/users.
//
// @Summary      List accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  listUsersResponse
// @Failure      403    {object}  map[string]any
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), queryInt(c, "page"), queryInt(c, "limit"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listUsersResponse{
		Success: true,
		Data:    result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Get handles GET /v1/users/:id.
//
// @Summary      Get an account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  userEnvelope
// @Failure      404  {object}  map[string]any
// @Router       /v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userEnvelope{Success: true, Data: user})
}

// SetActive handles PATCH /v1/users/:id/active. Deactivation is the
// documented deletion path; there is no hard delete.
//
// @Summary      Activate or deactivate an account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Account id"
// @Param        body  body      setActiveRequest  true  "Active flag"
// @Success      200   {object}  userEnvelope
// @Failure      404   {object}  map[string]any
// @Router       /v1/users/{id}/active [patch]
func (h *UserHandler) SetActive(c echo.Context) error {
	acct, err := ctxAccount(c)
	if err != nil {
		return err
	}

	var req setActiveRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.SetActive(c.Request().Context(), c.Param("id"), *req.Active, acct.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userEnvelope{Success: true, Data: user})
}
