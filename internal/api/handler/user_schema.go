package handler

import "github.com/stackmart/catalog-api/internal/core/domain"

type setActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type userEnvelope struct {
	Success bool         `json:"success"`
	Data    *domain.User `json:"data"`
}

type listUsersResponse struct {
	Success    bool               `json:"success"`
	Data       []*domain.User     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
