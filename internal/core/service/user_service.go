package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stackmart/catalog-api/internal/core/domain"
	"github.com/stackmart/catalog-api/internal/core/ports"
)

// UserService implements the admin-only account management use cases.
type UserService struct {
	repo   ports.UserRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, audit ports.AuditRecorder, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, audit: audit, logger: logger}
}

func (s *UserService) List(ctx context.Context, page, limit int) (*ports.ListUsersResult, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, ports.ListUsersFilter{Page: page, Limit: limit})
	if err != nil {
		return nil, err
	}

	return &ports.ListUsersResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) SetActive(ctx context.Context, id string, active bool, actorID string) (*domain.User, error) {
	user, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Bool("active", active).Str("actor_id", actorID).Msg("account active flag changed")
	if !active && s.audit != nil {
		s.audit.Record(domain.AuditEntry{ActorID: actorID, Action: domain.AuditUserDeactivated, ResourceID: id})
	}
	return user, nil
}
