package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/stackmart/catalog-api/internal/auth"
	"github.com/stackmart/catalog-api/internal/core/domain"
	"github.com/stackmart/catalog-api/internal/core/ports"
)

// AuthService implements registration and login. The password is hashed at
// creation time and the plaintext is never stored or logged.
type AuthService struct {
	repo    ports.UserRepository
	codec   *auth.Codec
	limiter ports.LoginLimiter
	audit   ports.AuditRecorder
	logger  zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *auth.Codec, limiter ports.LoginLimiter, audit ports.AuditRecorder, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, limiter: limiter, audit: audit, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, &domain.ValidationError{Fields: []string{"role must be one of: user admin"}}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Username:     strings.TrimSpace(input.Username),
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("account registered")
	s.record(domain.AuditEntry{ActorID: created.ID, Action: domain.AuditRegister})

	return created, nil
}

// Login verifies credentials and issues a bearer token. Unknown email,
// wrong password and deactivated account all fail with the same error so
// responses cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	key := strings.ToLower(strings.TrimSpace(email))

	if s.limiter != nil {
		if err := s.limiter.Allow(ctx, key); err != nil {
			return "", nil, err
		}
	}

	user, err := s.repo.FindByEmail(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.fail(ctx, key)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !user.Active {
		s.fail(ctx, key)
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.fail(ctx, key)
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, key); err != nil {
			s.logger.Warn().Err(err).Msg("failed to reset login limiter")
		}
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("login succeeded")
	s.record(domain.AuditEntry{ActorID: user.ID, Action: domain.AuditLogin})

	return token, user, nil
}

func (s *AuthService) fail(ctx context.Context, key string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.Fail(ctx, key); err != nil {
		s.logger.Warn().Err(err).Msg("failed to record login failure")
	}
}

func (s *AuthService) record(entry domain.AuditEntry) {
	if s.audit != nil {
		s.audit.Record(entry)
	}
}
