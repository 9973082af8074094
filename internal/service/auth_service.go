package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/realty-service/internal/auth"
	"github.com/spec-kit/realty-service/internal/config"
	"github.com/spec-kit/realty-service/internal/domain"
	"github.com/spec-kit/realty-service/internal/events"
	"github.com/spec-kit/realty-service/internal/repository"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	roles      repository.RoleRepository
	codec      *auth.TokenCodec
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates collaborator requirements for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	RoleRepo   repository.RoleRepository
	Dispatcher events.Dispatcher
}

// RegisterInput describes a registration request. RoleIDs optionally attach a
// role from the roles table; when absent the default role applies.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	RoleIDs  []int64
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		roles:      deps.RoleRepo,
		codec:      auth.NewTokenCodec(cfg.Auth),
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Login verifies credentials and issues a signed token carrying the account's
// role. An unknown email, a deactivated account and a wrong password all
// collapse into the same generic failure so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, auth.ErrInvalidCredentials
		}
		return "", time.Time{}, err
	}
	if !user.Active || !auth.VerifyPassword(password, user.PasswordHash) {
		return "", time.Time{}, auth.ErrInvalidCredentials
	}

	return s.codec.Encode(user.Email, user.Role)
}

// Register creates a new account. The password is hashed before anything is
// persisted and no token is issued; the caller logs in separately.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	email := NormalizeEmail(input.Email)

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, auth.ErrDuplicateEmail
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	role, err := s.resolveRole(ctx, input.RoleIDs)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		FullName:     input.FullName,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.publishRegistered(ctx, user)
	return user, nil
}

// resolveRole maps optional role ids onto a recognized role label. The first
// resolved record wins; an id with no matching record is a caller error.
func (s *AuthService) resolveRole(ctx context.Context, roleIDs []int64) (domain.Role, error) {
	if len(roleIDs) == 0 {
		return domain.DefaultRole, nil
	}
	records, err := s.roles.GetByIDs(ctx, roleIDs)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", errors.New("no matching roles for provided ids")
	}
	return domain.ParseRole(string(records[0].Name))
}

func (s *AuthService) publishRegistered(ctx context.Context, user *domain.User) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventUserRegistered,
		Actor:     events.Actor{Subject: user.Email, Role: user.Role},
		Timestamp: time.Now(),
		Payload: events.UserRegisteredPayload{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.Role,
		},
	})
}

// Codec exposes the token codec for middleware wiring.
func (s *AuthService) Codec() *auth.TokenCodec {
	return s.codec
}

// NormalizeEmail lower-cases and trims a login identifier.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
