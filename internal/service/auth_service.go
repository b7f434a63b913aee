package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/event-planner/internal/auth"
	"github.com/spec-kit/event-planner/internal/config"
	"github.com/spec-kit/event-planner/internal/domain"
	"github.com/spec-kit/event-planner/internal/repository"
	apperrors "github.com/spec-kit/event-planner/pkg/util/errorutil"
)

// AuthService coordinates signup and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		bcryptCost: cfg.BcryptCost,
	}
}

// Signup creates a credentialed account and issues a token bound to it.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) (*domain.User, string, time.Time, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("username, email and password required", nil)
	}

	if _, err := s.users.FindConflict(ctx, username, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("user already exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	user := &domain.User{Username: username, Email: email, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, "", time.Time{}, apperrors.NewConflict("user already exists", nil)
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	token, exp, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Login authenticates by username or email. Accounts without a password
// hash can never log in.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*domain.User, string, time.Time, error) {
	if identifier == "" || password == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("username and password required", nil)
	}

	user, err := s.users.GetByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, exp, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

func (s *AuthService) issueToken(userID int64) (string, time.Time, error) {
	token, exp, err := s.tokenMgr.GenerateToken(userID)
	if err != nil {
		if errors.Is(err, auth.ErrNoSigningKey) {
			return "", time.Time{}, apperrors.NewServerMisconfigured("server misconfiguration: token signing key not set")
		}
		return "", time.Time{}, apperrors.MapError(err)
	}
	return token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
