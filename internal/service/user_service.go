package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/event-planner/internal/domain"
	"github.com/spec-kit/event-planner/internal/pagination"
	"github.com/spec-kit/event-planner/internal/repository"
	apperrors "github.com/spec-kit/event-planner/pkg/util/errorutil"
)

// UserService owns the lifecycle of planner accounts.
type UserService struct {
	users repository.UserRepository
}

// UserUpdateInput describes a partial update. Nil fields are untouched.
// Username and email are required fields, so a present-but-empty value is
// rejected rather than treated as a clear.
type UserUpdateInput struct {
	Username *string
	Email    *string
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Create adds a user without credentials (admin-created accounts).
func (s *UserService) Create(ctx context.Context, username, email string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" {
		return nil, apperrors.NewValidationError("username and email required", nil)
	}

	if err := s.checkConflict(ctx, username, email); err != nil {
		return nil, err
	}

	user := &domain.User{Username: username, Email: email}
	if err := s.users.Create(ctx, user); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("user already exists", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// List returns one page of users ordered by descending id, plus the total
// unfiltered count.
func (s *UserService) List(ctx context.Context, p pagination.Params) ([]domain.User, int64, error) {
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	items, err := s.users.List(ctx, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	return items, total, nil
}

// Get fetches a single user.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// Update applies a partial update.
func (s *UserService) Update(ctx context.Context, id int64, input UserUpdateInput) (*domain.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if username == "" {
			return nil, apperrors.NewValidationError("username must not be empty", map[string]any{"field": "username"})
		}
		user.Username = username
	}
	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		if email == "" {
			return nil, apperrors.NewValidationError("email must not be empty", map[string]any{"field": "email"})
		}
		user.Email = email
	}

	if err := s.users.Update(ctx, user); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("user already exists", nil)
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", nil)
		}
		return apperrors.MapError(err)
	}
	return nil
}

// checkConflict is a fast-path pre-check; the schema's unique indexes are
// the authority under concurrent creation.
func (s *UserService) checkConflict(ctx context.Context, username, email string) error {
	if _, err := s.users.FindConflict(ctx, username, email); err == nil {
		return apperrors.NewConflict("user already exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return apperrors.MapError(err)
	}
	return nil
}
