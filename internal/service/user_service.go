// Package service orchestrates validate-then-persist workflows over users.
package service

import (
	"context"
	"time"

	"go-users-api/internal/domain"
	"go-users-api/internal/validation"
)

// UserService is stateless; it is safe for concurrent use as long as the
// repository is. The exists-before-update check is two round trips with no
// transaction, so concurrent writers can race past it.
type UserService struct {
	repo          domain.UserRepository
	userValidator *validation.UserValidator
	optsValidator validation.OptionsValidator
}

func NewUserService(repo domain.UserRepository, userValidator *validation.UserValidator) *UserService {
	return &UserService{repo: repo, userValidator: userValidator}
}

// Create persists the user after full validation. The user's ID carries the
// generated key afterwards.
func (s *UserService) Create(ctx context.Context, u *domain.User) error {
	if err := s.userValidator.ValidateUser(ctx, u); err != nil {
		return err
	}
	return s.repo.Create(ctx, u)
}

// GetByID returns (nil, nil) when the user does not exist.
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) GetAll(ctx context.Context, opts domain.GetAllUsersOptions) ([]domain.User, error) {
	if err := s.optsValidator.ValidateOptions(opts); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx, opts)
}

func (s *UserService) GetCount(ctx context.Context, date *time.Time) (int64, error) {
	return s.repo.Count(ctx, date)
}

// Update validates, confirms the record exists, then writes. A missing
// record yields (nil, nil); the input user is returned as the new state.
func (s *UserService) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	if err := s.userValidator.ValidateUser(ctx, u); err != nil {
		return nil, err
	}
	existing, err := s.repo.FindByID(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) DeleteByID(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteByID(ctx, id)
}
