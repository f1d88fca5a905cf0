package service

import (
	"context"
	"fmt"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// CreateUserInput represents data required to create a user.
type CreateUserInput struct {
	Name  string
	Email string
}

// UpdateUserInput holds the mutable user fields; nil means unchanged.
type UpdateUserInput struct {
	Name  *string
	Email *string
}

// UserService wraps user-related validation and persistence.
type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*model.User, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", repository.ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", repository.ErrValidation)
	}

	user := model.User{Name: input.Name, Email: input.Email}
	if err := s.repo.Create(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Update(ctx context.Context, id uint, input UpdateUserInput) (*model.User, error) {
	fields := make(map[string]interface{})
	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", repository.ErrValidation)
		}
		fields["name"] = *input.Name
	}
	if input.Email != nil {
		if *input.Email == "" {
			return nil, fmt.Errorf("%w: email must not be empty", repository.ErrValidation)
		}
		fields["email"] = *input.Email
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", repository.ErrValidation)
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
