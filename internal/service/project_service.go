package service

import (
	"context"
	"fmt"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// CreateProjectInput represents data required to create a project.
type CreateProjectInput struct {
	UserID      uint
	Title       string
	Description string
}

// UpdateProjectInput holds the mutable project fields; nil means unchanged.
type UpdateProjectInput struct {
	Title       *string
	Description *string
}

// ProjectService wraps project-related validation and persistence.
type ProjectService struct {
	repo *repository.ProjectRepository
}

func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) Create(ctx context.Context, input CreateProjectInput) (*model.Project, error) {
	if input.UserID == 0 {
		return nil, fmt.Errorf("%w: user_id is required", repository.ErrValidation)
	}
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", repository.ErrValidation)
	}

	project := model.Project{
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
	}
	if err := s.repo.Create(ctx, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) Get(ctx context.Context, id uint) (*model.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) List(ctx context.Context, userID *uint) ([]model.Project, error) {
	return s.repo.List(ctx, userID)
}

func (s *ProjectService) Update(ctx context.Context, id uint, input UpdateProjectInput) (*model.Project, error) {
	fields := make(map[string]interface{})
	if input.Title != nil {
		if *input.Title == "" {
			return nil, fmt.Errorf("%w: title must not be empty", repository.ErrValidation)
		}
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", repository.ErrValidation)
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
