package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"taskboard/internal/model"
)

// ProjectRepository handles CRUD for projects.
type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return fmt.Errorf("create project: %w", translate(err))
	}
	return nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uint) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, fmt.Errorf("find project: %w", translate(err))
	}
	return &project, nil
}

// List returns all projects, or only those owned by userID when set.
func (r *ProjectRepository) List(ctx context.Context, userID *uint) ([]model.Project, error) {
	q := r.db.WithContext(ctx).Order("id ASC")
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	var projects []model.Project
	if err := q.Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", translate(err))
	}
	return projects, nil
}

// Update applies only the supplied fields and returns the updated row.
func (r *ProjectRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*model.Project, error) {
	var project model.Project
	db := r.db.WithContext(ctx)
	if err := db.First(&project, id).Error; err != nil {
		return nil, fmt.Errorf("find project: %w", translate(err))
	}
	if err := db.Model(&project).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("update project: %w", translate(err))
	}
	return &project, nil
}

// Delete removes a project; its tasks go with it via the cascade constraint.
func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&model.Project{}, id)
	if tx.Error != nil {
		return fmt.Errorf("delete project: %w", translate(tx.Error))
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("delete project: %w", ErrNotFound)
	}
	return nil
}
