package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"taskboard/internal/model"
)

// UserRepository handles CRUD for users.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", translate(err))
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("find user: %w", translate(err))
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", translate(err))
	}
	return users, nil
}

// Update applies only the supplied fields and returns the updated row.
func (r *UserRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*model.User, error) {
	var user model.User
	db := r.db.WithContext(ctx)
	if err := db.First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("find user: %w", translate(err))
	}
	if err := db.Model(&user).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("update user: %w", translate(err))
	}
	return &user, nil
}

// Delete removes a user. Owned projects and their tasks go with it via
// the cascade constraints.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if tx.Error != nil {
		return fmt.Errorf("delete user: %w", translate(tx.Error))
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("delete user: %w", ErrNotFound)
	}
	return nil
}
