package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"taskboard/internal/model"
)

// TaskRepository handles CRUD and aggregation for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// TaskFilter narrows List results. Nil fields are ignored; set fields
// combine with logical AND.
type TaskFilter struct {
	ProjectID *uint
	Status    *model.TaskStatus
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", translate(err))
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, fmt.Errorf("find task: %w", translate(err))
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context, filter TaskFilter) ([]model.Task, error) {
	q := r.db.WithContext(ctx).Order("id ASC")
	if filter.ProjectID != nil {
		q = q.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	var tasks []model.Task
	if err := q.Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", translate(err))
	}
	return tasks, nil
}

// ListOverdue returns unfinished tasks whose deadline is before now,
// optionally scoped to one project.
func (r *TaskRepository) ListOverdue(ctx context.Context, projectID *uint, now time.Time) ([]model.Task, error) {
	q := r.db.WithContext(ctx).
		Where("deadline IS NOT NULL AND deadline < ? AND status <> ?", now, model.StatusDone).
		Order("id ASC")
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	var tasks []model.Task
	if err := q.Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list overdue tasks: %w", translate(err))
	}
	return tasks, nil
}

// ListUpcoming returns unfinished tasks due between now and the end of
// the window, optionally scoped to one project.
func (r *TaskRepository) ListUpcoming(ctx context.Context, projectID *uint, now time.Time, window time.Duration) ([]model.Task, error) {
	q := r.db.WithContext(ctx).
		Where("deadline IS NOT NULL AND deadline >= ? AND deadline <= ? AND status <> ?", now, now.Add(window), model.StatusDone).
		Order("id ASC")
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	var tasks []model.Task
	if err := q.Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list upcoming tasks: %w", translate(err))
	}
	return tasks, nil
}

// Update applies only the supplied fields and returns the updated row.
func (r *TaskRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*model.Task, error) {
	var task model.Task
	db := r.db.WithContext(ctx)
	if err := db.First(&task, id).Error; err != nil {
		return nil, fmt.Errorf("find task: %w", translate(err))
	}
	if err := db.Model(&task).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("update task: %w", translate(err))
	}
	return &task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&model.Task{}, id)
	if tx.Error != nil {
		return fmt.Errorf("delete task: %w", translate(tx.Error))
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("delete task: %w", ErrNotFound)
	}
	return nil
}

// CountByStatus groups tasks by status, optionally scoped to one
// project. Statuses with no tasks are absent from the result.
func (r *TaskRepository) CountByStatus(ctx context.Context, projectID *uint) (map[model.TaskStatus]int64, error) {
	type row struct {
		Status model.TaskStatus
		Count  int64
	}
	q := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Select("status, COUNT(*) AS count").
		Group("status")
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	var rows []row
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("count tasks by status: %w", translate(err))
	}
	counts := make(map[model.TaskStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
