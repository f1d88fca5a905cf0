package service

import (
	"context"
	"fmt"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// deadlineLayout is the wire format for task deadlines.
const deadlineLayout = "2006-01-02"

// CreateTaskInput represents data required to create a task. Status
// defaults to todo; Deadline is an optional YYYY-MM-DD string.
type CreateTaskInput struct {
	ProjectID uint
	Title     string
	Status    string
	Deadline  string
}

// UpdateTaskInput holds the mutable task fields; nil means unchanged.
type UpdateTaskInput struct {
	Title    *string
	Status   *string
	Deadline *string
}

// TaskService wraps task-related validation, persistence and aggregation.
type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Create(ctx context.Context, input CreateTaskInput) (*model.Task, error) {
	if input.ProjectID == 0 {
		return nil, fmt.Errorf("%w: project_id is required", repository.ErrValidation)
	}
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", repository.ErrValidation)
	}

	status := model.StatusTodo
	if input.Status != "" {
		status = model.TaskStatus(input.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: status %q is not one of todo, in-progress, done", repository.ErrValidation, input.Status)
		}
	}

	deadline, err := parseDeadline(input.Deadline)
	if err != nil {
		return nil, err
	}

	task := model.Task{
		ProjectID: input.ProjectID,
		Title:     input.Title,
		Status:    status,
		Deadline:  deadline,
	}
	if err := s.repo.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) Get(ctx context.Context, id uint) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns tasks narrowed by optional project and status filters.
func (s *TaskService) List(ctx context.Context, projectID *uint, status *string) ([]model.Task, error) {
	filter := repository.TaskFilter{ProjectID: projectID}
	if status != nil {
		st := model.TaskStatus(*status)
		if !st.Valid() {
			return nil, fmt.Errorf("%w: status %q is not one of todo, in-progress, done", repository.ErrValidation, *status)
		}
		filter.Status = &st
	}
	return s.repo.List(ctx, filter)
}

func (s *TaskService) ListOverdue(ctx context.Context, projectID *uint, now time.Time) ([]model.Task, error) {
	return s.repo.ListOverdue(ctx, projectID, now)
}

func (s *TaskService) ListUpcoming(ctx context.Context, projectID *uint, now time.Time, days int) ([]model.Task, error) {
	if days <= 0 {
		days = 7
	}
	return s.repo.ListUpcoming(ctx, projectID, now, time.Duration(days)*24*time.Hour)
}

func (s *TaskService) Update(ctx context.Context, id uint, input UpdateTaskInput) (*model.Task, error) {
	fields := make(map[string]interface{})
	if input.Title != nil {
		if *input.Title == "" {
			return nil, fmt.Errorf("%w: title must not be empty", repository.ErrValidation)
		}
		fields["title"] = *input.Title
	}
	if input.Status != nil {
		status := model.TaskStatus(*input.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: status %q is not one of todo, in-progress, done", repository.ErrValidation, *input.Status)
		}
		fields["status"] = status
	}
	if input.Deadline != nil {
		deadline, err := parseDeadline(*input.Deadline)
		if err != nil {
			return nil, err
		}
		fields["deadline"] = deadline
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", repository.ErrValidation)
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *TaskService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// Statistics counts tasks grouped by status, optionally scoped to one
// project. Statuses without tasks are omitted.
func (s *TaskService) Statistics(ctx context.Context, projectID *uint) (map[model.TaskStatus]int64, error) {
	return s.repo.CountByStatus(ctx, projectID)
}

func parseDeadline(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(deadlineLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: deadline %q is not a YYYY-MM-DD date", repository.ErrValidation, raw)
	}
	return &t, nil
}
