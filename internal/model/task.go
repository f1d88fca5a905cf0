package model

import "time"

// TaskStatus is the closed set of workflow states a task can be in.
// Transitions are unconstrained; any status may move to any other.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusDone       TaskStatus = "done"
)

// Statuses lists every valid task status.
func Statuses() []TaskStatus {
	return []TaskStatus{StatusTodo, StatusInProgress, StatusDone}
}

// Valid reports whether s is one of the enumerated statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task is a single item of work inside a project.
type Task struct {
	ID        uint       `gorm:"primaryKey"`
	ProjectID uint       `gorm:"index;not null"`
	Title     string     `gorm:"not null"`
	Status    TaskStatus `gorm:"type:text;default:'todo';check:chk_tasks_status,status IN ('todo','in-progress','done')"`
	Deadline  *time.Time
	CreatedAt time.Time
}
