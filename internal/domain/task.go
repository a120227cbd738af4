package domain

import (
	"context"
	"time"
)

// Task is a to-do item owned by exactly one user.
type Task struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskPatch carries a partial update. Nil fields keep their current value.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}

// TaskRepository defines persistence operations for tasks. Every lookup
// and mutation is scoped by owner; a task owned by someone else is
// reported as ErrNotFound.
type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	ListByUser(ctx context.Context, userID int64) ([]Task, error)
	GetOwned(ctx context.Context, id, userID int64) (*Task, error)
	// UpdateOwned writes title, description, completed and updated_at.
	UpdateOwned(ctx context.Context, task *Task) error
	DeleteOwned(ctx context.Context, id, userID int64) error
}
