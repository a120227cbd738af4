package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/msomdec/tasklist/internal/domain"
)

// TaskService applies validation on top of the owner-scoped task
// repository. A task belonging to another user is always reported as
// domain.ErrNotFound.
type TaskService struct {
	tasks domain.TaskRepository
	now   func() time.Time
}

// NewTaskService creates a new TaskService.
func NewTaskService(tasks domain.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks, now: time.Now}
}

// WithClock returns a copy of s that timestamps mutations with now.
func (s *TaskService) WithClock(now func() time.Time) *TaskService {
	c := *s
	c.now = now
	return &c
}

// ListForUser returns the user's tasks, most recently created first.
func (s *TaskService) ListForUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Create adds a task for userID. The title must not be blank.
func (s *TaskService) Create(ctx context.Context, userID int64, title, description string) (*domain.Task, error) {
	if isBlank(title) {
		return nil, domain.ErrEmptyTitle
	}

	now := s.now().UTC()
	task := &domain.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// GetOwned returns the task if it exists and belongs to userID.
func (s *TaskService) GetOwned(ctx context.Context, taskID, userID int64) (*domain.Task, error) {
	return s.tasks.GetOwned(ctx, taskID, userID)
}

// UpdateOwned applies patch to a task owned by userID and returns the stored
// result. Ownership is checked before the patch is validated, so a foreign
// task is ErrNotFound even when the patch is invalid.
//
// The read and the write are separate statements. Two concurrent updates of
// the same task by its owner are not serialized against each other; the
// last write wins, including its updated_at.
func (s *TaskService) UpdateOwned(ctx context.Context, taskID, userID int64, patch domain.TaskPatch) (*domain.Task, error) {
	task, err := s.tasks.GetOwned(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if isBlank(*patch.Title) {
			return nil, domain.ErrEmptyTitle
		}
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}
	task.UpdatedAt = s.now().UTC()

	if err := s.tasks.UpdateOwned(ctx, task); err != nil {
		return nil, err
	}

	return s.tasks.GetOwned(ctx, taskID, userID)
}

// DeleteOwned removes a task owned by userID.
func (s *TaskService) DeleteOwned(ctx context.Context, taskID, userID int64) error {
	return s.tasks.DeleteOwned(ctx, taskID, userID)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
