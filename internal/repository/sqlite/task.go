package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/tasklist/internal/domain"
)

// TaskRepository implements domain.TaskRepository using SQLite.
// Every statement filters on both the task id and the owning user id.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new SQLite-backed TaskRepository.
func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db.SqlDB}
}

const taskColumns = `id, user_id, title, description, completed, created_at, updated_at`

// Create inserts the task. CreatedAt and UpdatedAt must be set by the caller.
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (user_id, title, description, completed, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		task.UserID, task.Title, task.Description, task.Completed, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get task id: %w", err)
	}

	task.ID = id
	return nil
}

// ListByUser returns the user's tasks, most recently created first.
func (r *TaskRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+`
		 FROM tasks WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) GetOwned(ctx context.Context, id, userID int64) (*domain.Task, error) {
	t := &domain.Task{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+`
		 FROM tasks WHERE id = ? AND user_id = ?`, id, userID,
	).Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query task: %w", err)
	}
	return t, nil
}

func (r *TaskRepository) UpdateOwned(ctx context.Context, task *domain.Task) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ?, completed = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		task.Title, task.Description, task.Completed, task.UpdatedAt, task.ID, task.UserID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return requireOneRow(result)
}

func (r *TaskRepository) DeleteOwned(ctx context.Context, id, userID int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return requireOneRow(result)
}

func requireOneRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
