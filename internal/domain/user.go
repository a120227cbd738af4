package domain

import (
	"context"
	"time"
)

// User represents a registered account. Users are never updated or deleted.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts the user and sets ID and CreatedAt. Returns
	// ErrDuplicateEmail when the exact email is already registered.
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
