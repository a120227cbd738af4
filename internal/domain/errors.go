package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidInput   = errors.New("invalid input")
)

// Validation failures.
var (
	ErrEmptyTitle = fmt.Errorf("%w: title is required", ErrInvalidInput)
)

// Authentication failures. Each wraps ErrUnauthorized so callers that only
// care about "not authenticated" can match on that.
var (
	ErrMissingToken       = fmt.Errorf("%w: missing token", ErrUnauthorized)
	ErrMalformedHeader    = fmt.Errorf("%w: malformed authorization header", ErrUnauthorized)
	ErrTokenExpired       = fmt.Errorf("%w: token expired", ErrUnauthorized)
	ErrTokenMalformed     = fmt.Errorf("%w: token malformed", ErrUnauthorized)
	ErrUnknownUser        = fmt.Errorf("%w: unknown user", ErrUnauthorized)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
)
