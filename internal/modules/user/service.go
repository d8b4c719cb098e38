package user

import (
	"context"
	"errors"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrMissingFields = errors.New("username and password are required")
)

// Service defines the interface for credential management.
type Service interface {
	Register(ctx context.Context, username, password string) error
	Exists(ctx context.Context, username string) (bool, error)
	Validate(ctx context.Context, username, password string) (bool, error)
}
