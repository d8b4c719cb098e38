package auth

import (
	"context"
	"errors"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service defines the interface for authentication-related business logic.
type Service interface {
	// Login validates the credentials and returns a signed session token.
	Login(ctx context.Context, username, password string) (string, error)

	// Register creates a new credential record.
	Register(ctx context.Context, username, password string) error
}
