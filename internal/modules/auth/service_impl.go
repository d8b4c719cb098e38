package auth

import (
	"context"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/mzumara/wms-backend/internal/modules/user"
)

type service struct {
	users  user.Service
	secret []byte
}

// NewService creates a new auth service signing tokens with the given key.
func NewService(users user.Service, secret []byte) Service {
	return &service{users: users, secret: secret}
}

func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", user.ErrMissingFields
	}
	ok, err := s.users.Validate(ctx, username, password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	claims := &jwt.StandardClaims{
		Subject:   username,
		ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *service) Register(ctx context.Context, username, password string) error {
	return s.users.Register(ctx, username, password)
}
