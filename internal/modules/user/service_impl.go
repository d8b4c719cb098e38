package user

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type service struct {
	repo Repository
}

// NewService creates a new credential service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return ErrMissingFields
	}
	creds, err := s.repo.All(ctx)
	if err != nil {
		return err
	}
	if findCredential(creds, username) >= 0 {
		return ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	creds = append(creds, Credential{Username: username, PasswordHash: string(hash)})
	return s.repo.Save(ctx, creds)
}

func (s *service) Exists(ctx context.Context, username string) (bool, error) {
	creds, err := s.repo.All(ctx)
	if err != nil {
		return false, err
	}
	return findCredential(creds, username) >= 0, nil
}

func (s *service) Validate(ctx context.Context, username, password string) (bool, error) {
	creds, err := s.repo.All(ctx)
	if err != nil {
		return false, err
	}
	idx := findCredential(creds, username)
	if idx < 0 {
		return false, nil
	}
	err = bcrypt.CompareHashAndPassword([]byte(creds[idx].PasswordHash), []byte(password))
	return err == nil, nil
}

func findCredential(creds []Credential, username string) int {
	for i := range creds {
		if strings.EqualFold(creds[i].Username, username) {
			return i
		}
	}
	return -1
}
