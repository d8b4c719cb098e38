package user

import "context"

// Credential is one stored login. Usernames are unique case-insensitively;
// only the bcrypt hash of the password is kept.
type Credential struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}

// Repository defines credential storage. The whole credential list is one
// document in the key-value store, read and written wholesale.
type Repository interface {
	All(ctx context.Context) ([]Credential, error)
	Save(ctx context.Context, creds []Credential) error
}
