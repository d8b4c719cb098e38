package user

import (
	"context"

	"github.com/mzumara/wms-backend/internal/storage"
)

type kvRepo struct {
	kv storage.Store
}

// NewKVRepository stores the credential list as one document in the
// key-value store.
func NewKVRepository(kv storage.Store) Repository {
	return &kvRepo{kv: kv}
}

func (r *kvRepo) All(ctx context.Context) ([]Credential, error) {
	var creds []Credential
	found, err := r.kv.Get(ctx, storage.KeyUsers, &creds)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return creds, nil
}

func (r *kvRepo) Save(ctx context.Context, creds []Credential) error {
	return r.kv.Set(ctx, storage.KeyUsers, creds)
}
