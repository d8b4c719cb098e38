package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzumara/wms-backend/internal/storage"
)

func newTestService() Service {
	return NewService(NewKVRepository(storage.NewMemoryStore()))
}

func TestRegisterAndValidate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "ann", "s3cret"))

	exists, err := svc.Exists(ctx, "ann")
	require.NoError(t, err)
	assert.True(t, exists)

	ok, err := svc.Validate(ctx, "ann", "s3cret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Validate(ctx, "ann", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.Validate(ctx, "nobody", "s3cret")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegisterCaseInsensitiveUsernames(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "Ann", "pw"))
	assert.ErrorIs(t, svc.Register(ctx, "ann", "pw2"), ErrUsernameTaken)

	exists, err := svc.Exists(ctx, "ANN")
	require.NoError(t, err)
	assert.True(t, exists)

	ok, err := svc.Validate(ctx, "aNN", "pw")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegisterRequiresFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	assert.ErrorIs(t, svc.Register(ctx, "", "pw"), ErrMissingFields)
	assert.ErrorIs(t, svc.Register(ctx, "  ", "pw"), ErrMissingFields)
	assert.ErrorIs(t, svc.Register(ctx, "ann", ""), ErrMissingFields)
}

func TestCredentialsAreHashed(t *testing.T) {
	kv := storage.NewMemoryStore()
	svc := NewService(NewKVRepository(kv))
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "ann", "s3cret"))

	var creds []Credential
	found, err := kv.Get(ctx, storage.KeyUsers, &creds)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, creds, 1)
	assert.NotEqual(t, "s3cret", creds[0].PasswordHash)
	assert.NotContains(t, creds[0].PasswordHash, "s3cret")
}
