package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type document struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	var out document
	found, err := fs.Get(ctx, KeyAppState, &out)
	require.NoError(t, err)
	assert.False(t, found, "missing key reports not found, no error")

	in := document{Name: "tree", Count: 3}
	require.NoError(t, fs.Set(ctx, KeyAppState, in))

	found, err = fs.Get(ctx, KeyAppState, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestFileStoreOverwrites(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, fs.Set(ctx, "k", document{Count: 1}))
	require.NoError(t, fs.Set(ctx, "k", document{Count: 2}))

	var out document
	found, err := fs.Get(ctx, "k", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, out.Count)
}

func TestFileStoreCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

	var out document
	_, err = fs.Get(context.Background(), "bad", &out)
	assert.Error(t, err)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ms := NewMemoryStore()
	ctx := context.Background()

	var out document
	found, err := ms.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, ms.Set(ctx, "k", document{Name: "x"}))
	found, err = ms.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "x", out.Name)
	assert.Equal(t, 1, ms.Writes())
}
