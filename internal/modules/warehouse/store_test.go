package warehouse

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzumara/wms-backend/internal/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.MemoryStore) {
	t.Helper()
	kv := storage.NewMemoryStore()
	st, err := NewStore(context.Background(), kv, zerolog.Nop())
	require.NoError(t, err)
	return st, kv
}

func TestStoreSeedsOnFirstUse(t *testing.T) {
	st, kv := newTestStore(t)

	s := st.State()
	assert.Len(t, s.Categories, 10)
	assert.Len(t, s.Products, 24)
	assert.Len(t, s.Salesmen, 5)
	assert.Empty(t, s.Assignments)
	assert.Empty(t, s.Transactions)
	assert.Equal(t, DefaultUISettings(), s.UI)
	for _, p := range s.Products {
		assert.GreaterOrEqual(t, p.Stock, 5)
		assert.GreaterOrEqual(t, p.Price, 10.0)
	}

	assert.Equal(t, 1, kv.Writes(), "seed persisted immediately")
}

func TestStoreLoadsExistingState(t *testing.T) {
	kv := storage.NewMemoryStore()
	ctx := context.Background()

	first, err := NewStore(ctx, kv, zerolog.Nop())
	require.NoError(t, err)
	_, err = first.CreateSalesman(ctx, SalesmanInput{Name: "Zed", Region: "West"})
	require.NoError(t, err)

	second, err := NewStore(ctx, kv, zerolog.Nop())
	require.NoError(t, err)
	assert.Len(t, second.State().Salesmen, 6, "no reseed over persisted state")
	assert.Equal(t, "Zed", second.State().Salesmen[0].Name)
}

// getState called twice without a mutation in between returns equal trees.
func TestStateIdempotentRead(t *testing.T) {
	st, _ := newTestStore(t)
	assert.Equal(t, st.State(), st.State())
}

func TestStorePersistsEveryCommit(t *testing.T) {
	st, kv := newTestStore(t)
	ctx := context.Background()

	base := kv.Writes()
	_, err := st.CreateProduct(ctx, ProductInput{Name: "P", SKU: "S", CategoryID: "1"}, "")
	require.NoError(t, err)
	assert.Equal(t, base+1, kv.Writes())

	// Rejected mutations publish and persist nothing.
	before := st.State()
	_, err = st.CreateAssignment(ctx, AssignmentInput{SalesmanID: "ghost", Items: []AssignmentItem{{ProductID: "1", Qty: 1}}}, "")
	require.Error(t, err)
	assert.Equal(t, before, st.State())
	assert.Equal(t, base+1, kv.Writes())
}

func TestStoreCommitSurvivesReload(t *testing.T) {
	kv := storage.NewMemoryStore()
	ctx := context.Background()

	st, err := NewStore(ctx, kv, zerolog.Nop())
	require.NoError(t, err)

	target := st.State().Products[0]
	salesman := st.State().Salesmen[0]
	a, err := st.CreateAssignment(ctx, AssignmentInput{
		SalesmanID: salesman.ID,
		Items:      []AssignmentItem{{ProductID: target.ID, Qty: 2}},
	}, "ann")
	require.NoError(t, err)

	reloaded, err := NewStore(ctx, kv, zerolog.Nop())
	require.NoError(t, err)
	s := reloaded.State()

	require.Len(t, s.Assignments, 1)
	assert.Equal(t, a.ID, s.Assignments[0].ID)
	require.Len(t, s.Transactions, 1)
	assert.Equal(t, a.ID, s.Transactions[0].RefID)
	assert.Equal(t, target.Stock-2, s.Products[0].Stock)
}
