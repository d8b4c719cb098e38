package warehouse

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mzumara/wms-backend/internal/storage"
)

// Store owns the live AppState tree and exposes the engine's operations
// bound to it. Writers are serialized; each successful mutation publishes
// the replacement tree and hands it to the persistence collaborator. A
// persist failure does not roll the commit back (the tree has already been
// published), it is logged and the store carries on.
type Store struct {
	mu     sync.Mutex
	state  AppState
	engine *Engine
	kv     storage.Store
	log    zerolog.Logger
}

// NewStore loads the persisted tree, seeding the demo dataset when none
// exists yet.
func NewStore(ctx context.Context, kv storage.Store, log zerolog.Logger) (*Store, error) {
	var state AppState
	found, err := kv.Get(ctx, storage.KeyAppState, &state)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	if !found {
		state = SeedState()
		if err := kv.Set(ctx, storage.KeyAppState, state); err != nil {
			return nil, fmt.Errorf("seed state: %w", err)
		}
		log.Info().
			Int("products", len(state.Products)).
			Int("salesmen", len(state.Salesmen)).
			Msg("seeded demo dataset")
	}
	return &Store{state: state, engine: NewEngine(), kv: kv, log: log}, nil
}

// State returns the current tree. The tree is immutable by construction, so
// the snapshot stays valid however long the caller holds it.
func (st *Store) State() AppState {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state
}

func (st *Store) CreateProduct(ctx context.Context, in ProductInput, actor string) (Product, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	next, p := st.engine.CreateProduct(st.state, in, actor)
	st.commit(ctx, next)
	return p, nil
}

func (st *Store) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (Product, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	next, p, err := st.engine.UpdateProduct(st.state, id, patch)
	if err != nil {
		return Product{}, err
	}
	st.commit(ctx, next)
	return p, nil
}

func (st *Store) DeleteProduct(ctx context.Context, id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	next, err := st.engine.DeleteProduct(st.state, id)
	if err != nil {
		return err
	}
	st.commit(ctx, next)
	return nil
}

func (st *Store) CreateSalesman(ctx context.Context, in SalesmanInput) (Salesman, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	next, sm := st.engine.CreateSalesman(st.state, in)
	st.commit(ctx, next)
	return sm, nil
}

func (st *Store) UpdateSalesman(ctx context.Context, id string, patch SalesmanPatch) (Salesman, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	next, sm, err := st.engine.UpdateSalesman(st.state, id, patch)
	if err != nil {
		return Salesman{}, err
	}
	st.commit(ctx, next)
	return sm, nil
}

func (st *Store) DeleteSalesman(ctx context.Context, id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	next, err := st.engine.DeleteSalesman(st.state, id)
	if err != nil {
		return err
	}
	st.commit(ctx, next)
	return nil
}

func (st *Store) RecordTransaction(ctx context.Context, in TransactionInput) (StockTransaction, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	next, tx, err := st.engine.RecordTransaction(st.state, in)
	if err != nil {
		return StockTransaction{}, err
	}
	st.commit(ctx, next)
	return tx, nil
}

func (st *Store) AdjustStock(ctx context.Context, productID string, delta int, note, actor string) (StockTransaction, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	next, tx, err := st.engine.AdjustStock(st.state, productID, delta, note, actor)
	if err != nil {
		return StockTransaction{}, err
	}
	st.commit(ctx, next)
	return tx, nil
}

func (st *Store) CreateAssignment(ctx context.Context, in AssignmentInput, actor string) (Assignment, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	next, a, err := st.engine.CreateAssignment(st.state, in, actor)
	if err != nil {
		return Assignment{}, err
	}
	st.commit(ctx, next)
	return a, nil
}

func (st *Store) UpdateSettings(ctx context.Context, ui UISettings) (UISettings, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	next, err := st.engine.UpdateSettings(st.state, ui)
	if err != nil {
		return UISettings{}, err
	}
	st.commit(ctx, next)
	return next.UI, nil
}

// commit publishes the replacement tree and persists it. Callers hold st.mu.
func (st *Store) commit(ctx context.Context, next AppState) {
	st.state = next
	if err := st.kv.Set(ctx, storage.KeyAppState, next); err != nil {
		st.log.Error().Err(err).Msg("persist state")
	}
}
