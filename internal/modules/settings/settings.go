package settings

import (
	"context"

	"github.com/mzumara/wms-backend/internal/modules/warehouse"
)

// Service reads and updates the UI settings carried by the state tree.
type Service interface {
	Get(ctx context.Context) warehouse.UISettings
	Update(ctx context.Context, ui warehouse.UISettings) (warehouse.UISettings, error)
}

type service struct {
	store *warehouse.Store
}

// NewService creates a new settings service.
func NewService(store *warehouse.Store) Service {
	return &service{store: store}
}

func (s *service) Get(_ context.Context) warehouse.UISettings {
	return s.store.State().UI
}

func (s *service) Update(ctx context.Context, ui warehouse.UISettings) (warehouse.UISettings, error) {
	return s.store.UpdateSettings(ctx, ui)
}
