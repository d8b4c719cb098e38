package dashboard

import (
	"context"
	"time"

	"github.com/mzumara/wms-backend/internal/modules/warehouse"
)

// Service derives the dashboard summary from the state tree.
type Service interface {
	Summary(ctx context.Context) warehouse.DashboardSummary
}

type service struct {
	store *warehouse.Store
	now   func() time.Time
}

// NewService creates a new dashboard service.
func NewService(store *warehouse.Store) Service {
	return &service{store: store, now: time.Now}
}

func (s *service) Summary(_ context.Context) warehouse.DashboardSummary {
	return warehouse.Summarize(s.store.State(), s.now())
}
