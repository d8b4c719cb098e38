package sales

import (
	"context"

	"github.com/mzumara/wms-backend/internal/modules/warehouse"
)

// Service defines salesman management over the state store.
type Service interface {
	ListSalesmen(ctx context.Context) []warehouse.Salesman
	GetSalesman(ctx context.Context, id string) (warehouse.Salesman, error)
	CreateSalesman(ctx context.Context, req CreateSalesmanRequest) (warehouse.Salesman, error)
	UpdateSalesman(ctx context.Context, id string, req UpdateSalesmanRequest) (warehouse.Salesman, error)
	DeleteSalesman(ctx context.Context, id string) error

	// Summary derives the assigned totals for one salesman from the
	// assignment log; the numbers are never stored.
	Summary(ctx context.Context, id string) (warehouse.SalesmanSummary, error)
}

type service struct {
	store *warehouse.Store
}

// NewService creates a new sales service.
func NewService(store *warehouse.Store) Service {
	return &service{store: store}
}

func (s *service) ListSalesmen(_ context.Context) []warehouse.Salesman {
	return s.store.State().Salesmen
}

func (s *service) GetSalesman(_ context.Context, id string) (warehouse.Salesman, error) {
	for _, sm := range s.store.State().Salesmen {
		if sm.ID == id {
			return sm, nil
		}
	}
	return warehouse.Salesman{}, warehouse.ErrSalesmanNotFound
}

func (s *service) CreateSalesman(ctx context.Context, req CreateSalesmanRequest) (warehouse.Salesman, error) {
	return s.store.CreateSalesman(ctx, warehouse.SalesmanInput{
		Name:   req.Name,
		Phone:  req.Phone,
		Region: req.Region,
		Status: req.Status,
	})
}

func (s *service) UpdateSalesman(ctx context.Context, id string, req UpdateSalesmanRequest) (warehouse.Salesman, error) {
	return s.store.UpdateSalesman(ctx, id, warehouse.SalesmanPatch{
		Name:   req.Name,
		Phone:  req.Phone,
		Region: req.Region,
		Status: req.Status,
	})
}

func (s *service) DeleteSalesman(ctx context.Context, id string) error {
	return s.store.DeleteSalesman(ctx, id)
}

func (s *service) Summary(ctx context.Context, id string) (warehouse.SalesmanSummary, error) {
	if _, err := s.GetSalesman(ctx, id); err != nil {
		return warehouse.SalesmanSummary{}, err
	}
	return warehouse.SummarizeSalesman(s.store.State(), id), nil
}
