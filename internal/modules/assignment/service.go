package assignment

import (
	"context"

	"github.com/mzumara/wms-backend/internal/modules/warehouse"
)

// Service defines the assignment and transaction-log business logic.
type Service interface {
	// CreateAssignment runs the all-or-nothing stock transfer: every line
	// validated against one snapshot, then products, assignment record and
	// per-line transactions committed as a single new tree.
	CreateAssignment(ctx context.Context, req CreateAssignmentRequest, actor string) (warehouse.Assignment, error)

	ListAssignments(ctx context.Context) []warehouse.AssignmentView
	ListTransactions(ctx context.Context) []warehouse.TransactionView
	RecordTransaction(ctx context.Context, req RecordTransactionRequest, actor string) (warehouse.StockTransaction, error)
}

type service struct {
	store *warehouse.Store
}

// NewService creates a new assignment service.
func NewService(store *warehouse.Store) Service {
	return &service{store: store}
}

func (s *service) CreateAssignment(ctx context.Context, req CreateAssignmentRequest, actor string) (warehouse.Assignment, error) {
	items := make([]warehouse.AssignmentItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, warehouse.AssignmentItem{ProductID: it.ProductID, Qty: it.Qty})
	}
	return s.store.CreateAssignment(ctx, warehouse.AssignmentInput{
		SalesmanID: req.SalesmanID,
		Items:      items,
		Note:       req.Note,
	}, actor)
}

func (s *service) ListAssignments(_ context.Context) []warehouse.AssignmentView {
	return warehouse.ResolveAssignments(s.store.State())
}

func (s *service) ListTransactions(_ context.Context) []warehouse.TransactionView {
	return warehouse.ResolveTransactions(s.store.State())
}

func (s *service) RecordTransaction(ctx context.Context, req RecordTransactionRequest, actor string) (warehouse.StockTransaction, error) {
	return s.store.RecordTransaction(ctx, warehouse.TransactionInput{
		ProductID: req.ProductID,
		Delta:     req.Delta,
		Reason:    req.Reason,
		RefID:     req.RefID,
		Note:      req.Note,
		User:      actor,
	})
}
