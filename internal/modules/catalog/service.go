package catalog

import (
	"context"

	"github.com/mzumara/wms-backend/internal/modules/warehouse"
)

// Service defines the catalog business logic over the state store.
type Service interface {
	ListCategories(ctx context.Context) []warehouse.Category
	ListProducts(ctx context.Context, lowStockOnly bool) []warehouse.Product
	GetProduct(ctx context.Context, id string) (warehouse.Product, error)
	CreateProduct(ctx context.Context, req CreateProductRequest, actor string) (warehouse.Product, error)
	UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (warehouse.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, id string, req AdjustStockRequest, actor string) (warehouse.StockTransaction, error)
	ProductTransactions(ctx context.Context, id string) []warehouse.StockTransaction
}

type service struct {
	store *warehouse.Store
}

// NewService creates a new catalog service.
func NewService(store *warehouse.Store) Service {
	return &service{store: store}
}

func (s *service) ListCategories(_ context.Context) []warehouse.Category {
	return s.store.State().Categories
}

func (s *service) ListProducts(_ context.Context, lowStockOnly bool) []warehouse.Product {
	state := s.store.State()
	if lowStockOnly {
		return warehouse.LowStockProducts(state)
	}
	return state.Products
}

func (s *service) GetProduct(_ context.Context, id string) (warehouse.Product, error) {
	state := s.store.State()
	for _, p := range state.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return warehouse.Product{}, warehouse.ErrProductNotFound
}

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest, actor string) (warehouse.Product, error) {
	return s.store.CreateProduct(ctx, warehouse.ProductInput{
		Name:       req.Name,
		SKU:        req.SKU,
		CategoryID: req.CategoryID,
		Price:      req.Price,
		Stock:      req.Stock,
		Status:     req.Status,
	}, actor)
}

func (s *service) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (warehouse.Product, error) {
	return s.store.UpdateProduct(ctx, id, warehouse.ProductPatch{
		Name:       req.Name,
		SKU:        req.SKU,
		CategoryID: req.CategoryID,
		Price:      req.Price,
		Status:     req.Status,
	})
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	return s.store.DeleteProduct(ctx, id)
}

func (s *service) AdjustStock(ctx context.Context, id string, req AdjustStockRequest, actor string) (warehouse.StockTransaction, error) {
	return s.store.AdjustStock(ctx, id, req.Delta, req.Note, actor)
}

func (s *service) ProductTransactions(_ context.Context, id string) []warehouse.StockTransaction {
	return warehouse.ProductTransactions(s.store.State(), id)
}
