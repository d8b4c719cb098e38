package catalog

import "github.com/mzumara/wms-backend/internal/modules/warehouse"

// CreateProductRequest holds data for creating a product. Initial stock is
// optional; when positive it is logged as a "creation" transaction in the
// same commit.
type CreateProductRequest struct {
	Name       string           `json:"name"`
	SKU        string           `json:"sku"`
	CategoryID string           `json:"category_id"`
	Price      float64          `json:"price"`
	Stock      int              `json:"stock"`
	Status     warehouse.Status `json:"status"`
}

// UpdateProductRequest is a merge patch; absent fields are left unchanged.
// Stock is deliberately not patchable here — stock changes go through the
// adjust endpoint so they are always paired with an audit record.
type UpdateProductRequest struct {
	Name       *string           `json:"name"`
	SKU        *string           `json:"sku"`
	CategoryID *string           `json:"category_id"`
	Price      *float64          `json:"price"`
	Status     *warehouse.Status `json:"status"`
}

// AdjustStockRequest applies a signed delta to a product's stock.
type AdjustStockRequest struct {
	Delta int    `json:"delta"`
	Note  string `json:"note"`
}
