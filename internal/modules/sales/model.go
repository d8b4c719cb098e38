package sales

import "github.com/mzumara/wms-backend/internal/modules/warehouse"

// CreateSalesmanRequest holds data for creating a salesman.
type CreateSalesmanRequest struct {
	Name   string           `json:"name"`
	Phone  string           `json:"phone"`
	Region string           `json:"region"`
	Status warehouse.Status `json:"status"`
}

// UpdateSalesmanRequest is a merge patch; absent fields are left unchanged.
type UpdateSalesmanRequest struct {
	Name   *string           `json:"name"`
	Phone  *string           `json:"phone"`
	Region *string           `json:"region"`
	Status *warehouse.Status `json:"status"`
}
