package assignment

import "github.com/mzumara/wms-backend/internal/modules/warehouse"

// ItemRequest is one (product, quantity) line of an assignment request.
type ItemRequest struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

// CreateAssignmentRequest holds data for the assignment transaction.
type CreateAssignmentRequest struct {
	SalesmanID string        `json:"salesman_id"`
	Items      []ItemRequest `json:"items"`
	Note       string        `json:"note"`
}

// RecordTransactionRequest appends a bare audit record. It does not touch
// stock; the adjust endpoint exists for the paired operation.
type RecordTransactionRequest struct {
	ProductID string           `json:"product_id"`
	Delta     int              `json:"delta"`
	Reason    warehouse.Reason `json:"reason"`
	RefID     string           `json:"ref_id"`
	Note      string           `json:"note"`
}
