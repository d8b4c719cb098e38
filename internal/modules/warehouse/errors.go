package warehouse

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrSalesmanNotFound = errors.New("salesman not found")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrEmptyAssignment  = errors.New("assignment must contain at least one item")
	ErrInvalidReason    = errors.New("unknown transaction reason")
	ErrNegativeStock    = errors.New("stock cannot go negative")
	ErrInvalidSettings  = errors.New("invalid settings")
)

// InsufficientStockError reports an assignment line that asks for more than
// the product currently has.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %s: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}
