package warehouse

import "time"

// Status marks a product or salesman as usable or retired.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Reason classifies a stock transaction.
type Reason string

const (
	ReasonCreation   Reason = "creation"
	ReasonAdjustment Reason = "adjustment"
	ReasonAssignment Reason = "assignment"
)

// Category is a product grouping. Categories come from the seed dataset and
// are never deleted.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Product tracks one SKU. Stock is the single source of truth for on-hand
// quantity; every change to it goes through the ledger engine.
type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	SKU        string    `json:"sku"`
	CategoryID string    `json:"categoryId"`
	Price      float64   `json:"price"`
	Stock      int       `json:"stock"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Salesman receives stock through assignments. The total quantity assigned
// to a salesman is derived from the assignment log, never stored.
type Salesman struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Region    string    `json:"region"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// StockTransaction is an append-only audit record of one signed stock change.
// Records are never mutated or deleted, even when the referenced product is.
type StockTransaction struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Delta     int       `json:"delta"`
	Reason    Reason    `json:"reason"`
	RefID     string    `json:"refId,omitempty"`
	Note      string    `json:"note,omitempty"`
	User      string    `json:"user,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AssignmentItem is one (product, quantity) line of an assignment.
type AssignmentItem struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// Assignment records a transfer of stock to a salesman. Append-only.
type Assignment struct {
	ID         string           `json:"id"`
	SalesmanID string           `json:"salesmanId"`
	Items      []AssignmentItem `json:"items"`
	Note       string           `json:"note,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
}

// UISettings holds presentation defaults that travel with the state tree.
type UISettings struct {
	LowStockThreshold int `json:"lowStockThreshold"`
	PageSize          int `json:"pageSize"`
}

// AppState is the aggregate root. Exactly one instance is live per store;
// mutations replace the whole tree, they never modify it in place.
// Collections are ordered most-recent-first.
type AppState struct {
	Categories   []Category         `json:"categories"`
	Products     []Product          `json:"products"`
	Salesmen     []Salesman         `json:"salesmen"`
	Assignments  []Assignment       `json:"assignments"`
	Transactions []StockTransaction `json:"transactions"`
	UI           UISettings         `json:"ui"`
}

// ProductInput holds the fields for creating a product.
type ProductInput struct {
	Name       string
	SKU        string
	CategoryID string
	Price      float64
	Stock      int
	Status     Status
}

// ProductPatch carries a partial product update; nil fields are left as-is.
type ProductPatch struct {
	Name       *string
	SKU        *string
	CategoryID *string
	Price      *float64
	Status     *Status
}

// SalesmanInput holds the fields for creating a salesman.
type SalesmanInput struct {
	Name   string
	Phone  string
	Region string
	Status Status
}

// SalesmanPatch carries a partial salesman update; nil fields are left as-is.
type SalesmanPatch struct {
	Name   *string
	Phone  *string
	Region *string
	Status *Status
}

// TransactionInput holds the fields for appending a stock transaction.
type TransactionInput struct {
	ProductID string
	Delta     int
	Reason    Reason
	RefID     string
	Note      string
	User      string
}

// AssignmentInput holds the fields for creating an assignment.
type AssignmentInput struct {
	SalesmanID string
	Items      []AssignmentItem
	Note       string
}
