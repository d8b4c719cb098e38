package warehouse

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Engine computes state transitions over the AppState tree. Every operation
// is pure: it takes the current tree, returns a replacement tree, and never
// modifies the input. Collections that change are rebuilt; untouched ones are
// shared with the previous tree.
type Engine struct {
	now   func() time.Time
	newID func() string
}

// NewEngine creates an engine using wall-clock time and random ids.
func NewEngine() *Engine {
	return &Engine{now: time.Now, newID: uuid.NewString}
}

// CreateProduct inserts a new product at the front of the collection. When
// the initial stock is positive, a matching "creation" transaction is part
// of the same transition, so the ledger sum holds from the product's birth.
func (e *Engine) CreateProduct(s AppState, in ProductInput, actor string) (AppState, Product) {
	now := e.now()
	p := Product{
		ID:         e.newID(),
		Name:       in.Name,
		SKU:        in.SKU,
		CategoryID: in.CategoryID,
		Price:      in.Price,
		Stock:      in.Stock,
		Status:     in.Status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if p.Status == "" {
		p.Status = StatusActive
	}
	s.Products = prepend(p, s.Products)
	if in.Stock > 0 {
		tx := StockTransaction{
			ID:        e.newID(),
			ProductID: p.ID,
			Delta:     in.Stock,
			Reason:    ReasonCreation,
			Note:      "Initial stock",
			User:      actor,
			CreatedAt: now,
		}
		s.Transactions = prepend(tx, s.Transactions)
	}
	return s, p
}

// UpdateProduct merges the patch into the product and refreshes UpdatedAt.
func (e *Engine) UpdateProduct(s AppState, id string, patch ProductPatch) (AppState, Product, error) {
	idx := findProduct(s.Products, id)
	if idx < 0 {
		return s, Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	products := make([]Product, len(s.Products))
	copy(products, s.Products)

	p := &products[idx]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	p.UpdatedAt = e.now()

	s.Products = products
	return s, *p, nil
}

// DeleteProduct removes the product. Historical transactions and assignments
// referencing it are left untouched; readers resolve the dangling id to a
// display fallback.
func (e *Engine) DeleteProduct(s AppState, id string) (AppState, error) {
	idx := findProduct(s.Products, id)
	if idx < 0 {
		return s, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	products := make([]Product, 0, len(s.Products)-1)
	products = append(products, s.Products[:idx]...)
	products = append(products, s.Products[idx+1:]...)
	s.Products = products
	return s, nil
}

// CreateSalesman inserts a new salesman at the front of the collection.
func (e *Engine) CreateSalesman(s AppState, in SalesmanInput) (AppState, Salesman) {
	sm := Salesman{
		ID:        e.newID(),
		Name:      in.Name,
		Phone:     in.Phone,
		Region:    in.Region,
		Status:    in.Status,
		CreatedAt: e.now(),
	}
	if sm.Status == "" {
		sm.Status = StatusActive
	}
	s.Salesmen = prepend(sm, s.Salesmen)
	return s, sm
}

// UpdateSalesman merges the patch into the salesman.
func (e *Engine) UpdateSalesman(s AppState, id string, patch SalesmanPatch) (AppState, Salesman, error) {
	idx := findSalesman(s.Salesmen, id)
	if idx < 0 {
		return s, Salesman{}, fmt.Errorf("%w: %s", ErrSalesmanNotFound, id)
	}
	salesmen := make([]Salesman, len(s.Salesmen))
	copy(salesmen, s.Salesmen)

	sm := &salesmen[idx]
	if patch.Name != nil {
		sm.Name = *patch.Name
	}
	if patch.Phone != nil {
		sm.Phone = *patch.Phone
	}
	if patch.Region != nil {
		sm.Region = *patch.Region
	}
	if patch.Status != nil {
		sm.Status = *patch.Status
	}

	s.Salesmen = salesmen
	return s, *sm, nil
}

// DeleteSalesman removes the salesman. Assignments referencing it survive.
func (e *Engine) DeleteSalesman(s AppState, id string) (AppState, error) {
	idx := findSalesman(s.Salesmen, id)
	if idx < 0 {
		return s, fmt.Errorf("%w: %s", ErrSalesmanNotFound, id)
	}
	salesmen := make([]Salesman, 0, len(s.Salesmen)-1)
	salesmen = append(salesmen, s.Salesmen[:idx]...)
	salesmen = append(salesmen, s.Salesmen[idx+1:]...)
	s.Salesmen = salesmen
	return s, nil
}

// RecordTransaction appends an audit record at the front of the log. It does
// NOT touch product stock; callers that want the paired behaviour use
// AdjustStock instead.
func (e *Engine) RecordTransaction(s AppState, in TransactionInput) (AppState, StockTransaction, error) {
	switch in.Reason {
	case ReasonCreation, ReasonAdjustment, ReasonAssignment:
	default:
		return s, StockTransaction{}, fmt.Errorf("%w: %q", ErrInvalidReason, in.Reason)
	}
	tx := StockTransaction{
		ID:        e.newID(),
		ProductID: in.ProductID,
		Delta:     in.Delta,
		Reason:    in.Reason,
		RefID:     in.RefID,
		Note:      in.Note,
		User:      in.User,
		CreatedAt: e.now(),
	}
	s.Transactions = prepend(tx, s.Transactions)
	return s, tx, nil
}

// AdjustStock applies a signed delta to a product's stock and logs the
// matching "adjustment" transaction in the same transition. The result may
// not go below zero.
func (e *Engine) AdjustStock(s AppState, productID string, delta int, note, actor string) (AppState, StockTransaction, error) {
	idx := findProduct(s.Products, productID)
	if idx < 0 {
		return s, StockTransaction{}, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}
	if s.Products[idx].Stock+delta < 0 {
		return s, StockTransaction{}, fmt.Errorf("%w: %s", ErrNegativeStock, s.Products[idx].Name)
	}

	now := e.now()
	products := make([]Product, len(s.Products))
	copy(products, s.Products)
	products[idx].Stock += delta
	products[idx].UpdatedAt = now

	tx := StockTransaction{
		ID:        e.newID(),
		ProductID: productID,
		Delta:     delta,
		Reason:    ReasonAdjustment,
		Note:      note,
		User:      actor,
		CreatedAt: now,
	}

	s.Products = products
	s.Transactions = prepend(tx, s.Transactions)
	return s, tx, nil
}

// CreateAssignment is the all-or-nothing transfer of stock to a salesman.
// Every line is validated against the same snapshot before anything is
// applied; on success the decremented products, the assignment record, and
// one transaction per line are committed as a single new tree.
func (e *Engine) CreateAssignment(s AppState, in AssignmentInput, actor string) (AppState, Assignment, error) {
	if findSalesman(s.Salesmen, in.SalesmanID) < 0 {
		return s, Assignment{}, fmt.Errorf("%w: %s", ErrSalesmanNotFound, in.SalesmanID)
	}
	if len(in.Items) == 0 {
		return s, Assignment{}, ErrEmptyAssignment
	}

	// Validation pass. Quantities are accumulated per product so that
	// duplicate lines cannot oversell between them.
	need := make(map[string]int, len(in.Items))
	for _, it := range in.Items {
		if it.Qty <= 0 {
			return s, Assignment{}, fmt.Errorf("%w: product %s", ErrInvalidQuantity, it.ProductID)
		}
		idx := findProduct(s.Products, it.ProductID)
		if idx < 0 {
			return s, Assignment{}, fmt.Errorf("%w: %s", ErrProductNotFound, it.ProductID)
		}
		p := s.Products[idx]
		need[it.ProductID] += it.Qty
		if need[it.ProductID] > p.Stock {
			return s, Assignment{}, &InsufficientStockError{
				ProductID:   p.ID,
				ProductName: p.Name,
				Requested:   need[it.ProductID],
				Available:   p.Stock,
			}
		}
	}

	// Mutation pass. Nothing above this point has changed the tree.
	now := e.now()
	a := Assignment{
		ID:         e.newID(),
		SalesmanID: in.SalesmanID,
		Items:      append([]AssignmentItem(nil), in.Items...),
		Note:       in.Note,
		CreatedAt:  now,
	}

	products := make([]Product, len(s.Products))
	copy(products, s.Products)
	for i := range products {
		if qty, ok := need[products[i].ID]; ok {
			products[i].Stock -= qty
			products[i].UpdatedAt = now
		}
	}

	txs := make([]StockTransaction, 0, len(in.Items)+len(s.Transactions))
	for _, it := range in.Items {
		txs = append(txs, StockTransaction{
			ID:        e.newID(),
			ProductID: it.ProductID,
			Delta:     -it.Qty,
			Reason:    ReasonAssignment,
			RefID:     a.ID,
			User:      actor,
			CreatedAt: now,
		})
	}
	txs = append(txs, s.Transactions...)

	s.Products = products
	s.Assignments = prepend(a, s.Assignments)
	s.Transactions = txs
	return s, a, nil
}

// UpdateSettings replaces the UI settings after validating them.
func (e *Engine) UpdateSettings(s AppState, ui UISettings) (AppState, error) {
	if ui.LowStockThreshold < 0 {
		return s, fmt.Errorf("%w: low-stock threshold must be >= 0", ErrInvalidSettings)
	}
	switch ui.PageSize {
	case 10, 15, 20:
	default:
		return s, fmt.Errorf("%w: page size must be 10, 15 or 20", ErrInvalidSettings)
	}
	s.UI = ui
	return s, nil
}

func prepend[T any](v T, rest []T) []T {
	out := make([]T, 0, len(rest)+1)
	out = append(out, v)
	return append(out, rest...)
}

func findProduct(products []Product, id string) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}

func findSalesman(salesmen []Salesman, id string) int {
	for i := range salesmen {
		if salesmen[i].ID == id {
			return i
		}
	}
	return -1
}
