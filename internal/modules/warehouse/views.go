package warehouse

import "time"

// Read models derived from the state tree. Nothing here is stored; deleted
// products and salesmen resolve to their raw id as a display fallback.

// TransactionView is a stock transaction with the product name resolved.
type TransactionView struct {
	StockTransaction
	ProductName string `json:"productName"`
}

// AssignmentItemView is an assignment line with the product name resolved.
type AssignmentItemView struct {
	AssignmentItem
	ProductName string `json:"productName"`
}

// AssignmentView is an assignment with salesman and product names resolved.
type AssignmentView struct {
	Assignment
	SalesmanName string               `json:"salesmanName"`
	Items        []AssignmentItemView `json:"items"`
}

// DashboardSummary is the aggregate card data for the dashboard.
type DashboardSummary struct {
	TotalSKUs          int               `json:"totalSkus"`
	TotalStock         int               `json:"totalStock"`
	LowStockCount      int               `json:"lowStockCount"`
	LowStockThreshold  int               `json:"lowStockThreshold"`
	AssignmentsLast7d  int               `json:"assignmentsLast7d"`
	RecentTransactions []TransactionView `json:"recentTransactions"`
}

// SalesmanSummary aggregates a salesman's assignment history.
type SalesmanSummary struct {
	SalesmanID    string `json:"salesmanId"`
	TotalAssigned int    `json:"totalAssigned"`
	Assignments   int    `json:"assignments"`
}

// Summarize computes the dashboard numbers for the given instant.
func Summarize(s AppState, now time.Time) DashboardSummary {
	sum := DashboardSummary{
		TotalSKUs:         len(s.Products),
		LowStockThreshold: s.UI.LowStockThreshold,
	}
	for _, p := range s.Products {
		sum.TotalStock += p.Stock
		if p.Stock < s.UI.LowStockThreshold {
			sum.LowStockCount++
		}
	}
	weekAgo := now.AddDate(0, 0, -7)
	for _, a := range s.Assignments {
		if a.CreatedAt.After(weekAgo) {
			sum.AssignmentsLast7d++
		}
	}
	recent := s.Transactions
	if len(recent) > 10 {
		recent = recent[:10]
	}
	sum.RecentTransactions = resolveTransactions(s, recent)
	return sum
}

// SummarizeSalesman derives the assigned totals for one salesman.
func SummarizeSalesman(s AppState, salesmanID string) SalesmanSummary {
	sum := SalesmanSummary{SalesmanID: salesmanID}
	for _, a := range s.Assignments {
		if a.SalesmanID != salesmanID {
			continue
		}
		sum.Assignments++
		for _, it := range a.Items {
			sum.TotalAssigned += it.Qty
		}
	}
	return sum
}

// LowStockProducts lists products below the configured threshold.
func LowStockProducts(s AppState) []Product {
	out := []Product{}
	for _, p := range s.Products {
		if p.Stock < s.UI.LowStockThreshold {
			out = append(out, p)
		}
	}
	return out
}

// ProductTransactions filters the transaction log for one product, keeping
// the most-recent-first order. The product itself may already be deleted.
func ProductTransactions(s AppState, productID string) []StockTransaction {
	out := []StockTransaction{}
	for _, tx := range s.Transactions {
		if tx.ProductID == productID {
			out = append(out, tx)
		}
	}
	return out
}

// ResolveAssignments expands the assignment log into display views.
func ResolveAssignments(s AppState) []AssignmentView {
	out := make([]AssignmentView, 0, len(s.Assignments))
	for _, a := range s.Assignments {
		v := AssignmentView{
			Assignment:   a,
			SalesmanName: resolveSalesmanName(s, a.SalesmanID),
			Items:        make([]AssignmentItemView, 0, len(a.Items)),
		}
		for _, it := range a.Items {
			v.Items = append(v.Items, AssignmentItemView{
				AssignmentItem: it,
				ProductName:    resolveProductName(s, it.ProductID),
			})
		}
		out = append(out, v)
	}
	return out
}

// ResolveTransactions expands the whole transaction log into display views.
func ResolveTransactions(s AppState) []TransactionView {
	return resolveTransactions(s, s.Transactions)
}

func resolveTransactions(s AppState, txs []StockTransaction) []TransactionView {
	out := make([]TransactionView, 0, len(txs))
	for _, tx := range txs {
		out = append(out, TransactionView{
			StockTransaction: tx,
			ProductName:      resolveProductName(s, tx.ProductID),
		})
	}
	return out
}

func resolveProductName(s AppState, id string) string {
	if idx := findProduct(s.Products, id); idx >= 0 {
		return s.Products[idx].Name
	}
	return id
}

func resolveSalesmanName(s AppState, id string) string {
	if idx := findSalesman(s.Salesmen, id); idx >= 0 {
		return s.Salesmen[idx].Name
	}
	return id
}
