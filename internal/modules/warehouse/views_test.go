package warehouse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	e := testEngine()
	s := testState()

	var err error
	s, _, err = e.CreateAssignment(s, AssignmentInput{
		SalesmanID: "s1",
		Items:      []AssignmentItem{{ProductID: "p1", Qty: 4}},
	}, "ann")
	require.NoError(t, err)

	now := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	sum := Summarize(s, now)

	assert.Equal(t, 2, sum.TotalSKUs)
	assert.Equal(t, 9, sum.TotalStock) // 6 + 3
	assert.Equal(t, 1, sum.LowStockCount, "Gadget is below the threshold")
	assert.Equal(t, 5, sum.LowStockThreshold)
	assert.Equal(t, 1, sum.AssignmentsLast7d)
	require.Len(t, sum.RecentTransactions, 1)
	assert.Equal(t, "Widget", sum.RecentTransactions[0].ProductName)

	later := now.AddDate(0, 0, 30)
	assert.Equal(t, 0, Summarize(s, later).AssignmentsLast7d)
}

func TestSummarizeCapsRecentTransactions(t *testing.T) {
	e := testEngine()
	s := testState()

	var err error
	for i := 0; i < 12; i++ {
		s, _, err = e.AdjustStock(s, "p1", 0, "count check", "")
		require.NoError(t, err)
	}
	sum := Summarize(s, time.Now())
	assert.Len(t, sum.RecentTransactions, 10)
}

func TestSummarizeSalesman(t *testing.T) {
	e := testEngine()
	s := testState()

	var err error
	s, _, err = e.CreateAssignment(s, AssignmentInput{
		SalesmanID: "s1",
		Items:      []AssignmentItem{{ProductID: "p1", Qty: 4}, {ProductID: "p2", Qty: 1}},
	}, "")
	require.NoError(t, err)
	s, _, err = e.CreateAssignment(s, AssignmentInput{
		SalesmanID: "s1",
		Items:      []AssignmentItem{{ProductID: "p1", Qty: 2}},
	}, "")
	require.NoError(t, err)

	sum := SummarizeSalesman(s, "s1")
	assert.Equal(t, 2, sum.Assignments)
	assert.Equal(t, 7, sum.TotalAssigned)

	assert.Zero(t, SummarizeSalesman(s, "other").TotalAssigned)
}

func TestLowStockProducts(t *testing.T) {
	s := testState()
	low := LowStockProducts(s)
	require.Len(t, low, 1)
	assert.Equal(t, "p2", low[0].ID)
}

func TestProductTransactions(t *testing.T) {
	e := testEngine()
	s := testState()

	var err error
	s, _, err = e.AdjustStock(s, "p1", 2, "found two", "")
	require.NoError(t, err)
	s, _, err = e.AdjustStock(s, "p2", -1, "broken", "")
	require.NoError(t, err)
	s, _, err = e.AdjustStock(s, "p1", -3, "sold offline", "")
	require.NoError(t, err)

	txs := ProductTransactions(s, "p1")
	require.Len(t, txs, 2)
	assert.Equal(t, -3, txs[0].Delta, "most recent first")
	assert.Equal(t, 2, txs[1].Delta)
}

// Scenario E: views over history referencing a deleted product fall back to
// the raw id instead of failing.
func TestViewsResolveDanglingReferences(t *testing.T) {
	e := testEngine()
	s := testState()

	var err error
	s, _, err = e.CreateAssignment(s, AssignmentInput{
		SalesmanID: "s1",
		Items:      []AssignmentItem{{ProductID: "p1", Qty: 1}},
	}, "")
	require.NoError(t, err)
	s, err = e.DeleteProduct(s, "p1")
	require.NoError(t, err)
	s, err = e.DeleteSalesman(s, "s1")
	require.NoError(t, err)

	views := ResolveAssignments(s)
	require.Len(t, views, 1)
	assert.Equal(t, "s1", views[0].SalesmanName, "deleted salesman falls back to id")
	assert.Equal(t, "p1", views[0].Items[0].ProductName, "deleted product falls back to id")

	txs := ResolveTransactions(s)
	require.Len(t, txs, 1)
	assert.Equal(t, "p1", txs[0].ProductName)
}
