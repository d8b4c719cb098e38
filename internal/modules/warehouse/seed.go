package warehouse

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"
)

var seedCategoryNames = []string{
	"Electronics", "Apparel", "Home", "Beauty", "Sports",
	"Automotive", "Books", "Toys", "Grocery", "Office",
}

var seedRegions = []string{"North", "South", "East", "West"}

// DefaultUISettings returns the presentation defaults for a fresh tree.
func DefaultUISettings() UISettings {
	return UISettings{LowStockThreshold: 5, PageSize: 10}
}

// SeedState builds the demo dataset installed on first use: ten categories,
// 24 products with pseudo-random price and stock, five salesmen, and empty
// assignment/transaction logs.
func SeedState() AppState {
	now := time.Now()

	categories := make([]Category, len(seedCategoryNames))
	for i, name := range seedCategoryNames {
		categories[i] = Category{ID: strconv.Itoa(i + 1), Name: name}
	}

	products := make([]Product, 24)
	for i := range products {
		n := i + 1
		products[i] = Product{
			ID:         strconv.Itoa(n),
			Name:       fmt.Sprintf("Sample Product %d", n),
			SKU:        fmt.Sprintf("SKU-%d", 1000+n),
			CategoryID: categories[i%len(categories)].ID,
			Price:      math.Round((rand.Float64()*100+10)*100) / 100,
			Stock:      rand.Intn(50) + 5,
			Status:     StatusActive,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	}

	salesmen := make([]Salesman, 5)
	for i := range salesmen {
		n := i + 1
		salesmen[i] = Salesman{
			ID:        strconv.Itoa(n),
			Name:      fmt.Sprintf("Salesman %d", n),
			Phone:     fmt.Sprintf("+1-555-010%d", n),
			Region:    seedRegions[i%len(seedRegions)],
			Status:    StatusActive,
			CreatedAt: now,
		}
	}

	return AppState{
		Categories:   categories,
		Products:     products,
		Salesmen:     salesmen,
		Assignments:  []Assignment{},
		Transactions: []StockTransaction{},
		UI:           DefaultUISettings(),
	}
}
