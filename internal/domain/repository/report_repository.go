package repository

import (
	"context"
	"time"

	"github.com/restrodesk/restrodesk-api/pkg/pagination"
)

// ItemSalesRow is the per-product aggregate over completed bills: every
// distinct (product, variant) line sold in the range, with quantity and
// revenue summed across bills and the average unit price charged.
type ItemSalesRow struct {
	ProductID    string  `json:"productId"`
	ItemName     string  `json:"itemName"`
	Variant      string  `json:"variant,omitempty"`
	Category     string  `json:"category"`
	PricingType  string  `json:"pricingType"`
	Quantity     int64   `json:"quantity"`
	Revenue      float64 `json:"revenue"`
	AveragePrice float64 `json:"averagePrice"`
}

// ItemSalesParams narrows and orders the item-sales aggregate.
// SortBy is "quantity" or "revenue".
type ItemSalesParams struct {
	Start      time.Time
	End        time.Time
	SortBy     string
	Pagination *pagination.PaginationParams
}

// ReportRepository defines the interface for sales reporting queries
type ReportRepository interface {
	// ItemSales unnests bill line items over completed bills in the range
	// and aggregates quantity, revenue and average price per product and
	// variant. Returns one page of rows plus the total number of rows.
	ItemSales(ctx context.Context, params *ItemSalesParams) ([]ItemSalesRow, int64, error)
	// ExpenseTotal sums daily expenses over the range.
	ExpenseTotal(ctx context.Context, start, end time.Time) (float64, error)
}
