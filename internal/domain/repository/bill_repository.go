package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
	"github.com/restrodesk/restrodesk-api/pkg/pagination"
)

// BillRepository defines the interface for finalized bill data operations
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	// Finalize commits a table's staged orders as one numbered bill. In a
	// single transaction it draws the next bill number, inserts the bill,
	// marks the hold bills RESUMED and frees the table. Either everything
	// lands or nothing does.
	Finalize(ctx context.Context, bill *entity.Bill, holdBillIDs []uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	GetByBillNumber(ctx context.Context, billNumber int64) (*entity.Bill, error)
	Update(ctx context.Context, bill *entity.Bill) error
	List(ctx context.Context, params *BillFilterParams) ([]entity.Bill, int64, error)
	// GetActiveByTable returns the most recent ACTIVE bill for a table, if any.
	GetActiveByTable(ctx context.Context, tableID uuid.UUID) (*entity.Bill, error)
	// IncrementPrintCount bumps printCount and returns the new value.
	IncrementPrintCount(ctx context.Context, id uuid.UUID) (int, error)
	// Summary aggregates bills by status and, for completed bills, by
	// payment method over a date range. The query is bounded by ctx.
	Summary(ctx context.Context, start, end time.Time) (*BillSummary, error)
}

// BillFilterParams contains filtering parameters for bill queries
type BillFilterParams struct {
	Pagination    *pagination.PaginationParams
	Status        *enum.BillStatus
	PaymentStatus *enum.PaymentStatus
	PaymentMethod *enum.PaymentMethod
	TableNumber   *int
	BillNumber    *int64
	StartDate     *time.Time
	EndDate       *time.Time
	MinAmount     *float64
	MaxAmount     *float64
	SortBy        string
	SortOrder     string
}

// StatusBreakdown is one status bucket in a bill summary.
type StatusBreakdown struct {
	Status  enum.BillStatus `json:"status"`
	Count   int64           `json:"count"`
	Amount  float64         `json:"amount"`
	Average float64         `json:"average"`
}

// PaymentBreakdown is one payment-method bucket over completed bills.
type PaymentBreakdown struct {
	PaymentMethod enum.PaymentMethod `json:"paymentMethod"`
	Count         int64              `json:"count"`
	Amount        float64            `json:"amount"`
	Average       float64            `json:"average"`
}

// BillSummary is the aggregate view of bills over a date range.
type BillSummary struct {
	TotalBills     int64              `json:"totalBills"`
	TotalAmount    float64            `json:"totalAmount"`
	ByStatus       []StatusBreakdown  `json:"byStatus"`
	ByPayment      []PaymentBreakdown `json:"byPayment"`
	CompletedCount int64              `json:"completedCount"`
	CompletedTotal float64            `json:"completedTotal"`
}
