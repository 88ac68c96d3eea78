package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
)

// MonthlyExpense is one month's aggregated spend.
type MonthlyExpense struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
	Days  int64   `json:"days"`
}

// ExpenseRepository defines the interface for daily expense data operations
type ExpenseRepository interface {
	// GetByDate returns the expense sheet for a calendar day, nil when absent.
	GetByDate(ctx context.Context, date time.Time) (*entity.DailyExpense, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DailyExpense, error)
	Create(ctx context.Context, expense *entity.DailyExpense) error
	Update(ctx context.Context, expense *entity.DailyExpense) error
	ListRange(ctx context.Context, start, end time.Time) ([]entity.DailyExpense, error)
	// DeleteRange soft deletes every sheet in the window and reports how many.
	DeleteRange(ctx context.Context, start, end time.Time) (int64, error)
	MonthlyTotals(ctx context.Context, months int) ([]MonthlyExpense, error)
}
