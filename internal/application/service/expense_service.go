package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
	"github.com/restrodesk/restrodesk-api/internal/domain/repository"
	"github.com/restrodesk/restrodesk-api/pkg/apperror"
	"github.com/restrodesk/restrodesk-api/pkg/daterange"
)

// ExpenseService manages the per-day expense sheets
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// ExpenseInput represents one expense entry
type ExpenseInput struct {
	Item          string
	Quantity      *float64
	Price         *float64
	TotalPrice    *float64
	ModeOfPayment string
	Status        string
}

func buildExpenseItem(input *ExpenseInput) (*entity.ExpenseItem, error) {
	if input.Item == "" {
		return nil, apperror.NewBadRequestError("Expense item name is required")
	}

	total := 0.0
	switch {
	case input.TotalPrice != nil:
		total = *input.TotalPrice
	case input.Quantity != nil && input.Price != nil:
		total = *input.Quantity * *input.Price
	default:
		return nil, apperror.NewBadRequestError("Either totalPrice or quantity and price are required")
	}
	if total < 0 {
		return nil, apperror.NewBadRequestError("Expense total cannot be negative")
	}

	status := input.Status
	if status == "" {
		status = "PAID"
	}

	return &entity.ExpenseItem{
		ID:            uuid.New(),
		Item:          input.Item,
		Quantity:      input.Quantity,
		Price:         input.Price,
		TotalPrice:    total,
		ModeOfPayment: input.ModeOfPayment,
		Status:        status,
	}, nil
}

// AddExpense appends an entry to the day's sheet, creating the sheet on
// first use. One sheet exists per restaurant per calendar day.
func (s *ExpenseService) AddExpense(ctx context.Context, date time.Time, input *ExpenseInput) (*entity.DailyExpense, error) {
	item, err := buildExpenseItem(input)
	if err != nil {
		return nil, err
	}

	day := daterange.StartOfDay(date)
	sheet, err := s.expenseRepo.GetByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	if sheet == nil {
		sheet = &entity.DailyExpense{
			Date:     day,
			Expenses: entity.ExpenseItems{*item},
		}
		if err := s.expenseRepo.Create(ctx, sheet); err != nil {
			return nil, err
		}
		return sheet, nil
	}

	sheet.Expenses = append(sheet.Expenses, *item)
	if err := s.expenseRepo.Update(ctx, sheet); err != nil {
		return nil, err
	}
	return sheet, nil
}

// UpdateExpense replaces an entry on a day's sheet
func (s *ExpenseService) UpdateExpense(ctx context.Context, sheetID, expenseID uuid.UUID, input *ExpenseInput) (*entity.DailyExpense, error) {
	sheet, err := s.expenseRepo.GetByID(ctx, sheetID)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, apperror.NewNotFoundError("Expense sheet")
	}

	existing := sheet.FindExpense(expenseID)
	if existing == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}

	item, err := buildExpenseItem(input)
	if err != nil {
		return nil, err
	}
	item.ID = expenseID
	*existing = *item

	if err := s.expenseRepo.Update(ctx, sheet); err != nil {
		return nil, err
	}
	return sheet, nil
}

// DeleteExpense removes an entry from a day's sheet
func (s *ExpenseService) DeleteExpense(ctx context.Context, sheetID, expenseID uuid.UUID) (*entity.DailyExpense, error) {
	sheet, err := s.expenseRepo.GetByID(ctx, sheetID)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, apperror.NewNotFoundError("Expense sheet")
	}

	if !sheet.RemoveExpense(expenseID) {
		return nil, apperror.NewNotFoundError("Expense")
	}

	if err := s.expenseRepo.Update(ctx, sheet); err != nil {
		return nil, err
	}
	return sheet, nil
}

// GetByDate returns the sheet for one calendar day, empty when absent
func (s *ExpenseService) GetByDate(ctx context.Context, date time.Time) (*entity.DailyExpense, error) {
	sheet, err := s.expenseRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return &entity.DailyExpense{
			Date:     daterange.StartOfDay(date),
			Expenses: entity.ExpenseItems{},
		}, nil
	}
	return sheet, nil
}

// ListRange returns all sheets in the window, newest first
func (s *ExpenseService) ListRange(ctx context.Context, start, end time.Time) ([]entity.DailyExpense, error) {
	return s.expenseRepo.ListRange(ctx, start, end)
}

// maxExpenseRangeDays caps flattened listings so a single request cannot
// pull an unbounded history.
const maxExpenseRangeDays = 100

// ExpenseEntry is one expense line annotated with its sheet's date.
type ExpenseEntry struct {
	SheetID uuid.UUID `json:"sheetId"`
	Date    time.Time `json:"date"`
	entity.ExpenseItem
}

// ListEntries flattens sheets in the window into individual entries,
// optionally filtered by amount.
func (s *ExpenseService) ListEntries(ctx context.Context, start, end time.Time, minAmount, maxAmount *float64) ([]ExpenseEntry, error) {
	if end.Sub(start) > maxExpenseRangeDays*24*time.Hour {
		return nil, apperror.NewBadRequestError("Date range cannot exceed 100 days")
	}

	sheets, err := s.expenseRepo.ListRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	entries := []ExpenseEntry{}
	for _, sheet := range sheets {
		for _, item := range sheet.Expenses {
			if minAmount != nil && item.TotalPrice < *minAmount {
				continue
			}
			if maxAmount != nil && item.TotalPrice > *maxAmount {
				continue
			}
			entries = append(entries, ExpenseEntry{
				SheetID:     sheet.ID,
				Date:        sheet.Date,
				ExpenseItem: item,
			})
		}
	}
	return entries, nil
}

// ExpenseStats aggregates entries over a window.
type ExpenseStats struct {
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
	Max     float64 `json:"max"`
	Min     float64 `json:"min"`
	Count   int     `json:"count"`
}

// Stats computes total, average, max and min spend per entry in the window
func (s *ExpenseService) Stats(ctx context.Context, start, end time.Time) (*ExpenseStats, error) {
	entries, err := s.ListEntries(ctx, start, end, nil, nil)
	if err != nil {
		return nil, err
	}

	stats := &ExpenseStats{Count: len(entries)}
	for i, entry := range entries {
		stats.Total += entry.TotalPrice
		if i == 0 || entry.TotalPrice > stats.Max {
			stats.Max = entry.TotalPrice
		}
		if i == 0 || entry.TotalPrice < stats.Min {
			stats.Min = entry.TotalPrice
		}
	}
	if stats.Count > 0 {
		stats.Average = stats.Total / float64(stats.Count)
	}
	return stats, nil
}

// Monthly returns per-month totals, most recent first
func (s *ExpenseService) Monthly(ctx context.Context, months int) ([]repository.MonthlyExpense, error) {
	if months < 1 || months > 24 {
		months = 12
	}
	return s.expenseRepo.MonthlyTotals(ctx, months)
}

// DeleteRange removes every sheet in the window and reports how many
func (s *ExpenseService) DeleteRange(ctx context.Context, start, end time.Time) (int64, error) {
	if end.Before(start) {
		return 0, apperror.NewBadRequestError("End date must not be before start date")
	}
	return s.expenseRepo.DeleteRange(ctx, start, end)
}
