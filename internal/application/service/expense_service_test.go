package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
	"github.com/restrodesk/restrodesk-api/pkg/apperror"
)

func TestAddExpenseCreatesSheetOnFirstEntry(t *testing.T) {
	expenseRepo := new(MockExpenseRepository)
	expenseRepo.On("GetByDate", mock.Anything, mock.Anything).Return(nil, nil)
	expenseRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewExpenseService(expenseRepo)
	sheet, err := svc.AddExpense(context.Background(), time.Now(), &ExpenseInput{
		Item:          "Vegetables",
		Quantity:      ptrFloat(5),
		Price:         ptrFloat(40),
		ModeOfPayment: "Cash",
	})

	require.NoError(t, err)
	require.Len(t, sheet.Expenses, 1)
	assert.Equal(t, 200.0, sheet.Expenses[0].TotalPrice)
	assert.NotEqual(t, "", sheet.Expenses[0].ID.String())
}

func TestAddExpenseAppendsToExistingSheet(t *testing.T) {
	existing := &entity.DailyExpense{
		Expenses: entity.ExpenseItems{{Item: "Milk", TotalPrice: 60}},
	}

	expenseRepo := new(MockExpenseRepository)
	expenseRepo.On("GetByDate", mock.Anything, mock.Anything).Return(existing, nil)
	expenseRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewExpenseService(expenseRepo)
	total := 150.0
	sheet, err := svc.AddExpense(context.Background(), time.Now(), &ExpenseInput{
		Item:       "Gas refill",
		TotalPrice: &total,
	})

	require.NoError(t, err)
	assert.Len(t, sheet.Expenses, 2)
}

func TestAddExpenseRequiresAmount(t *testing.T) {
	svc := NewExpenseService(new(MockExpenseRepository))
	_, err := svc.AddExpense(context.Background(), time.Now(), &ExpenseInput{Item: "Ice"})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestListEntriesFlattensAndFilters(t *testing.T) {
	sheets := []entity.DailyExpense{
		{Expenses: entity.ExpenseItems{
			{Item: "Milk", TotalPrice: 60},
			{Item: "Gas refill", TotalPrice: 900},
		}},
		{Expenses: entity.ExpenseItems{
			{Item: "Vegetables", TotalPrice: 250},
		}},
	}

	expenseRepo := new(MockExpenseRepository)
	expenseRepo.On("ListRange", mock.Anything, mock.Anything, mock.Anything).Return(sheets, nil)

	svc := NewExpenseService(expenseRepo)
	start := time.Now().AddDate(0, 0, -7)
	entries, err := svc.ListEntries(context.Background(), start, time.Now(), ptrFloat(100), ptrFloat(500))

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Vegetables", entries[0].Item)
}

func TestListEntriesCapsRange(t *testing.T) {
	svc := NewExpenseService(new(MockExpenseRepository))
	start := time.Now().AddDate(0, 0, -200)
	_, err := svc.ListEntries(context.Background(), start, time.Now(), nil, nil)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestStatsAggregatesEntries(t *testing.T) {
	sheets := []entity.DailyExpense{
		{Expenses: entity.ExpenseItems{
			{Item: "Milk", TotalPrice: 60},
			{Item: "Gas refill", TotalPrice: 900},
			{Item: "Vegetables", TotalPrice: 240},
		}},
	}

	expenseRepo := new(MockExpenseRepository)
	expenseRepo.On("ListRange", mock.Anything, mock.Anything, mock.Anything).Return(sheets, nil)

	svc := NewExpenseService(expenseRepo)
	stats, err := svc.Stats(context.Background(), time.Now().AddDate(0, 0, -1), time.Now())

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 1200.0, stats.Total)
	assert.Equal(t, 400.0, stats.Average)
	assert.Equal(t, 900.0, stats.Max)
	assert.Equal(t, 60.0, stats.Min)
}
