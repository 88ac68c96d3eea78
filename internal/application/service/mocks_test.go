package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
	"github.com/restrodesk/restrodesk-api/internal/domain/repository"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]entity.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) SetStock(ctx context.Context, id uuid.UUID, inStock bool, until *time.Time) error {
	args := m.Called(ctx, id, inStock, until)
	return args.Error(0)
}

func (m *MockProductRepository) RestockDue(ctx context.Context) ([]entity.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Product), args.Error(1)
}

type MockTableRepository struct {
	mock.Mock
}

func (m *MockTableRepository) Create(ctx context.Context, table *entity.Table) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *MockTableRepository) CreateBatch(ctx context.Context, tables []entity.Table) error {
	args := m.Called(ctx, tables)
	return args.Error(0)
}

func (m *MockTableRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Table), args.Error(1)
}

func (m *MockTableRepository) GetByNumber(ctx context.Context, number int) (*entity.Table, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Table), args.Error(1)
}

func (m *MockTableRepository) List(ctx context.Context) ([]entity.Table, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Table), args.Error(1)
}

func (m *MockTableRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.TableStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockTableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTableRepository) MaxTableNumber(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockHoldBillRepository struct {
	mock.Mock
}

func (m *MockHoldBillRepository) Create(ctx context.Context, holdBill *entity.HoldBill) error {
	args := m.Called(ctx, holdBill)
	return args.Error(0)
}

func (m *MockHoldBillRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.HoldBill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.HoldBill), args.Error(1)
}

func (m *MockHoldBillRepository) Update(ctx context.Context, holdBill *entity.HoldBill) error {
	args := m.Called(ctx, holdBill)
	return args.Error(0)
}

func (m *MockHoldBillRepository) ListOpenByTable(ctx context.Context, tableID uuid.UUID) ([]entity.HoldBill, error) {
	args := m.Called(ctx, tableID)
	return args.Get(0).([]entity.HoldBill), args.Error(1)
}

func (m *MockHoldBillRepository) List(ctx context.Context, status *enum.HoldBillStatus) ([]entity.HoldBill, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]entity.HoldBill), args.Error(1)
}

func (m *MockHoldBillRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.HoldBillStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockHoldBillRepository) CountOpenByTable(ctx context.Context, tableID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tableID)
	return args.Get(0).(int64), args.Error(1)
}

type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) Create(ctx context.Context, bill *entity.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillRepository) Finalize(ctx context.Context, bill *entity.Bill, holdBillIDs []uuid.UUID) error {
	args := m.Called(ctx, bill, holdBillIDs)
	return args.Error(0)
}

func (m *MockBillRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Bill), args.Error(1)
}

func (m *MockBillRepository) GetByBillNumber(ctx context.Context, billNumber int64) (*entity.Bill, error) {
	args := m.Called(ctx, billNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Bill), args.Error(1)
}

func (m *MockBillRepository) Update(ctx context.Context, bill *entity.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillRepository) List(ctx context.Context, params *repository.BillFilterParams) ([]entity.Bill, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]entity.Bill), args.Get(1).(int64), args.Error(2)
}

func (m *MockBillRepository) GetActiveByTable(ctx context.Context, tableID uuid.UUID) (*entity.Bill, error) {
	args := m.Called(ctx, tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Bill), args.Error(1)
}

func (m *MockBillRepository) IncrementPrintCount(ctx context.Context, id uuid.UUID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockBillRepository) Summary(ctx context.Context, start, end time.Time) (*repository.BillSummary, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BillSummary), args.Error(1)
}

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) GetByDate(ctx context.Context, date time.Time) (*entity.DailyExpense, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DailyExpense), args.Error(1)
}

func (m *MockExpenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DailyExpense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DailyExpense), args.Error(1)
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *entity.DailyExpense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) Update(ctx context.Context, expense *entity.DailyExpense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) ListRange(ctx context.Context, start, end time.Time) ([]entity.DailyExpense, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]entity.DailyExpense), args.Error(1)
}

func (m *MockExpenseRepository) DeleteRange(ctx context.Context, start, end time.Time) (int64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExpenseRepository) MonthlyTotals(ctx context.Context, months int) ([]repository.MonthlyExpense, error) {
	args := m.Called(ctx, months)
	return args.Get(0).([]repository.MonthlyExpense), args.Error(1)
}

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) ItemSales(ctx context.Context, params *repository.ItemSalesParams) ([]repository.ItemSalesRow, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]repository.ItemSalesRow), args.Get(1).(int64), args.Error(2)
}

func (m *MockReportRepository) ExpenseTotal(ctx context.Context, start, end time.Time) (float64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(float64), args.Error(1)
}
