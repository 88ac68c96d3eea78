package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
	"github.com/restrodesk/restrodesk-api/internal/domain/repository"
	"github.com/restrodesk/restrodesk-api/pkg/apperror"
	"github.com/restrodesk/restrodesk-api/pkg/pagination"
)

func TestItemSalesDefaultsSortAndPaginates(t *testing.T) {
	rows := []repository.ItemSalesRow{
		{ProductID: "p1", ItemName: "Paneer Tikka", Quantity: 12, Revenue: 2400, AveragePrice: 200},
		{ProductID: "p2", ItemName: "Cola", Quantity: 8, Revenue: 400, AveragePrice: 50},
	}

	var captured *repository.ItemSalesParams
	reportRepo := new(MockReportRepository)
	reportRepo.On("ItemSales", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*repository.ItemSalesParams)
		}).
		Return(rows, int64(25), nil)

	svc := NewReportService(reportRepo, new(MockBillRepository), new(MockHoldBillRepository))
	report, err := svc.ItemSales(context.Background(), &repository.ItemSalesParams{
		Start:      time.Now().AddDate(0, 0, -7),
		End:        time.Now(),
		Pagination: &pagination.PaginationParams{Page: 2, PerPage: 2},
	})

	require.NoError(t, err)
	assert.Equal(t, "quantity", captured.SortBy)
	assert.Equal(t, int64(20), report.TotalQuantity)
	assert.Equal(t, 2800.0, report.TotalRevenue)
	assert.Equal(t, 200.0, report.Items[0].AveragePrice)
	require.NotNil(t, report.Pagination)
	assert.Equal(t, int64(25), report.Pagination.Total)
	assert.Equal(t, 13, report.Pagination.TotalPages)
	assert.True(t, report.Pagination.HasNext)
}

func TestItemSalesSortsByRevenue(t *testing.T) {
	var captured *repository.ItemSalesParams
	reportRepo := new(MockReportRepository)
	reportRepo.On("ItemSales", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*repository.ItemSalesParams)
		}).
		Return([]repository.ItemSalesRow{}, int64(0), nil)

	svc := NewReportService(reportRepo, new(MockBillRepository), new(MockHoldBillRepository))
	report, err := svc.ItemSales(context.Background(), &repository.ItemSalesParams{
		Start:  time.Now().AddDate(0, 0, -1),
		End:    time.Now(),
		SortBy: "revenue",
	})

	require.NoError(t, err)
	assert.Equal(t, "revenue", captured.SortBy)
	assert.Empty(t, report.Items)
}

func TestSalesOverviewCarriesGroupAverages(t *testing.T) {
	summary := &repository.BillSummary{
		TotalBills:  3,
		TotalAmount: 900,
		ByStatus: []repository.StatusBreakdown{
			{Status: enum.BillStatusCompleted, Count: 3, Amount: 900, Average: 300},
		},
		ByPayment: []repository.PaymentBreakdown{
			{PaymentMethod: enum.PaymentMethodCash, Count: 2, Amount: 500, Average: 250},
			{PaymentMethod: enum.PaymentMethodUPI, Count: 1, Amount: 400, Average: 400},
		},
		CompletedCount: 3,
		CompletedTotal: 900,
	}

	billRepo := new(MockBillRepository)
	billRepo.On("Summary", mock.Anything, mock.Anything, mock.Anything).Return(summary, nil)
	reportRepo := new(MockReportRepository)
	reportRepo.On("ExpenseTotal", mock.Anything, mock.Anything, mock.Anything).Return(150.0, nil)

	svc := NewReportService(reportRepo, billRepo, new(MockHoldBillRepository))
	overview, err := svc.SalesOverview(context.Background(), time.Now().AddDate(0, 0, -7), time.Now())

	require.NoError(t, err)
	assert.Equal(t, 750.0, overview.Net)
	require.Len(t, overview.Sales.ByStatus, 1)
	assert.Equal(t, 300.0, overview.Sales.ByStatus[0].Average)
	require.Len(t, overview.Sales.ByPayment, 2)
	assert.Equal(t, 250.0, overview.Sales.ByPayment[0].Average)
}

func TestItemSalesRejectsUnknownSort(t *testing.T) {
	svc := NewReportService(new(MockReportRepository), new(MockBillRepository), new(MockHoldBillRepository))
	_, err := svc.ItemSales(context.Background(), &repository.ItemSalesParams{
		Start:  time.Now().AddDate(0, 0, -1),
		End:    time.Now(),
		SortBy: "price",
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
