package service

import (
	"context"
	"time"

	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
	"github.com/restrodesk/restrodesk-api/internal/domain/repository"
	"github.com/restrodesk/restrodesk-api/pkg/apperror"
	"github.com/restrodesk/restrodesk-api/pkg/daterange"
	"github.com/restrodesk/restrodesk-api/pkg/pagination"
)

// ReportService produces the sales and expense aggregates
type ReportService struct {
	reportRepo   repository.ReportRepository
	billRepo     repository.BillRepository
	holdBillRepo repository.HoldBillRepository
}

// NewReportService creates a new report service
func NewReportService(
	reportRepo repository.ReportRepository,
	billRepo repository.BillRepository,
	holdBillRepo repository.HoldBillRepository,
) *ReportService {
	return &ReportService{
		reportRepo:   reportRepo,
		billRepo:     billRepo,
		holdBillRepo: holdBillRepo,
	}
}

// ItemSalesReport is one page of the per-product breakdown with the page's
// totals.
type ItemSalesReport struct {
	Items         []repository.ItemSalesRow `json:"items"`
	TotalQuantity int64                     `json:"totalQuantity"`
	TotalRevenue  float64                   `json:"totalRevenue"`
	Pagination    *pagination.Pagination    `json:"pagination"`
}

// ItemSales aggregates completed bill lines per product and variant,
// sorted by quantity or revenue
func (s *ReportService) ItemSales(ctx context.Context, params *repository.ItemSalesParams) (*ItemSalesReport, error) {
	switch params.SortBy {
	case "":
		params.SortBy = "quantity"
	case "quantity", "revenue":
	default:
		return nil, apperror.NewBadRequestError("sortBy must be quantity or revenue")
	}
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	ctx, cancel := context.WithTimeout(ctx, summaryTimeout)
	defer cancel()

	rows, total, err := s.reportRepo.ItemSales(ctx, params)
	if err != nil {
		return nil, err
	}

	report := &ItemSalesReport{
		Items:      rows,
		Pagination: pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total),
	}
	if report.Items == nil {
		report.Items = []repository.ItemSalesRow{}
	}
	for _, row := range rows {
		report.TotalQuantity += row.Quantity
		report.TotalRevenue += row.Revenue
	}
	return report, nil
}

// Overview is the combined sales and expense view of a date range.
type Overview struct {
	Sales    *repository.BillSummary `json:"sales"`
	Expenses float64                 `json:"expenses"`
	Net      float64                 `json:"net"`
}

// SalesOverview combines the bill summary with the expense total:
// net = completed sales minus expenses.
func (s *ReportService) SalesOverview(ctx context.Context, start, end time.Time) (*Overview, error) {
	ctx, cancel := context.WithTimeout(ctx, summaryTimeout)
	defer cancel()

	summary, err := s.billRepo.Summary(ctx, start, end)
	if err != nil {
		return nil, err
	}

	expenses, err := s.reportRepo.ExpenseTotal(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return &Overview{
		Sales:    summary,
		Expenses: expenses,
		Net:      summary.CompletedTotal - expenses,
	}, nil
}

// KOTStatus is the kitchen's live view of today: bills settled so far
// plus every order still on hold.
type KOTStatus struct {
	Date           string            `json:"date"`
	ActiveCount    int64             `json:"activeCount"`
	CompletedCount int64             `json:"completedCount"`
	HoldCount      int               `json:"holdCount"`
	HoldBills      []entity.HoldBill `json:"holdBills"`
}

// KitchenStatus summarizes today's bills and lists the open hold bills
func (s *ReportService) KitchenStatus(ctx context.Context) (*KOTStatus, error) {
	now := time.Now()
	start := daterange.StartOfDay(now)
	end := daterange.EndOfDay(now)

	summary, err := s.billRepo.Summary(ctx, start, end)
	if err != nil {
		return nil, err
	}

	hold := enum.HoldBillStatusHold
	holdBills, err := s.holdBillRepo.List(ctx, &hold)
	if err != nil {
		return nil, err
	}
	if holdBills == nil {
		holdBills = []entity.HoldBill{}
	}

	status := &KOTStatus{
		Date:      start.Format("2006-01-02"),
		HoldCount: len(holdBills),
		HoldBills: holdBills,
	}
	for _, b := range summary.ByStatus {
		switch b.Status {
		case enum.BillStatusActive:
			status.ActiveCount = b.Count
		case enum.BillStatusCompleted:
			status.CompletedCount = b.Count
		}
	}
	return status, nil
}
