package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/restrodesk/restrodesk-api/internal/domain/billing"
	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
	"github.com/restrodesk/restrodesk-api/internal/domain/repository"
	"github.com/restrodesk/restrodesk-api/pkg/apperror"
	"github.com/restrodesk/restrodesk-api/pkg/pagination"
)

// summaryTimeout bounds the aggregate query so a pathological range
// cannot hold a connection indefinitely.
const summaryTimeout = 10 * time.Second

// BillService finalizes staged orders into numbered bills and manages
// the bill lifecycle afterwards
type BillService struct {
	billRepo     repository.BillRepository
	holdBillRepo repository.HoldBillRepository
	tableRepo    repository.TableRepository
}

// NewBillService creates a new bill service
func NewBillService(
	billRepo repository.BillRepository,
	holdBillRepo repository.HoldBillRepository,
	tableRepo repository.TableRepository,
) *BillService {
	return &BillService{
		billRepo:     billRepo,
		holdBillRepo: holdBillRepo,
		tableRepo:    tableRepo,
	}
}

// SaveBill folds all of a table's open hold bills into one finalized bill.
// Tax columns are summed from the stored hold bills rather than recomputed
// from scratch, so what the customer saw while ordering is what gets billed.
// The discount percentage and payment mode come from the oldest hold bill.
func (s *BillService) SaveBill(ctx context.Context, tableID uuid.UUID) (*entity.Bill, error) {
	table, err := s.tableRepo.GetByID(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}

	holdBills, err := s.holdBillRepo.ListOpenByTable(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if len(holdBills) == 0 {
		return nil, apperror.NewNotFoundError("Hold bills for this table")
	}

	var items entity.BillItems
	var subtotal, cgst, sgst float64
	var names []string
	holdBillIDs := make([]uuid.UUID, len(holdBills))

	for i, hb := range holdBills {
		holdBillIDs[i] = hb.ID
		items = append(items, hb.Items...)
		subtotal += hb.Subtotal
		cgst += hb.CGST
		sgst += hb.SGST
		if hb.Names != "" {
			names = append(names, hb.Names)
		}
	}

	first := holdBills[0]
	_, discount, total := billing.Recombine(subtotal, cgst, sgst, first.DiscountPercentage)

	bill := &entity.Bill{
		TableID:            table.ID,
		TableNumber:        table.TableNumber,
		Items:              items,
		Status:             enum.BillStatusCompleted,
		PaymentStatus:      enum.PaymentStatusPaid,
		PaymentMethod:      first.PaymentMode.Method(),
		Subtotal:           billing.Round2(subtotal),
		CGST:               billing.Round2(cgst),
		SGST:               billing.Round2(sgst),
		DiscountPercentage: first.DiscountPercentage,
		DiscountAmount:     discount,
		TotalAmount:        total,
		Names:              strings.Join(names, " | "),
	}

	if err := s.billRepo.Finalize(ctx, bill, holdBillIDs); err != nil {
		return nil, err
	}
	return bill, nil
}

// GetBill retrieves a bill by ID
func (s *BillService) GetBill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills lists bills with filtering
func (s *BillService) ListBills(ctx context.Context, params *repository.BillFilterParams) (*pagination.PaginatedResult[entity.Bill], error) {
	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(bills, pag), nil
}

// GetSummary aggregates bills over a date range
func (s *BillService) GetSummary(ctx context.Context, start, end time.Time) (*repository.BillSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, summaryTimeout)
	defer cancel()

	summary, err := s.billRepo.Summary(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// UpdateBillInput represents mutable fields on a finalized bill
type UpdateBillInput struct {
	Items              []entity.BillItem
	DiscountPercentage *float64
	PaymentMethod      *string
	Status             *string
}

// UpdateBill amends a finalized bill. Replacing items recomputes the tax
// columns from the snapshots supplied. Setting a payment method marks the
// bill paid and completed.
func (s *BillService) UpdateBill(ctx context.Context, id uuid.UUID, input *UpdateBillInput) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	if bill.Status == enum.BillStatusCancelled {
		return nil, apperror.NewBadRequestError("Cancelled bills cannot be updated")
	}

	if input.DiscountPercentage != nil {
		if err := billing.ValidateDiscountPercentage(*input.DiscountPercentage); err != nil {
			return nil, apperror.NewBadRequestError(err.Error())
		}
		bill.DiscountPercentage = *input.DiscountPercentage
	}

	if len(input.Items) > 0 {
		for i := range input.Items {
			if input.Items[i].Quantity < 1 {
				input.Items[i].Quantity = 1
			}
		}
		bill.Items = input.Items
	}

	if len(input.Items) > 0 || input.DiscountPercentage != nil {
		totals := billing.Calculate(bill.Items.Lines(), bill.DiscountPercentage, 0)
		bill.Subtotal = totals.Subtotal
		bill.CGST = totals.CGST
		bill.SGST = totals.SGST
		bill.DiscountAmount = totals.Discount
		bill.TotalAmount = totals.Total
	}

	if input.PaymentMethod != nil {
		method := enum.PaymentMethod(*input.PaymentMethod)
		if !method.Valid() {
			return nil, apperror.NewBadRequestError("Invalid payment method")
		}
		bill.PaymentMethod = method
		bill.PaymentStatus = enum.PaymentStatusPaid
		bill.Status = enum.BillStatusCompleted
	}

	if input.Status != nil {
		status := enum.BillStatus(*input.Status)
		if !status.Valid() {
			return nil, apperror.NewBadRequestError("Invalid bill status")
		}
		bill.Status = status
	}

	if err := s.billRepo.Update(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// UpdatePaymentMethod settles a bill with the given tender
func (s *BillService) UpdatePaymentMethod(ctx context.Context, id uuid.UUID, method string) (*entity.Bill, error) {
	paymentMethod := enum.PaymentMethod(method)
	if !paymentMethod.Valid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}

	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	bill.PaymentMethod = paymentMethod
	bill.PaymentStatus = enum.PaymentStatusPaid
	bill.Status = enum.BillStatusCompleted

	if err := s.billRepo.Update(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// GetActiveBillByTable returns the table's most recent unfinalized bill
func (s *BillService) GetActiveBillByTable(ctx context.Context, tableID uuid.UUID) (*entity.Bill, error) {
	table, err := s.tableRepo.GetByID(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}

	bill, err := s.billRepo.GetActiveByTable(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Active bill")
	}
	return bill, nil
}
