package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
	"github.com/restrodesk/restrodesk-api/internal/domain/repository"
	"github.com/restrodesk/restrodesk-api/pkg/apperror"
	"github.com/restrodesk/restrodesk-api/pkg/pagination"
)

func TestSaveBillFoldsHoldBills(t *testing.T) {
	table := &entity.Table{ID: uuid.New(), TableNumber: 7, Status: enum.TableStatusOccupied}
	productID := uuid.New()

	first := entity.HoldBill{
		ID:          uuid.New(),
		TableID:     table.ID,
		TableNumber: 7,
		Status:      enum.HoldBillStatusHold,
		Items: entity.BillItems{
			{ProductID: productID, ItemName: "Dal Fry", Quantity: 1, Price: 150, PricingType: enum.PricingTypeBasePrice},
		},
		Subtotal:           150,
		CGST:               3.75,
		SGST:               3.75,
		DiscountPercentage: 10,
		PaymentMode:        enum.PaymentModeUPI,
		Names:              "Asha",
	}
	second := entity.HoldBill{
		ID:          uuid.New(),
		TableID:     table.ID,
		TableNumber: 7,
		Status:      enum.HoldBillStatusHold,
		Items: entity.BillItems{
			{ProductID: uuid.New(), ItemName: "Jeera Rice", Quantity: 1, Price: 100, PricingType: enum.PricingTypeBasePrice},
		},
		Subtotal:    100,
		CGST:        2.5,
		SGST:        2.5,
		PaymentMode: enum.PaymentModeCash,
		Names:       "Ravi",
	}

	tableRepo := new(MockTableRepository)
	tableRepo.On("GetByID", mock.Anything, table.ID).Return(table, nil)
	holdBillRepo := new(MockHoldBillRepository)
	holdBillRepo.On("ListOpenByTable", mock.Anything, table.ID).Return([]entity.HoldBill{first, second}, nil)
	billRepo := new(MockBillRepository)
	billRepo.On("Finalize", mock.Anything, mock.Anything, []uuid.UUID{first.ID, second.ID}).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Bill).BillNumber = 42
		}).Return(nil)

	svc := NewBillService(billRepo, holdBillRepo, tableRepo)
	bill, err := svc.SaveBill(context.Background(), table.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(42), bill.BillNumber)
	assert.Len(t, bill.Items, 2)
	assert.Equal(t, 250.0, bill.Subtotal)
	assert.Equal(t, 6.25, bill.CGST)
	assert.Equal(t, 6.25, bill.SGST)

	// Discount and payment mode come from the oldest hold bill.
	assert.Equal(t, 10.0, bill.DiscountPercentage)
	assert.Equal(t, 26.25, bill.DiscountAmount)
	assert.Equal(t, 236.25, bill.TotalAmount)
	assert.Equal(t, enum.PaymentMethodUPI, bill.PaymentMethod)
	assert.Equal(t, enum.BillStatusCompleted, bill.Status)
	assert.Equal(t, enum.PaymentStatusPaid, bill.PaymentStatus)

	// Diner names from every folded hold bill end up on the bill.
	assert.Equal(t, "Asha | Ravi", bill.Names)
}

func TestListBillsPassesAmountAndPaymentFilters(t *testing.T) {
	paid := enum.PaymentStatusPaid

	var captured *repository.BillFilterParams
	billRepo := new(MockBillRepository)
	billRepo.On("List", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*repository.BillFilterParams)
		}).
		Return([]entity.Bill{}, int64(0), nil)

	svc := NewBillService(billRepo, new(MockHoldBillRepository), new(MockTableRepository))
	_, err := svc.ListBills(context.Background(), &repository.BillFilterParams{
		Pagination:    &pagination.PaginationParams{Page: 1, PerPage: 10},
		PaymentStatus: &paid,
		MinAmount:     ptrFloat(100),
		MaxAmount:     ptrFloat(500),
	})

	require.NoError(t, err)
	require.NotNil(t, captured)
	require.NotNil(t, captured.PaymentStatus)
	assert.Equal(t, enum.PaymentStatusPaid, *captured.PaymentStatus)
	assert.Equal(t, 100.0, *captured.MinAmount)
	assert.Equal(t, 500.0, *captured.MaxAmount)
}

func TestSaveBillNoOpenHoldBills(t *testing.T) {
	table := &entity.Table{ID: uuid.New(), TableNumber: 2}

	tableRepo := new(MockTableRepository)
	tableRepo.On("GetByID", mock.Anything, table.ID).Return(table, nil)
	holdBillRepo := new(MockHoldBillRepository)
	holdBillRepo.On("ListOpenByTable", mock.Anything, table.ID).Return([]entity.HoldBill{}, nil)

	svc := NewBillService(new(MockBillRepository), holdBillRepo, tableRepo)
	_, err := svc.SaveBill(context.Background(), table.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestSaveBillUnknownTable(t *testing.T) {
	tableRepo := new(MockTableRepository)
	tableRepo.On("GetByID", mock.Anything, mock.Anything).Return(nil, nil)

	svc := NewBillService(new(MockBillRepository), new(MockHoldBillRepository), tableRepo)
	_, err := svc.SaveBill(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestUpdatePaymentMethodSettlesBill(t *testing.T) {
	bill := &entity.Bill{
		ID:            uuid.New(),
		Status:        enum.BillStatusActive,
		PaymentStatus: enum.PaymentStatusPending,
	}

	billRepo := new(MockBillRepository)
	billRepo.On("GetByID", mock.Anything, bill.ID).Return(bill, nil)
	billRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewBillService(billRepo, new(MockHoldBillRepository), new(MockTableRepository))
	updated, err := svc.UpdatePaymentMethod(context.Background(), bill.ID, "CARD")

	require.NoError(t, err)
	assert.Equal(t, enum.PaymentMethodCard, updated.PaymentMethod)
	assert.Equal(t, enum.PaymentStatusPaid, updated.PaymentStatus)
	assert.Equal(t, enum.BillStatusCompleted, updated.Status)
}

func TestUpdatePaymentMethodRejectsUnknownTender(t *testing.T) {
	svc := NewBillService(new(MockBillRepository), new(MockHoldBillRepository), new(MockTableRepository))
	_, err := svc.UpdatePaymentMethod(context.Background(), uuid.New(), "CRYPTO")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestUpdateBillReplacingItemsRecomputes(t *testing.T) {
	bill := &entity.Bill{
		ID:                 uuid.New(),
		Status:             enum.BillStatusActive,
		DiscountPercentage: 0,
		Items: entity.BillItems{
			{ProductID: uuid.New(), ItemName: "Old", Quantity: 1, Price: 50, PricingType: enum.PricingTypeBasePrice},
		},
		Subtotal:    50,
		CGST:        1.25,
		SGST:        1.25,
		TotalAmount: 52.5,
	}

	billRepo := new(MockBillRepository)
	billRepo.On("GetByID", mock.Anything, bill.ID).Return(bill, nil)
	billRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewBillService(billRepo, new(MockHoldBillRepository), new(MockTableRepository))
	updated, err := svc.UpdateBill(context.Background(), bill.ID, &UpdateBillInput{
		Items: []entity.BillItem{
			{ProductID: uuid.New(), ItemName: "New", Quantity: 2, Price: 100, PricingType: enum.PricingTypeBasePrice},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 200.0, updated.Subtotal)
	assert.Equal(t, 5.0, updated.CGST)
	assert.Equal(t, 5.0, updated.SGST)
	assert.Equal(t, 210.0, updated.TotalAmount)
}

func TestUpdateBillRejectsCancelled(t *testing.T) {
	bill := &entity.Bill{ID: uuid.New(), Status: enum.BillStatusCancelled}
	billRepo := new(MockBillRepository)
	billRepo.On("GetByID", mock.Anything, bill.ID).Return(bill, nil)

	svc := NewBillService(billRepo, new(MockHoldBillRepository), new(MockTableRepository))
	_, err := svc.UpdateBill(context.Background(), bill.ID, &UpdateBillInput{})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
