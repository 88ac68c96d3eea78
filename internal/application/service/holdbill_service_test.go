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
	"github.com/restrodesk/restrodesk-api/pkg/apperror"
)

func ptrFloat(v float64) *float64 { return &v }

func testCatalog() (paneer, cola entity.Product) {
	paneer = entity.Product{
		ID:          uuid.New(),
		Category:    enum.CategoryVeg,
		ItemName:    "Paneer Tikka",
		PricingType: enum.PricingTypeBasePrice,
		BasePrice:   ptrFloat(200),
		Type:        enum.TypeStarter,
		UnitType:    enum.UnitQuantity,
		InStock:     true,
		Variants: entity.Variants{
			{Name: "Half", Price: 120},
			{Name: "Full", Price: 200},
		},
	}
	cola = entity.Product{
		ID:           uuid.New(),
		Category:     enum.CategoryVeg,
		ItemName:     "Cola",
		PricingType:  enum.PricingTypeMRP,
		MRP:          ptrFloat(60),
		SellingPrice: ptrFloat(50),
		Type:         enum.TypeBeverage,
		UnitType:     enum.UnitQuantity,
		InStock:      true,
	}
	return paneer, cola
}

func TestCreateHoldBillSnapshotsAndTotals(t *testing.T) {
	paneer, cola := testCatalog()
	table := &entity.Table{ID: uuid.New(), TableNumber: 4, Status: enum.TableStatusAvailable}

	holdBillRepo := new(MockHoldBillRepository)
	productRepo := new(MockProductRepository)
	tableRepo := new(MockTableRepository)

	tableRepo.On("GetByID", mock.Anything, table.ID).Return(table, nil)
	productRepo.On("GetByIDs", mock.Anything, mock.Anything).Return([]entity.Product{paneer, cola}, nil)
	holdBillRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	tableRepo.On("UpdateStatus", mock.Anything, table.ID, enum.TableStatusOccupied).Return(nil)

	svc := NewHoldBillService(holdBillRepo, productRepo, tableRepo)
	holdBill, err := svc.CreateHoldBill(context.Background(), &CreateHoldBillInput{
		TableID: table.ID,
		Items: []HoldBillItemInput{
			{ProductID: paneer.ID, Quantity: 1},
			{ProductID: cola.ID, Quantity: 2},
		},
	})

	require.NoError(t, err)
	require.Len(t, holdBill.Items, 2)

	// Base price items are taxed, MRP items are not.
	assert.Equal(t, 300.0, holdBill.Subtotal)
	assert.Equal(t, 5.0, holdBill.CGST)
	assert.Equal(t, 5.0, holdBill.SGST)
	assert.Equal(t, 310.0, holdBill.TotalAmount)
	assert.Equal(t, enum.HoldBillStatusHold, holdBill.Status)
	assert.Equal(t, 4, holdBill.TableNumber)
	assert.Equal(t, enum.PaymentModeCash, holdBill.PaymentMode)

	// Snapshots carry catalog values, not references.
	assert.Equal(t, "Paneer Tikka", holdBill.Items[0].ItemName)
	assert.Equal(t, 200.0, holdBill.Items[0].Price)
	assert.Equal(t, 50.0, holdBill.Items[1].Price)

	tableRepo.AssertCalled(t, "UpdateStatus", mock.Anything, table.ID, enum.TableStatusOccupied)
}

func TestCreateHoldBillVariantPriceWins(t *testing.T) {
	paneer, _ := testCatalog()
	table := &entity.Table{ID: uuid.New(), TableNumber: 1}

	holdBillRepo := new(MockHoldBillRepository)
	productRepo := new(MockProductRepository)
	tableRepo := new(MockTableRepository)

	tableRepo.On("GetByID", mock.Anything, table.ID).Return(table, nil)
	productRepo.On("GetByIDs", mock.Anything, mock.Anything).Return([]entity.Product{paneer}, nil)
	holdBillRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	tableRepo.On("UpdateStatus", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := NewHoldBillService(holdBillRepo, productRepo, tableRepo)
	holdBill, err := svc.CreateHoldBill(context.Background(), &CreateHoldBillInput{
		TableID: table.ID,
		Items:   []HoldBillItemInput{{ProductID: paneer.ID, Quantity: 1, Variant: "Half"}},
	})

	require.NoError(t, err)
	assert.Equal(t, 120.0, holdBill.Items[0].Price)
	require.NotNil(t, holdBill.Items[0].Variant)
	assert.Equal(t, "Half", holdBill.Items[0].Variant.Name)
}

func TestCreateHoldBillUnknownTable(t *testing.T) {
	svc := NewHoldBillService(new(MockHoldBillRepository), new(MockProductRepository), func() *MockTableRepository {
		m := new(MockTableRepository)
		m.On("GetByID", mock.Anything, mock.Anything).Return(nil, nil)
		return m
	}())

	_, err := svc.CreateHoldBill(context.Background(), &CreateHoldBillInput{
		TableID: uuid.New(),
		Items:   []HoldBillItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCreateHoldBillUnknownProductIsFatal(t *testing.T) {
	table := &entity.Table{ID: uuid.New(), TableNumber: 2}

	tableRepo := new(MockTableRepository)
	tableRepo.On("GetByID", mock.Anything, table.ID).Return(table, nil)
	productRepo := new(MockProductRepository)
	productRepo.On("GetByIDs", mock.Anything, mock.Anything).Return([]entity.Product{}, nil)

	svc := NewHoldBillService(new(MockHoldBillRepository), productRepo, tableRepo)
	_, err := svc.CreateHoldBill(context.Background(), &CreateHoldBillInput{
		TableID: table.ID,
		Items:   []HoldBillItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateHoldBillRejectsBadDiscount(t *testing.T) {
	svc := NewHoldBillService(new(MockHoldBillRepository), new(MockProductRepository), new(MockTableRepository))
	_, err := svc.CreateHoldBill(context.Background(), &CreateHoldBillInput{
		TableID:            uuid.New(),
		Items:              []HoldBillItemInput{{ProductID: uuid.New(), Quantity: 1}},
		DiscountPercentage: 120,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestUpdateHoldBillMergesAndReportsInvalid(t *testing.T) {
	paneer, _ := testCatalog()
	gone := uuid.New()

	existing := &entity.HoldBill{
		ID:          uuid.New(),
		TableID:     uuid.New(),
		TableNumber: 3,
		Status:      enum.HoldBillStatusHold,
		Items: entity.BillItems{
			{ProductID: paneer.ID, ItemName: paneer.ItemName, Quantity: 1, Price: 200, PricingType: enum.PricingTypeBasePrice, Category: enum.CategoryVeg},
		},
	}

	holdBillRepo := new(MockHoldBillRepository)
	holdBillRepo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	holdBillRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	productRepo := new(MockProductRepository)
	productRepo.On("GetByIDs", mock.Anything, mock.Anything).Return([]entity.Product{paneer}, nil)

	svc := NewHoldBillService(holdBillRepo, productRepo, new(MockTableRepository))
	updated, invalid, err := svc.UpdateHoldBill(context.Background(), existing.ID, []HoldBillItemInput{
		{ProductID: paneer.ID, Quantity: 2},
		{ProductID: gone, Quantity: 1},
	})

	require.NoError(t, err)
	require.Len(t, invalid, 1)
	assert.Equal(t, gone, invalid[0].ProductID)

	// Same product, same (absent) variant: quantities merge onto one line.
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 3, updated.Items[0].Quantity)
	assert.Equal(t, 600.0, updated.Subtotal)
}

func TestUpdateHoldBillAllInvalidReportsProducts(t *testing.T) {
	goneA, goneB := uuid.New(), uuid.New()

	existing := &entity.HoldBill{ID: uuid.New(), Status: enum.HoldBillStatusHold}
	holdBillRepo := new(MockHoldBillRepository)
	holdBillRepo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	productRepo := new(MockProductRepository)
	productRepo.On("GetByIDs", mock.Anything, mock.Anything).Return([]entity.Product{}, nil)

	svc := NewHoldBillService(holdBillRepo, productRepo, new(MockTableRepository))
	_, invalid, err := svc.UpdateHoldBill(context.Background(), existing.ID, []HoldBillItemInput{
		{ProductID: goneA, Quantity: 1},
		{ProductID: goneB, Quantity: 2},
	})

	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)

	// The rejected lines ride along on the error payload.
	require.Len(t, invalid, 2)
	require.Len(t, appErr.Errors, 2)
	assert.Equal(t, goneA.String(), appErr.Errors[0].Field)
	assert.Equal(t, "product not found", appErr.Errors[0].Message)
}

func TestUpdateHoldBillRejectsResumed(t *testing.T) {
	resumed := &entity.HoldBill{ID: uuid.New(), Status: enum.HoldBillStatusResumed}
	holdBillRepo := new(MockHoldBillRepository)
	holdBillRepo.On("GetByID", mock.Anything, resumed.ID).Return(resumed, nil)

	svc := NewHoldBillService(holdBillRepo, new(MockProductRepository), new(MockTableRepository))
	_, _, err := svc.UpdateHoldBill(context.Background(), resumed.ID, []HoldBillItemInput{
		{ProductID: uuid.New(), Quantity: 1},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestResumeHoldBillFlipsStatus(t *testing.T) {
	holdBill := &entity.HoldBill{ID: uuid.New(), TableID: uuid.New(), Status: enum.HoldBillStatusHold}

	holdBillRepo := new(MockHoldBillRepository)
	holdBillRepo.On("GetByID", mock.Anything, holdBill.ID).Return(holdBill, nil)
	holdBillRepo.On("UpdateStatus", mock.Anything, holdBill.ID, enum.HoldBillStatusResumed).Return(nil)
	tableRepo := new(MockTableRepository)

	svc := NewHoldBillService(holdBillRepo, new(MockProductRepository), tableRepo)
	resumed, err := svc.ResumeHoldBill(context.Background(), holdBill.ID)

	require.NoError(t, err)
	assert.Equal(t, enum.HoldBillStatusResumed, resumed.Status)
	tableRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestResumeHoldBillRejectsCancelled(t *testing.T) {
	cancelled := &entity.HoldBill{ID: uuid.New(), Status: enum.HoldBillStatusCancelled}
	holdBillRepo := new(MockHoldBillRepository)
	holdBillRepo.On("GetByID", mock.Anything, cancelled.ID).Return(cancelled, nil)

	svc := NewHoldBillService(holdBillRepo, new(MockProductRepository), new(MockTableRepository))
	_, err := svc.ResumeHoldBill(context.Background(), cancelled.ID)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCancelHoldBillFreesTableWhenLast(t *testing.T) {
	holdBill := &entity.HoldBill{ID: uuid.New(), TableID: uuid.New(), Status: enum.HoldBillStatusHold}

	holdBillRepo := new(MockHoldBillRepository)
	holdBillRepo.On("GetByID", mock.Anything, holdBill.ID).Return(holdBill, nil)
	holdBillRepo.On("UpdateStatus", mock.Anything, holdBill.ID, enum.HoldBillStatusCancelled).Return(nil)
	holdBillRepo.On("CountOpenByTable", mock.Anything, holdBill.TableID).Return(int64(0), nil)
	tableRepo := new(MockTableRepository)
	tableRepo.On("UpdateStatus", mock.Anything, holdBill.TableID, enum.TableStatusAvailable).Return(nil)

	svc := NewHoldBillService(holdBillRepo, new(MockProductRepository), tableRepo)
	require.NoError(t, svc.CancelHoldBill(context.Background(), holdBill.ID))
	tableRepo.AssertCalled(t, "UpdateStatus", mock.Anything, holdBill.TableID, enum.TableStatusAvailable)
}

func TestCancelHoldBillAllowsResumed(t *testing.T) {
	holdBill := &entity.HoldBill{ID: uuid.New(), TableID: uuid.New(), Status: enum.HoldBillStatusResumed}

	holdBillRepo := new(MockHoldBillRepository)
	holdBillRepo.On("GetByID", mock.Anything, holdBill.ID).Return(holdBill, nil)
	holdBillRepo.On("UpdateStatus", mock.Anything, holdBill.ID, enum.HoldBillStatusCancelled).Return(nil)
	holdBillRepo.On("CountOpenByTable", mock.Anything, holdBill.TableID).Return(int64(1), nil)

	svc := NewHoldBillService(holdBillRepo, new(MockProductRepository), new(MockTableRepository))
	require.NoError(t, svc.CancelHoldBill(context.Background(), holdBill.ID))
}

func TestListOpenByTableNewestFirst(t *testing.T) {
	tableID := uuid.New()
	older := entity.HoldBill{ID: uuid.New(), TableID: tableID, Names: "first order"}
	newer := entity.HoldBill{ID: uuid.New(), TableID: tableID, Names: "second order"}

	tableRepo := new(MockTableRepository)
	tableRepo.On("GetByID", mock.Anything, tableID).Return(&entity.Table{ID: tableID, TableNumber: 5}, nil)
	holdBillRepo := new(MockHoldBillRepository)
	holdBillRepo.On("ListOpenByTable", mock.Anything, tableID).
		Return([]entity.HoldBill{older, newer}, nil)

	svc := NewHoldBillService(holdBillRepo, new(MockProductRepository), tableRepo)
	holdBills, err := svc.ListOpenByTable(context.Background(), tableID)

	require.NoError(t, err)
	require.Len(t, holdBills, 2)
	assert.Equal(t, newer.ID, holdBills[0].ID)
	assert.Equal(t, older.ID, holdBills[1].ID)
}

func TestCancelHoldBillKeepsTableOccupied(t *testing.T) {
	holdBill := &entity.HoldBill{ID: uuid.New(), TableID: uuid.New(), Status: enum.HoldBillStatusHold}

	holdBillRepo := new(MockHoldBillRepository)
	holdBillRepo.On("GetByID", mock.Anything, holdBill.ID).Return(holdBill, nil)
	holdBillRepo.On("UpdateStatus", mock.Anything, holdBill.ID, enum.HoldBillStatusCancelled).Return(nil)
	holdBillRepo.On("CountOpenByTable", mock.Anything, holdBill.TableID).Return(int64(2), nil)
	tableRepo := new(MockTableRepository)

	svc := NewHoldBillService(holdBillRepo, new(MockProductRepository), tableRepo)
	require.NoError(t, svc.CancelHoldBill(context.Background(), holdBill.ID))
	tableRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
