package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
	"github.com/restrodesk/restrodesk-api/pkg/apperror"
)

func TestCreateProductValidatesPricing(t *testing.T) {
	tests := []struct {
		name    string
		input   ProductInput
		wantErr string
	}{
		{
			name: "base price product",
			input: ProductInput{
				Category: "Veg", ItemName: "Paneer Tikka", PricingType: "basePrice",
				BasePrice: ptrFloat(220), Type: "Starter", UnitType: "Quantity",
			},
		},
		{
			name: "variant only base price",
			input: ProductInput{
				Category: "Veg", ItemName: "Dosa", PricingType: "basePrice",
				Type: "Main-Course", UnitType: "Size",
				Variants: []entity.Variant{{Name: "Plain", Price: 80}, {Name: "Masala", Price: 100}},
			},
		},
		{
			name: "mrp product",
			input: ProductInput{
				Category: "Veg", ItemName: "Cola", PricingType: "mrp",
				MRP: ptrFloat(40), SellingPrice: ptrFloat(38), Type: "Beverage", UnitType: "Quantity",
			},
		},
		{
			name: "selling price above mrp",
			input: ProductInput{
				Category: "Veg", ItemName: "Cola", PricingType: "mrp",
				MRP: ptrFloat(40), SellingPrice: ptrFloat(45), Type: "Beverage", UnitType: "Quantity",
			},
			wantErr: "Selling price cannot be greater than MRP",
		},
		{
			name: "mrp without selling price",
			input: ProductInput{
				Category: "Veg", ItemName: "Cola", PricingType: "mrp",
				MRP: ptrFloat(40), Type: "Beverage", UnitType: "Quantity",
			},
			wantErr: "MRP and selling price are required",
		},
		{
			name: "base price missing",
			input: ProductInput{
				Category: "Veg", ItemName: "Dosa", PricingType: "basePrice",
				Type: "Main-Course", UnitType: "Size",
			},
			wantErr: "Base price is required",
		},
		{
			name: "bad category",
			input: ProductInput{
				Category: "Vegan", ItemName: "Salad", PricingType: "basePrice",
				BasePrice: ptrFloat(150), Type: "Starter", UnitType: "Quantity",
			},
			wantErr: "Category must be Veg or Non-Veg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := new(MockProductRepository)
			svc := NewProductService(productRepo, nil)

			if tt.wantErr == "" {
				productRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Product")).Return(nil)
			}

			product, err := svc.CreateProduct(context.Background(), &tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				appErr, ok := err.(*apperror.AppError)
				require.True(t, ok)
				assert.Equal(t, 400, appErr.Code)
				assert.Equal(t, tt.wantErr, appErr.Message)
				return
			}

			require.NoError(t, err)
			assert.True(t, product.InStock)
			productRepo.AssertExpectations(t)
		})
	}
}

func TestMarkOutOfStockDurations(t *testing.T) {
	productRepo := new(MockProductRepository)
	svc := NewProductService(productRepo, nil)

	id := uuid.New()
	productRepo.On("GetByID", mock.Anything, id).
		Return(&entity.Product{ID: id, ItemName: "Dosa", InStock: true}, nil)

	var captured *time.Time
	productRepo.On("SetStock", mock.Anything, id, false, mock.Anything).
		Run(func(args mock.Arguments) {
			captured, _ = args.Get(3).(*time.Time)
		}).
		Return(nil)

	before := time.Now()
	product, err := svc.MarkOutOfStock(context.Background(), id, StockDuration6Hours)
	require.NoError(t, err)
	assert.False(t, product.InStock)
	require.NotNil(t, captured)
	assert.WithinDuration(t, before.Add(6*time.Hour), *captured, time.Minute)

	_, err = svc.MarkOutOfStock(context.Background(), id, StockDurationIndefinite)
	require.NoError(t, err)
	assert.Nil(t, captured)

	_, err = svc.MarkOutOfStock(context.Background(), id, "3weeks")
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
}

func TestImageURLWithoutStore(t *testing.T) {
	productRepo := new(MockProductRepository)
	svc := NewProductService(productRepo, nil)

	_, err := svc.ImageURL(context.Background(), uuid.New())
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 503, appErr.Code)
}

func TestUpdateProductKeepsStockState(t *testing.T) {
	productRepo := new(MockProductRepository)
	svc := NewProductService(productRepo, nil)

	id := uuid.New()
	until := time.Now().Add(time.Hour)
	existing := &entity.Product{
		ID: id, ItemName: "Dosa", Category: enum.CategoryVeg,
		PricingType: enum.PricingTypeBasePrice, BasePrice: ptrFloat(80),
		InStock: false, OutOfStockUntil: &until,
	}
	productRepo.On("GetByID", mock.Anything, id).Return(existing, nil)
	productRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Product")).Return(nil)

	updated, err := svc.UpdateProduct(context.Background(), id, &ProductInput{
		Category: "Veg", ItemName: "Masala Dosa", PricingType: "basePrice",
		BasePrice: ptrFloat(100), Type: "Main-Course", UnitType: "Size",
	})
	require.NoError(t, err)
	assert.Equal(t, "Masala Dosa", updated.ItemName)
	assert.False(t, updated.InStock)
	require.NotNil(t, updated.OutOfStockUntil)
}
