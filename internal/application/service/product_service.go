package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
	"github.com/restrodesk/restrodesk-api/internal/domain/repository"
	infraRepo "github.com/restrodesk/restrodesk-api/internal/infrastructure/repository"
	"github.com/restrodesk/restrodesk-api/pkg/apperror"
	"github.com/restrodesk/restrodesk-api/pkg/pagination"
	"github.com/restrodesk/restrodesk-api/pkg/storage"
)

// Stock duration presets accepted by the out-of-stock endpoint.
const (
	StockDuration2Hours     = "2hour"
	StockDuration6Hours     = "6hour"
	StockDuration1Day       = "1day"
	StockDuration1Week      = "1week"
	StockDurationIndefinite = "indefinite"
)

const imageURLExpiry = 24 * time.Hour

// ProductService manages the menu catalog
type ProductService struct {
	productRepo repository.ProductRepository
	imageStore  storage.ImageStore
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, imageStore storage.ImageStore) *ProductService {
	return &ProductService{productRepo: productRepo, imageStore: imageStore}
}

// ProductInput represents the create/update product input
type ProductInput struct {
	Category     string
	ItemName     string
	PricingType  string
	BasePrice    *float64
	MRP          *float64
	SellingPrice *float64
	Type         string
	UnitType     string
	Variants     []entity.Variant
}

func validateProductInput(input *ProductInput) (*entity.Product, error) {
	if input.ItemName == "" {
		return nil, apperror.NewBadRequestError("Item name is required")
	}

	category := enum.ProductCategory(input.Category)
	if !category.Valid() {
		return nil, apperror.NewBadRequestError("Category must be Veg or Non-Veg")
	}

	productType := enum.ProductType(input.Type)
	if !productType.Valid() {
		return nil, apperror.NewBadRequestError("Invalid product type")
	}

	unitType := enum.UnitType(input.UnitType)
	if !unitType.Valid() {
		return nil, apperror.NewBadRequestError("Invalid unit type")
	}

	pricingType := enum.PricingType(input.PricingType)
	if !pricingType.Valid() {
		return nil, apperror.NewBadRequestError("Pricing type must be basePrice or mrp")
	}

	product := &entity.Product{
		Category:    category,
		ItemName:    input.ItemName,
		PricingType: pricingType,
		Type:        productType,
		UnitType:    unitType,
		Variants:    input.Variants,
		InStock:     true,
	}

	switch pricingType {
	case enum.PricingTypeBasePrice:
		if input.BasePrice == nil && len(input.Variants) == 0 {
			return nil, apperror.NewBadRequestError("Base price is required")
		}
		if input.BasePrice != nil && *input.BasePrice < 0 {
			return nil, apperror.NewBadRequestError("Base price cannot be negative")
		}
		product.BasePrice = input.BasePrice
	case enum.PricingTypeMRP:
		if input.MRP == nil || input.SellingPrice == nil {
			return nil, apperror.NewBadRequestError("MRP and selling price are required")
		}
		if *input.MRP < 0 || *input.SellingPrice < 0 {
			return nil, apperror.NewBadRequestError("Prices cannot be negative")
		}
		if *input.SellingPrice > *input.MRP {
			return nil, apperror.NewBadRequestError("Selling price cannot be greater than MRP")
		}
		product.MRP = input.MRP
		product.SellingPrice = input.SellingPrice
	}

	for _, v := range input.Variants {
		if v.Name == "" {
			return nil, apperror.NewBadRequestError("Variant name is required")
		}
		if v.Price < 0 {
			return nil, apperror.NewBadRequestError("Variant price cannot be negative")
		}
	}

	return product, nil
}

// CreateProduct adds a menu item
func (s *ProductService) CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error) {
	product, err := validateProductInput(input)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct replaces a menu item's catalog fields. Bills are untouched:
// order lines carry their own snapshots.
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error) {
	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	updated, err := validateProductInput(input)
	if err != nil {
		return nil, err
	}

	existing.Category = updated.Category
	existing.ItemName = updated.ItemName
	existing.PricingType = updated.PricingType
	existing.BasePrice = updated.BasePrice
	existing.MRP = updated.MRP
	existing.SellingPrice = updated.SellingPrice
	existing.Type = updated.Type
	existing.UnitType = updated.UnitType
	existing.Variants = updated.Variants

	if err := s.productRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// DeleteProduct removes a menu item
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// MarkOutOfStock takes a product off the menu for a preset duration.
// "indefinite" leaves it out until someone marks it back in.
func (s *ProductService) MarkOutOfStock(ctx context.Context, id uuid.UUID, duration string) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	var until *time.Time
	switch duration {
	case StockDuration2Hours:
		t := time.Now().Add(2 * time.Hour)
		until = &t
	case StockDuration6Hours:
		t := time.Now().Add(6 * time.Hour)
		until = &t
	case StockDuration1Day:
		t := time.Now().Add(24 * time.Hour)
		until = &t
	case StockDuration1Week:
		t := time.Now().Add(7 * 24 * time.Hour)
		until = &t
	case StockDurationIndefinite, "":
		until = nil
	default:
		return nil, apperror.NewBadRequestError("Invalid stock duration")
	}

	if err := s.productRepo.SetStock(ctx, id, false, until); err != nil {
		return nil, err
	}
	product.InStock = false
	product.OutOfStockUntil = until
	return product, nil
}

// MarkInStock puts a product back on the menu
func (s *ProductService) MarkInStock(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if err := s.productRepo.SetStock(ctx, id, true, nil); err != nil {
		return nil, err
	}
	product.InStock = true
	product.OutOfStockUntil = nil
	return product, nil
}

// RestockDue flips products back in stock once their window has elapsed.
// Called periodically from the restock sweeper.
func (s *ProductService) RestockDue(ctx context.Context) (int, error) {
	products, err := s.productRepo.RestockDue(ctx)
	if err != nil {
		return 0, err
	}

	restocked := 0
	for _, p := range products {
		ctx := infraRepo.WithTenant(ctx, p.RestaurantID)
		if err := s.productRepo.SetStock(ctx, p.ID, true, nil); err != nil {
			return restocked, err
		}
		restocked++
	}
	return restocked, nil
}

// UploadImage stores a product photo and records its object key
func (s *ProductService) UploadImage(ctx context.Context, id uuid.UUID, filename, contentType string, reader io.Reader, size int64) (*entity.Product, error) {
	if s.imageStore == nil {
		return nil, apperror.NewAppError(503, "Image storage is not configured")
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	objectName, err := s.imageStore.Upload(ctx, product.RestaurantID, filename, contentType, reader, size)
	if err != nil {
		return nil, err
	}

	if product.ImageURL != nil && *product.ImageURL != "" {
		_ = s.imageStore.Delete(ctx, *product.ImageURL)
	}

	product.ImageURL = &objectName
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// ImageURL returns a presigned link to a product's photo
func (s *ProductService) ImageURL(ctx context.Context, id uuid.UUID) (string, error) {
	if s.imageStore == nil {
		return "", apperror.NewAppError(503, "Image storage is not configured")
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if product == nil {
		return "", apperror.NewNotFoundError("Product")
	}
	if product.ImageURL == nil || *product.ImageURL == "" {
		return "", apperror.NewNotFoundError("Product image")
	}
	return s.imageStore.PresignedURL(ctx, *product.ImageURL, imageURLExpiry)
}
