package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
	domainRepo "github.com/restrodesk/restrodesk-api/internal/domain/repository"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.RestaurantID == uuid.Nil {
		restaurantID, ok := GetRestaurantID(ctx)
		if !ok {
			return gorm.ErrMissingWhereClause
		}
		product.RestaurantID = restaurantID
	}
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

// GetByIDs retrieves multiple products by their IDs in a single query
func (r *productRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	if len(ids) == 0 {
		return []entity.Product{}, nil
	}
	var products []entity.Product
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		Where("id IN ?", ids).
		Find(&products).Error
	return products, err
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Scopes(TenantScope(ctx)).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		Delete(&entity.Product{}, "id = ?", id).Error
}

func (r *productRepository) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Product{}).Scopes(TenantScope(ctx))

	if params.Search != "" {
		query = query.Where("item_name ILIKE ?", "%"+params.Search+"%")
	}

	if params.Category != nil {
		query = query.Where("category = ?", *params.Category)
	}

	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}

	if params.PricingType != nil {
		query = query.Where("pricing_type = ?", *params.PricingType)
	}

	if params.InStock != nil {
		query = query.Where("in_stock = ?", *params.InStock)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "item_name"
	sortOrder := "ASC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "DESC" || params.SortOrder == "desc" {
		sortOrder = "DESC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(sortBy + " " + sortOrder).
		Find(&products).Error

	return products, total, err
}

func (r *productRepository) SetStock(ctx context.Context, id uuid.UUID, inStock bool, until *time.Time) error {
	return r.db.WithContext(ctx).Model(&entity.Product{}).Scopes(TenantScope(ctx)).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"in_stock":           inStock,
			"out_of_stock_until": until,
		}).Error
}

// RestockDue scans across tenants: the restock sweeper runs outside any
// request so no tenant context is available.
func (r *productRepository) RestockDue(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).
		Where("in_stock = ? AND out_of_stock_until IS NOT NULL AND out_of_stock_until <= ?", false, time.Now()).
		Find(&products).Error
	return products, err
}
