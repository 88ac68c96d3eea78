package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
	domainRepo "github.com/restrodesk/restrodesk-api/internal/domain/repository"
	"github.com/restrodesk/restrodesk-api/internal/infrastructure/cache"
)

const productCacheTTL = 10 * time.Minute

// cachedProductRepository wraps a product repository with a Redis
// read-through cache. Writes go to the database first, then invalidate.
// Cache failures degrade to database reads, never to request failures.
type cachedProductRepository struct {
	inner domainRepo.ProductRepository
	cache cache.ProductCache
}

// NewCachedProductRepository decorates a product repository with caching
func NewCachedProductRepository(inner domainRepo.ProductRepository, cache cache.ProductCache) domainRepo.ProductRepository {
	return &cachedProductRepository{inner: inner, cache: cache}
}

func (r *cachedProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.inner.Create(ctx, product)
}

func (r *cachedProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	restaurantID, ok := GetRestaurantID(ctx)
	if ok {
		if cached, err := r.cache.GetProduct(ctx, restaurantID, id); err == nil && cached != nil {
			return cached, nil
		}
	}

	product, err := r.inner.GetByID(ctx, id)
	if err != nil || product == nil {
		return product, err
	}
	if ok {
		_ = r.cache.SetProduct(ctx, product, productCacheTTL)
	}
	return product, nil
}

func (r *cachedProductRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	return r.inner.GetByIDs(ctx, ids)
}

func (r *cachedProductRepository) Update(ctx context.Context, product *entity.Product) error {
	if err := r.inner.Update(ctx, product); err != nil {
		return err
	}
	_ = r.cache.DeleteProduct(ctx, product.RestaurantID, product.ID)
	return nil
}

func (r *cachedProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	if restaurantID, ok := GetRestaurantID(ctx); ok {
		_ = r.cache.DeleteProduct(ctx, restaurantID, id)
	}
	return nil
}

func (r *cachedProductRepository) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	return r.inner.List(ctx, params)
}

func (r *cachedProductRepository) SetStock(ctx context.Context, id uuid.UUID, inStock bool, until *time.Time) error {
	if err := r.inner.SetStock(ctx, id, inStock, until); err != nil {
		return err
	}
	if restaurantID, ok := GetRestaurantID(ctx); ok {
		_ = r.cache.DeleteProduct(ctx, restaurantID, id)
	}
	return nil
}

func (r *cachedProductRepository) RestockDue(ctx context.Context) ([]entity.Product, error) {
	return r.inner.RestockDue(ctx)
}
