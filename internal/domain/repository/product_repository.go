package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
	"github.com/restrodesk/restrodesk-api/pkg/pagination"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// GetByIDs retrieves multiple products by their IDs in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	// SetStock flips availability; until is nil for indefinite out-of-stock.
	SetStock(ctx context.Context, id uuid.UUID, inStock bool, until *time.Time) error
	// RestockDue returns products whose out-of-stock window has elapsed.
	RestockDue(ctx context.Context) ([]entity.Product, error)
}

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination  *pagination.PaginationParams
	Search      string
	Category    *enum.ProductCategory
	Type        *enum.ProductType
	PricingType *enum.PricingType
	InStock     *bool
	SortBy      string
	SortOrder   string
}
