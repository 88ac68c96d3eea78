package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
	domainRepo "github.com/restrodesk/restrodesk-api/internal/domain/repository"
	"gorm.io/gorm"
)

type tableRepository struct {
	db *gorm.DB
}

// NewTableRepository creates a new table repository
func NewTableRepository(db *gorm.DB) domainRepo.TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) Create(ctx context.Context, table *entity.Table) error {
	if table.RestaurantID == uuid.Nil {
		restaurantID, ok := GetRestaurantID(ctx)
		if !ok {
			return gorm.ErrMissingWhereClause
		}
		table.RestaurantID = restaurantID
	}
	return r.db.WithContext(ctx).Create(table).Error
}

func (r *tableRepository) CreateBatch(ctx context.Context, tables []entity.Table) error {
	if len(tables) == 0 {
		return nil
	}
	restaurantID, ok := GetRestaurantID(ctx)
	if !ok {
		return gorm.ErrMissingWhereClause
	}
	for i := range tables {
		if tables[i].RestaurantID == uuid.Nil {
			tables[i].RestaurantID = restaurantID
		}
	}
	return r.db.WithContext(ctx).Create(&tables).Error
}

func (r *tableRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Table, error) {
	var table entity.Table
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		First(&table, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &table, err
}

func (r *tableRepository) GetByNumber(ctx context.Context, number int) (*entity.Table, error) {
	var table entity.Table
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		First(&table, "table_number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &table, err
}

func (r *tableRepository) List(ctx context.Context) ([]entity.Table, error) {
	var tables []entity.Table
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		Order("table_number ASC").
		Find(&tables).Error
	return tables, err
}

func (r *tableRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.TableStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Table{}).Scopes(TenantScope(ctx)).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *tableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		Delete(&entity.Table{}, "id = ?", id).Error
}

func (r *tableRepository) MaxTableNumber(ctx context.Context) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).Model(&entity.Table{}).Scopes(TenantScope(ctx)).
		Select("MAX(table_number)").
		Scan(&max).Error
	if err != nil || max == nil {
		return 0, err
	}
	return *max, nil
}
