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

type holdBillRepository struct {
	db *gorm.DB
}

// NewHoldBillRepository creates a new hold bill repository
func NewHoldBillRepository(db *gorm.DB) domainRepo.HoldBillRepository {
	return &holdBillRepository{db: db}
}

func (r *holdBillRepository) Create(ctx context.Context, holdBill *entity.HoldBill) error {
	if holdBill.RestaurantID == uuid.Nil {
		restaurantID, ok := GetRestaurantID(ctx)
		if !ok {
			return gorm.ErrMissingWhereClause
		}
		holdBill.RestaurantID = restaurantID
	}
	return r.db.WithContext(ctx).Create(holdBill).Error
}

func (r *holdBillRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.HoldBill, error) {
	var holdBill entity.HoldBill
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		First(&holdBill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &holdBill, err
}

func (r *holdBillRepository) Update(ctx context.Context, holdBill *entity.HoldBill) error {
	return r.db.WithContext(ctx).Scopes(TenantScope(ctx)).Save(holdBill).Error
}

func (r *holdBillRepository) ListOpenByTable(ctx context.Context, tableID uuid.UUID) ([]entity.HoldBill, error) {
	var holdBills []entity.HoldBill
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		Where("table_id = ? AND status = ?", tableID, enum.HoldBillStatusHold).
		Order("created_at ASC").
		Find(&holdBills).Error
	return holdBills, err
}

func (r *holdBillRepository) List(ctx context.Context, status *enum.HoldBillStatus) ([]entity.HoldBill, error) {
	var holdBills []entity.HoldBill
	query := r.db.WithContext(ctx).Scopes(TenantScope(ctx))
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("created_at DESC").Find(&holdBills).Error
	return holdBills, err
}

func (r *holdBillRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.HoldBillStatus) error {
	return r.db.WithContext(ctx).Model(&entity.HoldBill{}).Scopes(TenantScope(ctx)).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *holdBillRepository) CountOpenByTable(ctx context.Context, tableID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.HoldBill{}).Scopes(TenantScope(ctx)).
		Where("table_id = ? AND status = ?", tableID, enum.HoldBillStatusHold).
		Count(&count).Error
	return count, err
}
