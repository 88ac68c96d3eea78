package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
	domainRepo "github.com/restrodesk/restrodesk-api/internal/domain/repository"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	if bill.RestaurantID == uuid.Nil {
		restaurantID, ok := GetRestaurantID(ctx)
		if !ok {
			return gorm.ErrMissingWhereClause
		}
		bill.RestaurantID = restaurantID
	}
	return r.db.WithContext(ctx).Create(bill).Error
}

func (r *billRepository) Finalize(ctx context.Context, bill *entity.Bill, holdBillIDs []uuid.UUID) error {
	restaurantID, ok := GetRestaurantID(ctx)
	if !ok {
		return gorm.ErrMissingWhereClause
	}
	bill.RestaurantID = restaurantID

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The counter upsert serializes concurrent finalizations per tenant,
		// so two bills can never share a number.
		var seq int64
		err := tx.Raw(`
			INSERT INTO sequence_counters (restaurant_id, name, seq)
			VALUES (?, ?, 1)
			ON CONFLICT (restaurant_id, name)
			DO UPDATE SET seq = sequence_counters.seq + 1
			RETURNING seq`,
			restaurantID, entity.CounterBillNumber,
		).Scan(&seq).Error
		if err != nil {
			return err
		}
		bill.BillNumber = seq

		if err := tx.Create(bill).Error; err != nil {
			return err
		}

		err = tx.Model(&entity.HoldBill{}).
			Where("restaurant_id = ? AND id IN ?", restaurantID, holdBillIDs).
			Update("status", enum.HoldBillStatusResumed).Error
		if err != nil {
			return err
		}

		return tx.Model(&entity.Table{}).
			Where("restaurant_id = ? AND id = ?", restaurantID, bill.TableID).
			Update("status", enum.TableStatusAvailable).Error
	})
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) GetByBillNumber(ctx context.Context, billNumber int64) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		First(&bill, "bill_number = ?", billNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) Update(ctx context.Context, bill *entity.Bill) error {
	return r.db.WithContext(ctx).Scopes(TenantScope(ctx)).Save(bill).Error
}

func (r *billRepository) List(ctx context.Context, params *domainRepo.BillFilterParams) ([]entity.Bill, int64, error) {
	var bills []entity.Bill
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Bill{}).Scopes(TenantScope(ctx))

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.PaymentStatus != nil {
		query = query.Where("payment_status = ?", *params.PaymentStatus)
	}

	if params.PaymentMethod != nil {
		query = query.Where("payment_method = ?", *params.PaymentMethod)
	}

	if params.TableNumber != nil {
		query = query.Where("table_number = ?", *params.TableNumber)
	}

	if params.BillNumber != nil {
		query = query.Where("bill_number = ?", *params.BillNumber)
	}

	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	if params.MinAmount != nil {
		query = query.Where("total_amount >= ?", *params.MinAmount)
	}

	if params.MaxAmount != nil {
		query = query.Where("total_amount <= ?", *params.MaxAmount)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(sortBy + " " + sortOrder).
		Find(&bills).Error

	return bills, total, err
}

func (r *billRepository) GetActiveByTable(ctx context.Context, tableID uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		Where("table_id = ? AND status = ?", tableID, enum.BillStatusActive).
		Order("created_at DESC").
		First(&bill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) IncrementPrintCount(ctx context.Context, id uuid.UUID) (int, error) {
	restaurantID, ok := GetRestaurantID(ctx)
	if !ok {
		return 0, gorm.ErrMissingWhereClause
	}

	var printCount int
	err := r.db.WithContext(ctx).Raw(`
		UPDATE bills
		SET print_count = print_count + 1, updated_at = NOW()
		WHERE id = ? AND restaurant_id = ? AND deleted_at IS NULL
		RETURNING print_count`,
		id, restaurantID,
	).Scan(&printCount).Error
	return printCount, err
}

func (r *billRepository) Summary(ctx context.Context, start, end time.Time) (*domainRepo.BillSummary, error) {
	summary := &domainRepo.BillSummary{}

	base := r.db.WithContext(ctx).Model(&entity.Bill{}).Scopes(TenantScope(ctx)).
		Where("created_at >= ? AND created_at <= ?", start, end)

	err := base.Session(&gorm.Session{}).
		Select("status", "COUNT(*) AS count",
			"COALESCE(SUM(total_amount), 0) AS amount",
			"COALESCE(AVG(total_amount), 0) AS average").
		Group("status").
		Scan(&summary.ByStatus).Error
	if err != nil {
		return nil, err
	}

	err = base.Session(&gorm.Session{}).
		Where("status = ?", enum.BillStatusCompleted).
		Select("payment_method", "COUNT(*) AS count",
			"COALESCE(SUM(total_amount), 0) AS amount",
			"COALESCE(AVG(total_amount), 0) AS average").
		Group("payment_method").
		Scan(&summary.ByPayment).Error
	if err != nil {
		return nil, err
	}

	for _, s := range summary.ByStatus {
		summary.TotalBills += s.Count
		summary.TotalAmount += s.Amount
		if s.Status == enum.BillStatusCompleted {
			summary.CompletedCount = s.Count
			summary.CompletedTotal = s.Amount
		}
	}
	return summary, nil
}
