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

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new daily expense repository
func NewExpenseRepository(db *gorm.DB) domainRepo.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) GetByDate(ctx context.Context, date time.Time) (*entity.DailyExpense, error) {
	var expense entity.DailyExpense
	day := date.Format("2006-01-02")
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		First(&expense, "date = ?", day).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &expense, err
}

func (r *expenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DailyExpense, error) {
	var expense entity.DailyExpense
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		First(&expense, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &expense, err
}

func (r *expenseRepository) Create(ctx context.Context, expense *entity.DailyExpense) error {
	if expense.RestaurantID == uuid.Nil {
		restaurantID, ok := GetRestaurantID(ctx)
		if !ok {
			return gorm.ErrMissingWhereClause
		}
		expense.RestaurantID = restaurantID
	}
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) Update(ctx context.Context, expense *entity.DailyExpense) error {
	return r.db.WithContext(ctx).Scopes(TenantScope(ctx)).Save(expense).Error
}

func (r *expenseRepository) ListRange(ctx context.Context, start, end time.Time) ([]entity.DailyExpense, error) {
	var expenses []entity.DailyExpense
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		Where("date >= ? AND date <= ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("date DESC").
		Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepository) DeleteRange(ctx context.Context, start, end time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		Where("date >= ? AND date <= ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Delete(&entity.DailyExpense{})
	return result.RowsAffected, result.Error
}

func (r *expenseRepository) MonthlyTotals(ctx context.Context, months int) ([]domainRepo.MonthlyExpense, error) {
	restaurantID, ok := GetRestaurantID(ctx)
	if !ok {
		return []domainRepo.MonthlyExpense{}, nil
	}

	var rows []domainRepo.MonthlyExpense
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			to_char(date, 'YYYY-MM')        AS month,
			COALESCE(SUM(total_daily_expense), 0) AS total,
			COUNT(*)                        AS days
		FROM daily_expenses
		WHERE restaurant_id = ?
		  AND deleted_at IS NULL
		GROUP BY 1
		ORDER BY 1 DESC
		LIMIT ?`,
		restaurantID, months,
	).Scan(&rows).Error
	return rows, err
}
