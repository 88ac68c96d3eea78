package repository

import (
	"context"
	"time"

	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
	domainRepo "github.com/restrodesk/restrodesk-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

const itemSalesGrouped = `
	SELECT
		item->>'productId'                         AS product_id,
		item->>'itemName'                          AS item_name,
		COALESCE(item->'variant'->>'name', '')     AS variant,
		item->>'category'                          AS category,
		item->>'pricingType'                       AS pricing_type,
		SUM((item->>'quantity')::bigint)           AS quantity,
		SUM((item->>'price')::numeric * (item->>'quantity')::bigint) AS revenue,
		AVG((item->>'price')::numeric)             AS average_price
	FROM bills, jsonb_array_elements(items) AS item
	WHERE restaurant_id = ?
	  AND status = ?
	  AND created_at >= ? AND created_at <= ?
	  AND deleted_at IS NULL
	GROUP BY 1, 2, 3, 4, 5`

// ItemSales expands the jsonb items column of completed bills and groups by
// product and variant. Revenue is price * quantity per line, summed.
func (r *reportRepository) ItemSales(ctx context.Context, params *domainRepo.ItemSalesParams) ([]domainRepo.ItemSalesRow, int64, error) {
	restaurantID, ok := GetRestaurantID(ctx)
	if !ok {
		return []domainRepo.ItemSalesRow{}, 0, nil
	}

	args := []interface{}{restaurantID, enum.BillStatusCompleted, params.Start, params.End}

	var total int64
	err := r.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM ("+itemSalesGrouped+") grouped", args...).
		Scan(&total).Error
	if err != nil {
		return nil, 0, err
	}

	// SortBy is validated upstream; anything else falls back to quantity.
	orderCol := "quantity"
	if params.SortBy == "revenue" {
		orderCol = "revenue"
	}

	params.Pagination.Validate()
	var rows []domainRepo.ItemSalesRow
	err = r.db.WithContext(ctx).
		Raw(itemSalesGrouped+" ORDER BY "+orderCol+" DESC LIMIT ? OFFSET ?",
			append(args, params.Pagination.PerPage, params.Pagination.Offset())...).
		Scan(&rows).Error
	return rows, total, err
}

func (r *reportRepository) ExpenseTotal(ctx context.Context, start, end time.Time) (float64, error) {
	restaurantID, ok := GetRestaurantID(ctx)
	if !ok {
		return 0, nil
	}

	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_daily_expense), 0)
		FROM daily_expenses
		WHERE restaurant_id = ?
		  AND date >= ? AND date <= ?
		  AND deleted_at IS NULL`,
		restaurantID, start.Format("2006-01-02"), end.Format("2006-01-02"),
	).Scan(&total).Error
	return total, err
}
