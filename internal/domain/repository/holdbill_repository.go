package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
)

// HoldBillRepository defines the interface for hold bill data operations
type HoldBillRepository interface {
	Create(ctx context.Context, holdBill *entity.HoldBill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.HoldBill, error)
	Update(ctx context.Context, holdBill *entity.HoldBill) error
	// ListOpenByTable returns HOLD bills for a table, oldest first.
	ListOpenByTable(ctx context.Context, tableID uuid.UUID) ([]entity.HoldBill, error)
	List(ctx context.Context, status *enum.HoldBillStatus) ([]entity.HoldBill, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.HoldBillStatus) error
	// CountOpenByTable reports how many HOLD bills reference a table.
	CountOpenByTable(ctx context.Context, tableID uuid.UUID) (int64, error)
}
