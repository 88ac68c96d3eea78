package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
)

// TableRepository defines the interface for dining table data operations
type TableRepository interface {
	Create(ctx context.Context, table *entity.Table) error
	CreateBatch(ctx context.Context, tables []entity.Table) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Table, error)
	GetByNumber(ctx context.Context, number int) (*entity.Table, error)
	List(ctx context.Context) ([]entity.Table, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.TableStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	// MaxTableNumber returns the highest table number, 0 when none exist.
	MaxTableNumber(ctx context.Context) (int, error)
}
