package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
	"github.com/restrodesk/restrodesk-api/internal/domain/repository"
	"github.com/restrodesk/restrodesk-api/pkg/apperror"
)

// TableService manages the dining table layout
type TableService struct {
	tableRepo    repository.TableRepository
	holdBillRepo repository.HoldBillRepository
}

// NewTableService creates a new table service
func NewTableService(tableRepo repository.TableRepository, holdBillRepo repository.HoldBillRepository) *TableService {
	return &TableService{tableRepo: tableRepo, holdBillRepo: holdBillRepo}
}

// CreateTable adds one table. With number 0 the next free number is assigned.
func (s *TableService) CreateTable(ctx context.Context, number int) (*entity.Table, error) {
	if number < 0 {
		return nil, apperror.NewBadRequestError("Table number must be positive")
	}

	if number == 0 {
		max, err := s.tableRepo.MaxTableNumber(ctx)
		if err != nil {
			return nil, err
		}
		number = max + 1
	} else {
		existing, err := s.tableRepo.GetByNumber(ctx, number)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError(fmt.Sprintf("Table %d already exists", number))
		}
	}

	table := &entity.Table{
		TableNumber: number,
		Status:      enum.TableStatusAvailable,
	}
	if err := s.tableRepo.Create(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// CreateTables appends count tables numbered after the current highest
func (s *TableService) CreateTables(ctx context.Context, count int) ([]entity.Table, error) {
	if count < 1 || count > 200 {
		return nil, apperror.NewBadRequestError("Count must be between 1 and 200")
	}

	max, err := s.tableRepo.MaxTableNumber(ctx)
	if err != nil {
		return nil, err
	}

	tables := make([]entity.Table, count)
	for i := 0; i < count; i++ {
		tables[i] = entity.Table{
			TableNumber: max + i + 1,
			Status:      enum.TableStatusAvailable,
		}
	}
	if err := s.tableRepo.CreateBatch(ctx, tables); err != nil {
		return nil, err
	}
	return tables, nil
}

// ListTables returns all tables ordered by number
func (s *TableService) ListTables(ctx context.Context) ([]entity.Table, error) {
	return s.tableRepo.List(ctx)
}

// GetTable retrieves a table by ID
func (s *TableService) GetTable(ctx context.Context, id uuid.UUID) (*entity.Table, error) {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}
	return table, nil
}

// UpdateTableStatus manually flips a table's availability
func (s *TableService) UpdateTableStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Table, error) {
	tableStatus := enum.TableStatus(status)
	if !tableStatus.Valid() {
		return nil, apperror.NewBadRequestError("Invalid table status")
	}

	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}

	if err := s.tableRepo.UpdateStatus(ctx, id, tableStatus); err != nil {
		return nil, err
	}
	table.Status = tableStatus
	return table, nil
}

// DeleteTable removes a table. A table with staged orders cannot be
// removed; the orders must be finalized or cancelled first.
func (s *TableService) DeleteTable(ctx context.Context, id uuid.UUID) error {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if table == nil {
		return apperror.NewNotFoundError("Table")
	}

	open, err := s.holdBillRepo.CountOpenByTable(ctx, id)
	if err != nil {
		return err
	}
	if open > 0 {
		return apperror.NewConflictError("Table has open hold bills")
	}

	return s.tableRepo.Delete(ctx, id)
}
