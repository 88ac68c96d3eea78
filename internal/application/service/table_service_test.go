package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
	"github.com/restrodesk/restrodesk-api/pkg/apperror"
)

func TestCreateTableAssignsNextNumber(t *testing.T) {
	tableRepo := new(MockTableRepository)
	tableRepo.On("MaxTableNumber", mock.Anything).Return(5, nil)
	tableRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewTableService(tableRepo, new(MockHoldBillRepository))
	table, err := svc.CreateTable(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, 6, table.TableNumber)
	assert.Equal(t, enum.TableStatusAvailable, table.Status)
}

func TestCreateTableRejectsDuplicateNumber(t *testing.T) {
	tableRepo := new(MockTableRepository)
	tableRepo.On("GetByNumber", mock.Anything, 3).Return(&entity.Table{TableNumber: 3}, nil)

	svc := NewTableService(tableRepo, new(MockHoldBillRepository))
	_, err := svc.CreateTable(context.Background(), 3)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestCreateTablesNumbersSequentially(t *testing.T) {
	tableRepo := new(MockTableRepository)
	tableRepo.On("MaxTableNumber", mock.Anything).Return(2, nil)
	tableRepo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)

	svc := NewTableService(tableRepo, new(MockHoldBillRepository))
	tables, err := svc.CreateTables(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, tables, 3)
	assert.Equal(t, 3, tables[0].TableNumber)
	assert.Equal(t, 5, tables[2].TableNumber)
}

func TestDeleteTableBlockedByOpenHoldBills(t *testing.T) {
	table := &entity.Table{ID: uuid.New(), TableNumber: 1}

	tableRepo := new(MockTableRepository)
	tableRepo.On("GetByID", mock.Anything, table.ID).Return(table, nil)
	holdBillRepo := new(MockHoldBillRepository)
	holdBillRepo.On("CountOpenByTable", mock.Anything, table.ID).Return(int64(1), nil)

	svc := NewTableService(tableRepo, holdBillRepo)
	err := svc.DeleteTable(context.Background(), table.ID)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
	tableRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteTableSucceedsWhenFree(t *testing.T) {
	table := &entity.Table{ID: uuid.New(), TableNumber: 1}

	tableRepo := new(MockTableRepository)
	tableRepo.On("GetByID", mock.Anything, table.ID).Return(table, nil)
	tableRepo.On("Delete", mock.Anything, table.ID).Return(nil)
	holdBillRepo := new(MockHoldBillRepository)
	holdBillRepo.On("CountOpenByTable", mock.Anything, table.ID).Return(int64(0), nil)

	svc := NewTableService(tableRepo, holdBillRepo)
	require.NoError(t, svc.DeleteTable(context.Background(), table.ID))
}

func TestUpdateTableStatusRejectsUnknown(t *testing.T) {
	svc := NewTableService(new(MockTableRepository), new(MockHoldBillRepository))
	_, err := svc.UpdateTableStatus(context.Background(), uuid.New(), "Reserved")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
