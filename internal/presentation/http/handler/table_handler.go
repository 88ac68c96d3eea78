package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/restrodesk/restrodesk-api/internal/application/service"
	"github.com/restrodesk/restrodesk-api/internal/presentation/http/dto/request"
	"github.com/restrodesk/restrodesk-api/internal/presentation/http/dto/response"
)

// TableHandler handles dining table HTTP requests
type TableHandler struct {
	tableService *service.TableService
}

// NewTableHandler creates a new table handler
func NewTableHandler(tableService *service.TableService) *TableHandler {
	return &TableHandler{tableService: tableService}
}

// List handles listing all tables
func (h *TableHandler) List(c *gin.Context) {
	tables, err := h.tableService.ListTables(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Tables retrieved successfully", tables)
}

// Create handles creating a single table
func (h *TableHandler) Create(c *gin.Context) {
	var req request.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	table, err := h.tableService.CreateTable(c.Request.Context(), req.TableNumber)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Table created successfully", table)
}

// CreateBulk handles creating a run of sequentially numbered tables
func (h *TableHandler) CreateBulk(c *gin.Context) {
	var req request.CreateTablesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tables, err := h.tableService.CreateTables(c.Request.Context(), req.Count)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Tables created successfully", tables)
}

// UpdateStatus handles an explicit table status change
func (h *TableHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "tableId")
	if !ok {
		return
	}

	var req request.TableStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	table, err := h.tableService.UpdateTableStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Table status updated", table)
}

// Delete handles table deletion
func (h *TableHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "tableId")
	if !ok {
		return
	}

	if err := h.tableService.DeleteTable(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Table deleted successfully", nil)
}
