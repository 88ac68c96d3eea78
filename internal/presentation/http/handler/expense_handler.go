package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/restrodesk/restrodesk-api/internal/application/service"
	"github.com/restrodesk/restrodesk-api/internal/presentation/http/dto/request"
	"github.com/restrodesk/restrodesk-api/internal/presentation/http/dto/response"
	"github.com/restrodesk/restrodesk-api/pkg/daterange"
)

// ExpenseHandler handles daily expense HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

func expenseInputFromRequest(req *request.ExpenseRequest) *service.ExpenseInput {
	return &service.ExpenseInput{
		Item:          req.Item,
		Quantity:      req.Quantity,
		Price:         req.Price,
		TotalPrice:    req.TotalPrice,
		ModeOfPayment: req.ModeOfPayment,
		Status:        req.Status,
	}
}

// parseDate reads a YYYY-MM-DD value, defaulting to today when empty
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", value)
}

// List returns the entries in a window, flattened across day sheets
func (h *ExpenseHandler) List(c *gin.Context) {
	window, err := daterange.Parse(
		c.Query("preset"),
		c.Query("startDate"),
		c.Query("endDate"),
		time.Now(),
	)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var minAmount, maxAmount *float64
	if v := c.Query("minAmount"); v != "" {
		parsed, err := parseAmount(v)
		if err != nil {
			response.BadRequest(c, "Invalid minAmount")
			return
		}
		minAmount = &parsed
	}
	if v := c.Query("maxAmount"); v != "" {
		parsed, err := parseAmount(v)
		if err != nil {
			response.BadRequest(c, "Invalid maxAmount")
			return
		}
		maxAmount = &parsed
	}

	entries, err := h.expenseService.ListEntries(c.Request.Context(), window.Start, window.End, minAmount, maxAmount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Expenses retrieved successfully", entries)
}

// Create appends an entry to a day's sheet
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req request.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	sheet, err := h.expenseService.AddExpense(c.Request.Context(), date, expenseInputFromRequest(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Expense added successfully", sheet)
}

// resolveSheet finds the day sheet an entry lives on from the request's
// date parameter.
func (h *ExpenseHandler) resolveSheet(c *gin.Context, dateStr string) (uuid.UUID, bool) {
	date, err := parseDate(dateStr)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return uuid.Nil, false
	}

	sheet, err := h.expenseService.GetByDate(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return uuid.Nil, false
	}
	if sheet.ID == uuid.Nil {
		response.NotFound(c, "No expenses recorded for this date")
		return uuid.Nil, false
	}
	return sheet.ID, true
}

// Update replaces one entry on a day's sheet
func (h *ExpenseHandler) Update(c *gin.Context) {
	expenseID, ok := parseIDParam(c, "expenseId")
	if !ok {
		return
	}

	var req request.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sheetID, ok := h.resolveSheet(c, req.Date)
	if !ok {
		return
	}

	sheet, err := h.expenseService.UpdateExpense(c.Request.Context(), sheetID, expenseID, expenseInputFromRequest(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Expense updated successfully", sheet)
}

// Delete removes one entry from a day's sheet
func (h *ExpenseHandler) Delete(c *gin.Context) {
	expenseID, ok := parseIDParam(c, "expenseId")
	if !ok {
		return
	}

	sheetID, ok := h.resolveSheet(c, c.Query("date"))
	if !ok {
		return
	}

	sheet, err := h.expenseService.DeleteExpense(c.Request.Context(), sheetID, expenseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Expense deleted successfully", sheet)
}

// Stats aggregates spend over a window
func (h *ExpenseHandler) Stats(c *gin.Context) {
	window, err := daterange.Parse(
		c.Query("preset"),
		c.Query("startDate"),
		c.Query("endDate"),
		time.Now(),
	)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	stats, err := h.expenseService.Stats(c.Request.Context(), window.Start, window.End)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Expense stats retrieved", stats)
}

// Monthly returns per-month spend totals, most recent first
func (h *ExpenseHandler) Monthly(c *gin.Context) {
	months := 12
	if v := c.Query("months"); v != "" {
		parsed, err := parseMonths(v)
		if err != nil {
			response.BadRequest(c, "Invalid months")
			return
		}
		months = parsed
	}

	totals, err := h.expenseService.Monthly(c.Request.Context(), months)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Monthly expenses retrieved", totals)
}

// DeleteRange removes every sheet between two dates
func (h *ExpenseHandler) DeleteRange(c *gin.Context) {
	var req request.DeleteExpenseRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		response.BadRequest(c, "Invalid start date, expected YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		response.BadRequest(c, "Invalid end date, expected YYYY-MM-DD")
		return
	}

	deleted, err := h.expenseService.DeleteRange(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Expenses deleted", gin.H{"deleted": deleted})
}
