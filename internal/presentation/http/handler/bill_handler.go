package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/restrodesk/restrodesk-api/internal/application/service"
	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
	"github.com/restrodesk/restrodesk-api/internal/domain/repository"
	"github.com/restrodesk/restrodesk-api/internal/presentation/http/dto/request"
	"github.com/restrodesk/restrodesk-api/internal/presentation/http/dto/response"
	"github.com/restrodesk/restrodesk-api/pkg/daterange"
	"github.com/restrodesk/restrodesk-api/pkg/pagination"
)

// BillHandler handles finalized bill HTTP requests
type BillHandler struct {
	billService *service.BillService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *service.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

// Save folds a table's open hold bills into one numbered bill. The id
// path parameter names the table, not a bill.
func (h *BillHandler) Save(c *gin.Context) {
	tableID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	bill, err := h.billService.SaveBill(c.Request.Context(), tableID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Bill saved successfully", bill)
}

// List handles listing bills with filters and pagination
func (h *BillHandler) List(c *gin.Context) {
	var filter request.BillFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.BillFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		TableNumber: filter.TableNumber,
		BillNumber:  filter.BillNumber,
		MinAmount:   filter.MinAmount,
		MaxAmount:   filter.MaxAmount,
		SortBy:      filter.SortBy,
		SortOrder:   filter.SortOrder,
	}
	if filter.Status != "" {
		status := enum.BillStatus(filter.Status)
		if !status.Valid() {
			response.BadRequest(c, "Invalid bill status")
			return
		}
		params.Status = &status
	}
	if filter.PaymentStatus != "" {
		paymentStatus := enum.PaymentStatus(filter.PaymentStatus)
		if !paymentStatus.Valid() {
			response.BadRequest(c, "Invalid payment status")
			return
		}
		params.PaymentStatus = &paymentStatus
	}
	if filter.PaymentMethod != "" {
		method := enum.PaymentMethod(filter.PaymentMethod)
		if !method.Valid() {
			response.BadRequest(c, "Invalid payment method")
			return
		}
		params.PaymentMethod = &method
	}
	if filter.StartDate != "" {
		start, err := time.Parse("2006-01-02", filter.StartDate)
		if err != nil {
			response.BadRequest(c, "Invalid start date, expected YYYY-MM-DD")
			return
		}
		start = daterange.StartOfDay(start)
		params.StartDate = &start
	}
	if filter.EndDate != "" {
		end, err := time.Parse("2006-01-02", filter.EndDate)
		if err != nil {
			response.BadRequest(c, "Invalid end date, expected YYYY-MM-DD")
			return
		}
		end = daterange.EndOfDay(end)
		params.EndDate = &end
	}

	result, err := h.billService.ListBills(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// Summary aggregates bills over a mandatory date range
func (h *BillHandler) Summary(c *gin.Context) {
	startStr := c.Query("startDate")
	endStr := c.Query("endDate")
	if startStr == "" || endStr == "" {
		response.BadRequest(c, "startDate and endDate are required")
		return
	}

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		response.BadRequest(c, "Invalid start date, expected YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		response.BadRequest(c, "Invalid end date, expected YYYY-MM-DD")
		return
	}

	summary, err := h.billService.GetSummary(c.Request.Context(), daterange.StartOfDay(start), daterange.EndOfDay(end))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bill summary retrieved successfully", summary)
}

// Get handles retrieving a single bill
func (h *BillHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	bill, err := h.billService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bill retrieved successfully", bill)
}

// Update amends a finalized bill
func (h *BillHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateBillInput{
		DiscountPercentage: req.DiscountPercentage,
		PaymentMethod:      req.PaymentMethod,
		Status:             req.Status,
	}
	for _, item := range req.Items {
		line := entity.BillItem{
			ProductID:   item.ProductID,
			ItemName:    item.ItemName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			PricingType: enum.PricingType(item.PricingType),
			Category:    enum.ProductCategory(item.Category),
		}
		if item.Variant != "" {
			line.Variant = &entity.ItemVariant{Name: item.Variant, Price: item.Price}
		}
		input.Items = append(input.Items, line)
	}

	bill, err := h.billService.UpdateBill(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bill updated successfully", bill)
}

// UpdatePaymentMethod settles a bill with the given tender
func (h *BillHandler) UpdatePaymentMethod(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.billService.UpdatePaymentMethod(c.Request.Context(), id, req.PaymentMethod)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment method updated", bill)
}

// ActiveByTable returns the table's current unsettled bill
func (h *BillHandler) ActiveByTable(c *gin.Context) {
	tableID, ok := parseIDParam(c, "tableId")
	if !ok {
		return
	}

	bill, err := h.billService.GetActiveBillByTable(c.Request.Context(), tableID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Active bill retrieved successfully", bill)
}
