package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/restrodesk/restrodesk-api/internal/application/service"
	"github.com/restrodesk/restrodesk-api/internal/domain/repository"
	"github.com/restrodesk/restrodesk-api/internal/presentation/http/dto/response"
	"github.com/restrodesk/restrodesk-api/pkg/daterange"
	"github.com/restrodesk/restrodesk-api/pkg/pagination"
)

// ReportHandler handles reporting HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// resolveRange reads the preset/startDate/endDate query parameters.
// Explicit dates win over the preset; the default window is today.
func resolveRange(c *gin.Context) (daterange.Range, bool) {
	window, err := daterange.Parse(
		c.Query("preset"),
		c.Query("startDate"),
		c.Query("endDate"),
		time.Now(),
	)
	if err != nil {
		response.BadRequest(c, err.Error())
		return daterange.Range{}, false
	}
	return window, true
}

// ItemSales reports per-product quantities and revenue over a window,
// sorted by ?sortBy=quantity|revenue and paginated with ?page and ?limit
func (h *ReportHandler) ItemSales(c *gin.Context) {
	window, ok := resolveRange(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	report, err := h.reportService.ItemSales(c.Request.Context(), &repository.ItemSalesParams{
		Start:      window.Start,
		End:        window.End,
		SortBy:     c.Query("sortBy"),
		Pagination: &pagination.PaginationParams{Page: page, PerPage: limit},
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item sales report generated", report)
}

// Overview combines the bill summary with the expense total
func (h *ReportHandler) Overview(c *gin.Context) {
	window, ok := resolveRange(c)
	if !ok {
		return
	}

	overview, err := h.reportService.SalesOverview(c.Request.Context(), window.Start, window.End)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales overview generated", overview)
}

// KitchenStatus returns today's bill counts and open hold bills
func (h *ReportHandler) KitchenStatus(c *gin.Context) {
	status, err := h.reportService.KitchenStatus(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Kitchen status retrieved", status)
}
