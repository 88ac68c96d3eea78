package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/restrodesk/restrodesk-api/internal/application/service"
	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
	"github.com/restrodesk/restrodesk-api/internal/presentation/http/dto/request"
	"github.com/restrodesk/restrodesk-api/internal/presentation/http/dto/response"
)

// HoldBillHandler handles staged order HTTP requests
type HoldBillHandler struct {
	holdBillService *service.HoldBillService
}

// NewHoldBillHandler creates a new hold bill handler
func NewHoldBillHandler(holdBillService *service.HoldBillService) *HoldBillHandler {
	return &HoldBillHandler{holdBillService: holdBillService}
}

func holdBillItems(reqs []request.HoldBillItemRequest) []service.HoldBillItemInput {
	items := make([]service.HoldBillItemInput, len(reqs))
	for i, r := range reqs {
		items[i] = service.HoldBillItemInput{
			ProductID: r.ProductID,
			Quantity:  r.Quantity,
			Variant:   r.Variant,
			Names:     r.Names,
		}
	}
	return items
}

// Create stages an order against a table
func (h *HoldBillHandler) Create(c *gin.Context) {
	var req request.CreateHoldBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	holdBill, err := h.holdBillService.CreateHoldBill(c.Request.Context(), &service.CreateHoldBillInput{
		TableID:            req.TableID,
		Items:              holdBillItems(req.Items),
		DiscountPercentage: req.DiscountPercentage,
		DiscountAmount:     req.DiscountAmount,
		PaymentMode:        req.PaymentMode,
		Names:              req.Names,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Hold bill created successfully", holdBill)
}

// List handles listing hold bills, optionally filtered by status
func (h *HoldBillHandler) List(c *gin.Context) {
	var status *enum.HoldBillStatus
	if s := c.Query("status"); s != "" {
		holdStatus := enum.HoldBillStatus(s)
		if !holdStatus.Valid() {
			response.BadRequest(c, "Invalid hold bill status")
			return
		}
		status = &holdStatus
	}

	holdBills, err := h.holdBillService.ListHoldBills(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Hold bills retrieved successfully", holdBills)
}

// Get handles retrieving a single hold bill
func (h *HoldBillHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	holdBill, err := h.holdBillService.GetHoldBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Hold bill retrieved successfully", holdBill)
}

// ListByTable returns a table's open hold bills, newest first
func (h *HoldBillHandler) ListByTable(c *gin.Context) {
	tableID, ok := parseIDParam(c, "tableId")
	if !ok {
		return
	}

	holdBills, err := h.holdBillService.ListOpenByTable(c.Request.Context(), tableID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Hold bills retrieved successfully", holdBills)
}

// Update merges items into a staged order. Lines that no longer resolve
// against the catalog are reported back alongside the applied subset.
func (h *HoldBillHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateHoldBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	holdBill, invalid, err := h.holdBillService.UpdateHoldBill(c.Request.Context(), id, holdBillItems(req.Items))
	if err != nil {
		response.Error(c, err)
		return
	}

	if len(invalid) > 0 {
		response.SuccessWithWarning(c,
			"Hold bill updated",
			"Some products could not be added",
			holdBill,
			gin.H{"invalidProducts": invalid},
		)
		return
	}
	response.OK(c, "Hold bill updated successfully", holdBill)
}

// Resume pulls a staged order back into the cart
func (h *HoldBillHandler) Resume(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	holdBill, err := h.holdBillService.ResumeHoldBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Hold bill resumed", holdBill)
}

// Delete cancels a staged order
func (h *HoldBillHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.holdBillService.CancelHoldBill(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Hold bill cancelled", nil)
}
