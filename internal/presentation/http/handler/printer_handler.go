package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/restrodesk/restrodesk-api/internal/application/service"
	"github.com/restrodesk/restrodesk-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles thermal printer HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus reports printer connection status
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status", h.printerService.GetStatus())
}

// PrintBill renders and prints a bill receipt. The receipt payload is
// returned so clients can fall back to browser printing when no thermal
// printer is attached.
func (h *PrinterHandler) PrintBill(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	receipt, printCount, err := h.printerService.PrintBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed", gin.H{
		"receipt":    receipt,
		"printCount": printCount,
	})
}

// PrintKitchenTicket prints a kitchen ticket for a staged order
func (h *PrinterHandler) PrintKitchenTicket(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ticket, err := h.printerService.PrintKitchenTicket(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Kitchen ticket printed", ticket)
}
