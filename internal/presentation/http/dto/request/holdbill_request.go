package request

import "github.com/google/uuid"

// HoldBillItemRequest is one ordered line, resolved against the catalog
type HoldBillItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"min=0"`
	Variant   string    `json:"variant" binding:"omitempty,max=100"`
	Names     string    `json:"names" binding:"omitempty,max=255"`
}

// CreateHoldBillRequest stages an order against a table
type CreateHoldBillRequest struct {
	TableID            uuid.UUID             `json:"tableId" binding:"required"`
	Items              []HoldBillItemRequest `json:"items" binding:"required,min=1,dive"`
	DiscountPercentage float64               `json:"discountPercentage" binding:"min=0"`
	DiscountAmount     float64               `json:"discountAmount" binding:"min=0"`
	PaymentMode        string                `json:"paymentMode" binding:"omitempty"`
	Names              string                `json:"names" binding:"omitempty,max=255"`
}

// UpdateHoldBillRequest replaces or extends a staged order's items
type UpdateHoldBillRequest struct {
	Items []HoldBillItemRequest `json:"items" binding:"required,min=1,dive"`
}
