package request

import "github.com/google/uuid"

// BillItemRequest is one snapshot line supplied on a bill amendment
type BillItemRequest struct {
	ProductID   uuid.UUID `json:"productId" binding:"required"`
	ItemName    string    `json:"itemName" binding:"required,max=255"`
	Quantity    int       `json:"quantity" binding:"min=0"`
	Price       float64   `json:"price" binding:"min=0"`
	PricingType string    `json:"pricingType" binding:"required"`
	Category    string    `json:"category" binding:"omitempty"`
	Variant     string    `json:"variant" binding:"omitempty,max=100"`
}

// UpdateBillRequest amends a finalized bill
type UpdateBillRequest struct {
	Items              []BillItemRequest `json:"items" binding:"omitempty,dive"`
	DiscountPercentage *float64          `json:"discountPercentage"`
	PaymentMethod      *string           `json:"paymentMethod"`
	Status             *string           `json:"status"`
}

// PaymentMethodRequest settles a bill with the given tender
type PaymentMethodRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// BillFilterRequest represents bill filter parameters
type BillFilterRequest struct {
	Status        string   `form:"status"`
	PaymentStatus string   `form:"paymentStatus"`
	PaymentMethod string   `form:"paymentMethod"`
	TableNumber   *int     `form:"tableNumber"`
	BillNumber    *int64   `form:"billNumber"`
	StartDate     string   `form:"startDate"`
	EndDate       string   `form:"endDate"`
	MinAmount     *float64 `form:"minAmount"`
	MaxAmount     *float64 `form:"maxAmount"`
	SortBy        string   `form:"sortBy"`
	SortOrder     string   `form:"sortOrder"`
	Page          int      `form:"page"`
	PerPage       int      `form:"perPage"`
}
