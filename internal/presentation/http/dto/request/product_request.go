package request

// VariantRequest is one named price option on a product
type VariantRequest struct {
	Name  string  `json:"name" binding:"required,min=1,max=100"`
	Price float64 `json:"price" binding:"min=0"`
}

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Category     string           `json:"category" binding:"required"`
	ItemName     string           `json:"itemName" binding:"required,min=1,max=255"`
	PricingType  string           `json:"pricingType" binding:"required"`
	BasePrice    *float64         `json:"basePrice" binding:"omitempty,min=0"`
	MRP          *float64         `json:"mrp" binding:"omitempty,min=0"`
	SellingPrice *float64         `json:"sellingPrice" binding:"omitempty,min=0"`
	Type         string           `json:"type" binding:"required"`
	UnitType     string           `json:"unitType" binding:"required"`
	Variants     []VariantRequest `json:"variants" binding:"omitempty,dive"`
}

// UpdateProductRequest reuses the create shape; all catalog fields are
// replaced together so partially-updated pricing never persists.
type UpdateProductRequest = CreateProductRequest

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search      string `form:"search"`
	Category    string `form:"category"`
	Type        string `form:"type"`
	PricingType string `form:"pricingType"`
	InStock     *bool  `form:"inStock"`
	SortBy      string `form:"sortBy"`
	SortOrder   string `form:"sortOrder"`
	Page        int    `form:"page"`
	PerPage     int    `form:"perPage"`
}

// StockRequest toggles a product's stock state. Duration is one of the
// named presets and only read when inStock is false.
type StockRequest struct {
	InStock  bool   `json:"inStock"`
	Duration string `json:"duration" binding:"omitempty,oneof=2hour 6hour 1day 1week indefinite"`
}
