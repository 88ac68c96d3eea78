package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
)

// Variant is a named price option on a product (e.g. "Half" / "Full").
// Variants are stored inline as jsonb, not as rows of their own.
type Variant struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Variants is the jsonb-serialized list of product variants.
type Variants []Variant

// Product is a catalog entry. Pricing is either a flat basePrice (taxable)
// or an mrp/sellingPrice pair (tax already included in the printed price).
// Invariant: for mrp products, sellingPrice <= mrp.
type Product struct {
	ID              uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	RestaurantID    uuid.UUID            `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	Category        enum.ProductCategory `gorm:"size:20;not null" json:"category"`
	ItemName        string               `gorm:"size:255;not null" json:"itemName"`
	PricingType     enum.PricingType     `gorm:"size:20;not null;default:'basePrice'" json:"pricingType"`
	BasePrice       *float64             `json:"basePrice,omitempty"`
	MRP             *float64             `gorm:"column:mrp" json:"mrp,omitempty"`
	SellingPrice    *float64             `json:"sellingPrice,omitempty"`
	Type            enum.ProductType     `gorm:"size:20;not null" json:"type"`
	UnitType        enum.UnitType        `gorm:"size:20;not null" json:"unitType"`
	Variants        Variants             `gorm:"type:jsonb;serializer:json" json:"variants"`
	ImageURL        *string              `gorm:"size:500" json:"imageUrl,omitempty"`
	InStock         bool                 `gorm:"default:true" json:"inStock"`
	OutOfStockUntil *time.Time           `json:"outOfStockUntil,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
	DeletedAt       gorm.DeletedAt       `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// UnitPrice returns the price a plain (variant-less) order line is charged at:
// sellingPrice for mrp products, basePrice otherwise.
func (p *Product) UnitPrice() float64 {
	if p.PricingType == enum.PricingTypeMRP {
		if p.SellingPrice != nil {
			return *p.SellingPrice
		}
		return 0
	}
	if p.BasePrice != nil {
		return *p.BasePrice
	}
	return 0
}

// FindVariant looks up a variant by name.
func (p *Product) FindVariant(name string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].Name == name {
			return &p.Variants[i]
		}
	}
	return nil
}
