package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/restrodesk/restrodesk-api/internal/domain/billing"
	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
)

// ItemVariant is the variant snapshot carried on an order line.
type ItemVariant struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// BillItem is one order line, snapshotted at staging time: name, price,
// category and pricing type are copied from the catalog, never joined back.
// Later product edits must not alter open or historical bills.
type BillItem struct {
	ProductID   uuid.UUID            `json:"productId"`
	ItemName    string               `json:"itemName"`
	Quantity    int                  `json:"quantity"`
	Price       float64              `json:"price"`
	PricingType enum.PricingType     `json:"pricingType"`
	Category    enum.ProductCategory `json:"category"`
	Variant     *ItemVariant         `json:"variant,omitempty"`
	Names       string               `json:"names,omitempty"`
}

// SameLine reports whether another item lands on the same bill line:
// identical product and identical variant name (both absent also matches).
func (i BillItem) SameLine(other BillItem) bool {
	if i.ProductID != other.ProductID {
		return false
	}
	if i.Variant == nil && other.Variant == nil {
		return true
	}
	if i.Variant == nil || other.Variant == nil {
		return false
	}
	return i.Variant.Name == other.Variant.Name
}

// Line converts the item into its pricing view for the billing calculator.
func (i BillItem) Line() billing.Line {
	return billing.Line{Price: i.Price, Quantity: i.Quantity, PricingType: i.PricingType}
}

// BillItems is the jsonb-serialized list of snapshotted order lines.
type BillItems []BillItem

// Lines converts all items into their pricing view.
func (items BillItems) Lines() []billing.Line {
	lines := make([]billing.Line, len(items))
	for i, item := range items {
		lines[i] = item.Line()
	}
	return lines
}

// Merge folds new items into the list: quantities sum when product and
// variant match an existing line, otherwise the item is appended.
func (items BillItems) Merge(incoming BillItems) BillItems {
	merged := make(BillItems, len(items))
	copy(merged, items)

	for _, item := range incoming {
		found := false
		for i := range merged {
			if merged[i].SameLine(item) {
				merged[i].Quantity += item.Quantity
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, item)
		}
	}
	return merged
}

// HoldBill is a staged, uncommitted order for one table. Mutable while HOLD;
// finalization flips it to RESUMED and it never changes again.
type HoldBill struct {
	ID                 uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	RestaurantID       uuid.UUID           `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	TableID            uuid.UUID           `gorm:"type:uuid;not null;index" json:"tableId"`
	TableNumber        int                 `gorm:"not null" json:"tableNumber"`
	Items              BillItems           `gorm:"type:jsonb;serializer:json" json:"items"`
	Status             enum.HoldBillStatus `gorm:"size:20;not null;default:'HOLD';index" json:"status"`
	Subtotal           float64             `gorm:"not null" json:"subtotal"`
	CGST               float64             `gorm:"column:cgst;not null" json:"cgst"`
	SGST               float64             `gorm:"column:sgst;not null" json:"sgst"`
	DiscountPercentage float64             `gorm:"default:0" json:"discountPercentage"`
	DiscountAmount     float64             `gorm:"default:0" json:"discountAmount"`
	TotalAmount        float64             `gorm:"not null" json:"totalAmount"`
	PaymentMode        enum.PaymentMode    `gorm:"size:10;not null;default:'Cash'" json:"paymentMode"`
	Names              string              `gorm:"size:500" json:"names,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
	DeletedAt          gorm.DeletedAt      `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new hold bill
func (h *HoldBill) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the HoldBill model
func (HoldBill) TableName() string {
	return "hold_bills"
}

// ApplyTotals copies calculator output onto the persisted derived columns.
func (h *HoldBill) ApplyTotals(t billing.Totals) {
	h.Subtotal = t.Subtotal
	h.CGST = t.CGST
	h.SGST = t.SGST
	h.DiscountAmount = t.Discount
	h.TotalAmount = t.Total
}
