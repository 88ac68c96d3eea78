package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
)

// Bill is the immutable, numbered record produced by finalizing a table's
// hold bills. Only payment fields and printCount may change afterwards.
type Bill struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	BillNumber         int64              `gorm:"not null;uniqueIndex:idx_bills_restaurant_bill_number,priority:2" json:"billNumber"`
	RestaurantID       uuid.UUID          `gorm:"type:uuid;not null;index:idx_bills_restaurant_created;index:idx_bills_restaurant_status;uniqueIndex:idx_bills_restaurant_bill_number,priority:1" json:"restaurant_id"`
	TableID            uuid.UUID          `gorm:"type:uuid;not null;index" json:"tableId"`
	TableNumber        int                `gorm:"not null" json:"tableNumber"`
	Items              BillItems          `gorm:"type:jsonb;serializer:json" json:"items"`
	Status             enum.BillStatus    `gorm:"size:20;not null;default:'ACTIVE';index:idx_bills_restaurant_status,priority:2" json:"status"`
	PaymentStatus      enum.PaymentStatus `gorm:"size:20;not null;default:'PENDING'" json:"paymentStatus"`
	PaymentMethod      enum.PaymentMethod `gorm:"size:10;not null;default:'CASH'" json:"paymentMethod"`
	Subtotal           float64            `gorm:"not null" json:"subtotal"`
	CGST               float64            `gorm:"column:cgst;not null" json:"cgst"`
	SGST               float64            `gorm:"column:sgst;not null" json:"sgst"`
	DiscountPercentage float64            `gorm:"default:0" json:"discountPercentage"`
	DiscountAmount     float64            `gorm:"default:0" json:"discountAmount"`
	TotalAmount        float64            `gorm:"not null;index" json:"totalAmount"`
	Names              string             `gorm:"size:500" json:"names,omitempty"`
	PrintCount         int                `gorm:"default:0" json:"printCount"`
	CreatedAt          time.Time          `gorm:"index:idx_bills_restaurant_created,priority:2,sort:desc" json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	DeletedAt          gorm.DeletedAt     `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}
