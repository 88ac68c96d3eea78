package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
)

// Table is a dining table. Its status is driven by the hold-bill lifecycle:
// staging an order occupies it, finalizing the bill frees it.
type Table struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	RestaurantID uuid.UUID        `gorm:"type:uuid;not null;index:idx_tables_restaurant_number" json:"restaurant_id"`
	TableNumber  int              `gorm:"not null;index:idx_tables_restaurant_number" json:"tableNumber"`
	Status       enum.TableStatus `gorm:"size:20;not null;default:'Available'" json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new table
func (t *Table) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Table model
func (Table) TableName() string {
	return "tables"
}
