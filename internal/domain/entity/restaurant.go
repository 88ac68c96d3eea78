package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Restaurant is one outlet. It is the tenant boundary for every other record.
type Restaurant struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	Address   string         `gorm:"size:500" json:"address,omitempty"`
	Phone     string         `gorm:"size:20" json:"phone,omitempty"`
	GSTIN     string         `gorm:"size:20" json:"gstin,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new restaurant
func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Restaurant model
func (Restaurant) TableName() string {
	return "restaurants"
}
