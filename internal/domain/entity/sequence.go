package entity

import (
	"github.com/google/uuid"
)

// SequenceCounter is a per-(restaurant, name) monotonic counter.
// Bill numbers come from here via a single atomic increment-and-read;
// the unique index on bills (restaurant_id, bill_number) is the backstop.
type SequenceCounter struct {
	RestaurantID uuid.UUID `gorm:"type:uuid;primaryKey" json:"restaurant_id"`
	Name         string    `gorm:"size:50;primaryKey" json:"name"`
	Seq          int64     `gorm:"not null;default:0" json:"seq"`
}

// Counter names used by the application.
const (
	CounterBillNumber = "billNumber"
	CounterKOTNumber  = "kotNumber"
)

// TableName returns the table name for the SequenceCounter model
func (SequenceCounter) TableName() string {
	return "sequence_counters"
}
