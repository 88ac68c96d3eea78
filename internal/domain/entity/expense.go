package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpenseItem is one cost entry inside a daily expense sheet, stored as jsonb.
type ExpenseItem struct {
	ID            uuid.UUID `json:"id"`
	Item          string    `json:"item"`
	Quantity      *float64  `json:"quantity,omitempty"`
	Price         *float64  `json:"price,omitempty"`
	TotalPrice    float64   `json:"totalPrice"`
	ModeOfPayment string    `json:"modeOfPayment"`
	Status        string    `json:"status"`
}

// ExpenseItems is the jsonb-serialized list of expense entries.
type ExpenseItems []ExpenseItem

// DailyExpense groups all expense entries of one restaurant for one day.
type DailyExpense struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	RestaurantID      uuid.UUID      `gorm:"type:uuid;not null;index:idx_expenses_restaurant_date" json:"restaurant_id"`
	Date              time.Time      `gorm:"type:date;not null;index:idx_expenses_restaurant_date" json:"date"`
	Expenses          ExpenseItems   `gorm:"type:jsonb;serializer:json" json:"expenses"`
	TotalDailyExpense float64        `gorm:"default:0" json:"totalDailyExpense"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new daily expense
func (d *DailyExpense) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// BeforeSave keeps the daily total in sync with the embedded entries.
func (d *DailyExpense) BeforeSave(tx *gorm.DB) error {
	var total float64
	for _, e := range d.Expenses {
		total += e.TotalPrice
	}
	d.TotalDailyExpense = total
	return nil
}

// TableName returns the table name for the DailyExpense model
func (DailyExpense) TableName() string {
	return "daily_expenses"
}

// FindExpense returns the embedded entry with the given id, or nil.
func (d *DailyExpense) FindExpense(id uuid.UUID) *ExpenseItem {
	for i := range d.Expenses {
		if d.Expenses[i].ID == id {
			return &d.Expenses[i]
		}
	}
	return nil
}

// RemoveExpense drops the embedded entry with the given id.
// It reports whether an entry was removed.
func (d *DailyExpense) RemoveExpense(id uuid.UUID) bool {
	for i := range d.Expenses {
		if d.Expenses[i].ID == id {
			d.Expenses = append(d.Expenses[:i], d.Expenses[i+1:]...)
			return true
		}
	}
	return false
}
