package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyKey stores processed requests to prevent duplicates.
// Keys are scoped per restaurant so two tenants may reuse the same key.
type IdempotencyKey struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Key          string    `gorm:"uniqueIndex:idx_idempotency_restaurant_key,priority:2;size:255;not null"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_idempotency_restaurant_key,priority:1"`
	Endpoint     string    `gorm:"size:255;not null"` // e.g. "POST /api/v1/holdbill"
	RequestHash  string    `gorm:"size:64"`           // SHA256 hash of request body
	ResponseCode int       `gorm:"not null"`
	ResponseBody string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	ExpiresAt    time.Time `gorm:"not null;index"` // Keys expire after 24 hours
}

// TableName returns the table name for IdempotencyKey
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}

// IsExpired checks if the idempotency key has expired
func (i *IdempotencyKey) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}
