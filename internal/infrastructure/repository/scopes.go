package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ctxKey string

// RestaurantIDKey is the context key for the authenticated restaurant
const RestaurantIDKey ctxKey = "restaurant_id"

// TenantScope returns a GORM scope that filters by restaurant.
// This should be applied to all queries for tenant-scoped entities.
func TenantScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		restaurantID, ok := ctx.Value(RestaurantIDKey).(uuid.UUID)
		if !ok {
			// Fail-safe: return no results if tenant context missing
			// This prevents accidental cross-tenant data access
			return db.Where("1 = 0")
		}
		return db.Where("restaurant_id = ?", restaurantID)
	}
}

// WithTenant adds the restaurant ID to context
func WithTenant(ctx context.Context, restaurantID uuid.UUID) context.Context {
	return context.WithValue(ctx, RestaurantIDKey, restaurantID)
}

// GetRestaurantID extracts the restaurant ID from context
func GetRestaurantID(ctx context.Context) (uuid.UUID, bool) {
	restaurantID, ok := ctx.Value(RestaurantIDKey).(uuid.UUID)
	return restaurantID, ok
}
