package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}

// RestaurantRepository defines the interface for restaurant data operations
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Restaurant, error)
	Update(ctx context.Context, restaurant *entity.Restaurant) error
}
