package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
)

// ProductCache is the read-through cache in front of the product catalog.
// The menu is read on every order screen refresh but changes rarely, so
// catalog reads are served from Redis and invalidated on writes.
type ProductCache interface {
	GetProduct(ctx context.Context, restaurantID, productID uuid.UUID) (*entity.Product, error)
	SetProduct(ctx context.Context, product *entity.Product, ttl time.Duration) error
	DeleteProduct(ctx context.Context, restaurantID, productID uuid.UUID) error
	// InvalidateRestaurant drops every cached product of one restaurant.
	InvalidateRestaurant(ctx context.Context, restaurantID uuid.UUID) error
}

type redisProductCache struct {
	client *redis.Client
}

// NewClient builds a Redis client and verifies connectivity.
func NewClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// NewProductCache creates a Redis-backed product cache
func NewProductCache(client *redis.Client) ProductCache {
	return &redisProductCache{client: client}
}

func productKey(restaurantID, productID uuid.UUID) string {
	return fmt.Sprintf("restrodesk:product:%s:%s", restaurantID.String(), productID.String())
}

func (c *redisProductCache) GetProduct(ctx context.Context, restaurantID, productID uuid.UUID) (*entity.Product, error) {
	data, err := c.client.Get(ctx, productKey(restaurantID, productID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var product entity.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *redisProductCache) SetProduct(ctx context.Context, product *entity.Product, ttl time.Duration) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, productKey(product.RestaurantID, product.ID), data, ttl).Err()
}

func (c *redisProductCache) DeleteProduct(ctx context.Context, restaurantID, productID uuid.UUID) error {
	return c.client.Del(ctx, productKey(restaurantID, productID)).Err()
}

func (c *redisProductCache) InvalidateRestaurant(ctx context.Context, restaurantID uuid.UUID) error {
	pattern := fmt.Sprintf("restrodesk:product:%s:*", restaurantID.String())

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
