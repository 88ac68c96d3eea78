package repository

import (
	"context"
	"errors"

	domainRepo "github.com/restrodesk/restrodesk-api/internal/domain/repository"
	"gorm.io/gorm"
)

type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new sequence counter repository
func NewSequenceRepository(db *gorm.DB) domainRepo.SequenceRepository {
	return &sequenceRepository{db: db}
}

// Next relies on the upsert to serialize concurrent callers: two requests
// drawing the same counter block on the row lock and receive distinct values.
func (r *sequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	restaurantID, ok := GetRestaurantID(ctx)
	if !ok {
		return 0, gorm.ErrMissingWhereClause
	}

	var seq int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO sequence_counters (restaurant_id, name, seq)
		VALUES (?, ?, 1)
		ON CONFLICT (restaurant_id, name)
		DO UPDATE SET seq = sequence_counters.seq + 1
		RETURNING seq`,
		restaurantID, name,
	).Scan(&seq).Error
	return seq, err
}

func (r *sequenceRepository) Current(ctx context.Context, name string) (int64, error) {
	restaurantID, ok := GetRestaurantID(ctx)
	if !ok {
		return 0, gorm.ErrMissingWhereClause
	}

	var seq int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT seq FROM sequence_counters
		WHERE restaurant_id = ? AND name = ?`,
		restaurantID, name,
	).Scan(&seq).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	return seq, err
}
