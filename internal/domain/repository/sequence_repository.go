package repository

import (
	"context"
)

// SequenceRepository defines the interface for sequence counter operations
type SequenceRepository interface {
	// Next atomically increments the named counter for the current tenant
	// and returns the new value. The first call returns 1.
	Next(ctx context.Context, name string) (int64, error)
	// Current returns the counter's last issued value without incrementing,
	// 0 when the counter has never been used.
	Current(ctx context.Context, name string) (int64, error)
}
