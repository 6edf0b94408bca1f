package establishment

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("establishment not found")

type Repository interface {
	// FetchActive returns all active establishments, optionally narrowed
	// to a single city (empty city means no narrowing).
	FetchActive(ctx context.Context, city string) ([]*Establishment, error)

	// UpdateBoost sets the operator promotion weight and returns the
	// establishment's city so callers can invalidate per-city caches.
	UpdateBoost(ctx context.Context, id string, boost float64) (string, error)
}
