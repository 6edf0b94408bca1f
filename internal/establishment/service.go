package establishment

import (
	"context"
	"errors"
	"log"
)

var ErrInvalidBoost = errors.New("boost score must be >= 0")

// Service fronts the catalog: cache-first reads of the active set and
// the operator boost knob. The cache may be nil when Redis is not
// configured; every path works without it.
type Service struct {
	repo   Repository
	cache  *Cache
	logger *log.Logger
}

func NewService(repo Repository, cache *Cache, logger *log.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// --------------------------------------------------
// Cache-first catalog snapshot
// --------------------------------------------------
func (s *Service) FetchActive(ctx context.Context, city string) ([]*Establishment, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, city)
		if err != nil {
			s.logger.Printf("catalog cache read failed, falling back to postgres: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	establishments, err := s.repo.FetchActive(ctx, city)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, city, establishments); err != nil {
			s.logger.Printf("catalog cache write failed: %v", err)
		}
	}

	return establishments, nil
}

// --------------------------------------------------
// Operator boost weight
// --------------------------------------------------
func (s *Service) SetBoost(ctx context.Context, id string, boost float64) error {
	if boost < 0 {
		return ErrInvalidBoost
	}

	city, err := s.repo.UpdateBoost(ctx, id, boost)
	if err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, city); err != nil {
			s.logger.Printf("catalog cache invalidation failed for %s: %v", city, err)
		}
	}

	return nil
}
