package search

import (
	"context"
	"log"
	"time"

	"github.com/falyronencom/Restaurant-Guide-v2-sub003/internal/establishment"
)

// Catalog is the external data-fetch collaborator. The pipeline treats
// a fetch failure as fatal for the request and does not retry.
type Catalog interface {
	FetchActive(ctx context.Context, city string) ([]*establishment.Establishment, error)
}

// Service runs the search pipeline: spatial resolution, attribute
// filtering, text matching, ranking, pagination and assembly. Every
// step after the fetch is a pure function over the request-scoped
// working set, so requests need no coordination between each other.
type Service struct {
	catalog  Catalog
	synonyms SynonymTable
	logger   *log.Logger
}

func NewService(catalog Catalog, logger *log.Logger) *Service {
	return &Service{
		catalog:  catalog,
		synonyms: DefaultSynonyms(),
		logger:   logger,
	}
}

// --------------------------------------------------
// Radius / no-location search
// --------------------------------------------------
func (s *Service) Search(ctx context.Context, req *SearchRequest) (*SearchResult, error) {
	matches, err := s.pipeline(ctx, req)
	if err != nil {
		return nil, err
	}

	rank(matches, req.Sort)
	window, meta := paginate(matches, req.Page, req.PageSize)

	return &SearchResult{Results: window, Pagination: meta}, nil
}

// --------------------------------------------------
// Bounds (viewport) search
// --------------------------------------------------
func (s *Service) Viewport(ctx context.Context, req *SearchRequest) (*ViewportResult, error) {
	matches, err := s.pipeline(ctx, req)
	if err != nil {
		return nil, err
	}

	// Relevance order (no distance term in bounds mode) keeps the
	// capped window deterministic.
	rank(matches, SortRelevance)
	if req.Limit > 0 && len(matches) > req.Limit {
		matches = matches[:req.Limit]
	}

	return &ViewportResult{Results: matches, Count: len(matches)}, nil
}

func (s *Service) pipeline(ctx context.Context, req *SearchRequest) ([]Match, error) {
	catalog, err := s.catalog.FetchActive(ctx, req.Filters.City)
	if err != nil {
		s.logger.Printf("catalog fetch failed: %v", err)
		return nil, ErrDataSource
	}

	// Only active records are searchable, whatever the source returned.
	active := catalog[:0:0]
	for _, est := range catalog {
		if est.Status == establishment.StatusActive {
			active = append(active, est)
		}
	}

	matches := resolveSpatial(req, active)
	matches = applyFilters(matches, req.Filters, time.Now())
	matches = matchText(matches, req.Text, s.synonyms)
	return matches, nil
}
