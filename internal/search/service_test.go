package search

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/falyronencom/Restaurant-Guide-v2-sub003/internal/establishment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --------------------------------------------------
// Mock catalog
// --------------------------------------------------

type mockCatalog struct {
	establishments []*establishment.Establishment
	err            error
}

func (m *mockCatalog) FetchActive(_ context.Context, city string) ([]*establishment.Establishment, error) {
	if m.err != nil {
		return nil, m.err
	}
	if city == "" {
		return m.establishments, nil
	}
	var out []*establishment.Establishment
	for _, e := range m.establishments {
		if strings.EqualFold(e.City, city) {
			out = append(out, e)
		}
	}
	return out, nil
}

func newTestService(ests ...*establishment.Establishment) *Service {
	return NewService(
		&mockCatalog{establishments: ests},
		log.New(&bytes.Buffer{}, "", 0),
	)
}

// A (2 km, rating 4.5), B (4 km, rating 4.9), C (12 km) — the catalog
// used across the scenario tests.
func scenarioCatalog() []*establishment.Establishment {
	a := estAtKm("id-a", "Alpha", 2)
	a.AverageRating = ptr(4.5)
	a.ReviewCount = 100

	b := estAtKm("id-b", "Bravo", 4)
	b.AverageRating = ptr(4.9)
	b.ReviewCount = 40

	c := estAtKm("id-c", "Charlie", 12)
	c.AverageRating = ptr(4.0)

	return []*establishment.Establishment{a, b, c}
}

func radiusRequest(sort Sort) *SearchRequest {
	return &SearchRequest{
		Mode:     ModeRadius,
		Center:   Point{Lat: centerLat, Lon: centerLon},
		RadiusKm: 10,
		Sort:     sort,
		Page:     1,
		PageSize: 20,
	}
}

func ids(matches []Match) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Establishment.ID)
	}
	return out
}

// --------------------------------------------------
// Scenario tests
// --------------------------------------------------

func TestSearch_RadiusSortDistance(t *testing.T) {
	svc := newTestService(scenarioCatalog()...)

	result, err := svc.Search(context.Background(), radiusRequest(SortDistance))
	require.NoError(t, err)

	assert.Equal(t, []string{"id-a", "id-b"}, ids(result.Results))
	for _, m := range result.Results {
		require.NotNil(t, m.DistanceKm)
		assert.LessOrEqual(t, *m.DistanceKm, 10.0)
	}
}

func TestSearch_RadiusSortRating(t *testing.T) {
	svc := newTestService(scenarioCatalog()...)

	result, err := svc.Search(context.Background(), radiusRequest(SortRating))
	require.NoError(t, err)

	assert.Equal(t, []string{"id-b", "id-a"}, ids(result.Results))
}

func TestSearch_MinRating(t *testing.T) {
	svc := newTestService(scenarioCatalog()...)

	req := radiusRequest(SortRelevance)
	req.Filters.MinRating = 4.6

	result, err := svc.Search(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{"id-b"}, ids(result.Results))
}

func TestViewport_IgnoresDistance(t *testing.T) {
	svc := newTestService(scenarioCatalog()...)

	// A viewport stretching from A to C. C sits 12 km out and would be
	// excluded by the default radius; bounds mode must keep it.
	catalog := scenarioCatalog()
	aLat := *catalog[0].Latitude
	cLat := *catalog[2].Latitude

	req := &SearchRequest{
		Mode:  ModeBounds,
		SW:    Point{Lat: aLat - 0.001, Lon: centerLon - 0.01},
		NE:    Point{Lat: cLat + 0.001, Lon: centerLon + 0.01},
		Limit: ViewportLimit,
	}
	result, err := svc.Viewport(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Count)
	assert.ElementsMatch(t, []string{"id-a", "id-b", "id-c"}, ids(result.Results))
	for _, m := range result.Results {
		assert.Nil(t, m.DistanceKm)
	}
}

func TestSearch_PageTwoOfThree(t *testing.T) {
	svc := newTestService(scenarioCatalog()...)

	req := radiusRequest(SortDistance)
	req.RadiusKm = 15
	req.Page = 2
	req.PageSize = 1

	result, err := svc.Search(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{"id-b"}, ids(result.Results))
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 3, result.TotalPages)
}

func TestSearch_SynonymReachesPipeline(t *testing.T) {
	fuji := newEst("id-f", "Fuji")
	fuji.Cuisines = []string{"japanese"}
	svc := newTestService(fuji, newEst("id-x", "Plain"))

	req := &SearchRequest{Mode: ModeNoLocation, Text: "суши", Sort: SortRelevance, Page: 1, PageSize: 20}
	result, err := svc.Search(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{"id-f"}, ids(result.Results))
}

// --------------------------------------------------
// Properties
// --------------------------------------------------

func TestSearch_Idempotence(t *testing.T) {
	svc := newTestService(scenarioCatalog()...)
	req := radiusRequest(SortRelevance)

	first, err := svc.Search(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Search(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, ids(first.Results), ids(second.Results))
}

func TestSearch_OnlyActiveReturned(t *testing.T) {
	active := estAtKm("id-a", "Active", 2)
	pending := estAtKm("id-p", "Pending", 2)
	pending.Status = establishment.StatusPending

	svc := newTestService(active, pending)

	result, err := svc.Search(context.Background(), radiusRequest(SortDistance))
	require.NoError(t, err)

	assert.Equal(t, []string{"id-a"}, ids(result.Results))
}

func TestSearch_DataSourceUnavailable(t *testing.T) {
	svc := NewService(
		&mockCatalog{err: errors.New("connection refused")},
		log.New(&bytes.Buffer{}, "", 0),
	)

	_, err := svc.Search(context.Background(), radiusRequest(SortRelevance))
	require.ErrorIs(t, err, ErrDataSource)
}
