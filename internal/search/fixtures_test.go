package search

import (
	"github.com/falyronencom/Restaurant-Guide-v2-sub003/internal/establishment"
)

// Test fixtures are centered on Tashkent; one degree of latitude is
// roughly 111.2 km, so 0.008993 degrees is about one kilometer.
const (
	centerLat   = 41.3111
	centerLon   = 69.2797
	degPerKmLat = 0.008993
)

func ptr(v float64) *float64 { return &v }

func newEst(id, name string) *establishment.Establishment {
	return &establishment.Establishment{
		ID:         id,
		Name:       name,
		City:       "tashkent",
		Categories: []string{"restaurant"},
		PriceTier:  "$$",
		Status:     establishment.StatusActive,
	}
}

// estAtKm places an establishment the given number of kilometers due
// north of the test center.
func estAtKm(id, name string, km float64) *establishment.Establishment {
	e := newEst(id, name)
	e.Latitude = ptr(centerLat + km*degPerKmLat)
	e.Longitude = ptr(centerLon)
	return e
}
