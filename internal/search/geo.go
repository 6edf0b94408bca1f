package search

import (
	"math"

	"github.com/falyronencom/Restaurant-Guide-v2-sub003/internal/establishment"
)

// Mean Earth radius in kilometers (spherical approximation).
const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance between two points in
// kilometers, rounded to two decimals. Ranking only needs a stable
// monotonic ordering, not geodetic exactness.
func Haversine(a, b Point) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)
	d := 2 * earthRadiusKm * math.Asin(math.Sqrt(h))

	return math.Round(d*100) / 100
}

// resolveSpatial produces the candidate set for a request's mode.
// Radius mode computes distances and applies the radius containment test
// plus the optional tighter max-distance refinement; bounds mode is a
// rectangular containment test with no distance; no-location mode passes
// every candidate through untouched.
func resolveSpatial(req *SearchRequest, establishments []*establishment.Establishment) []Match {
	switch req.Mode {
	case ModeRadius:
		return resolveRadius(establishments, req.Center, req.RadiusKm, req.MaxDistanceKm)
	case ModeBounds:
		return resolveBounds(establishments, req.SW, req.NE)
	default:
		matches := make([]Match, 0, len(establishments))
		for _, est := range establishments {
			matches = append(matches, Match{Establishment: est})
		}
		return matches
	}
}

func resolveRadius(
	establishments []*establishment.Establishment,
	center Point,
	radiusKm, maxDistanceKm float64,
) []Match {

	var matches []Match
	for _, est := range establishments {
		if !est.HasLocation() {
			continue
		}
		d := Haversine(center, Point{Lat: *est.Latitude, Lon: *est.Longitude})
		if d > radiusKm {
			continue
		}
		if maxDistanceKm > 0 && d > maxDistanceKm {
			continue
		}
		dist := d
		matches = append(matches, Match{Establishment: est, DistanceKm: &dist})
	}
	return matches
}

func resolveBounds(establishments []*establishment.Establishment, sw, ne Point) []Match {
	var matches []Match
	for _, est := range establishments {
		if !est.HasLocation() {
			continue
		}
		lat, lon := *est.Latitude, *est.Longitude
		if lat < sw.Lat || lat > ne.Lat || lon < sw.Lon || lon > ne.Lon {
			continue
		}
		matches = append(matches, Match{Establishment: est})
	}
	return matches
}
