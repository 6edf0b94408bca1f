package search

import (
	"log"
	"strconv"
	"strings"
)

const (
	DefaultRadiusKm = 10.0
	DefaultPageSize = 20
	MaxPageSize     = 100
	ViewportLimit   = 200
)

// RawQuery carries the loosely-typed request parameters of the
// radius / no-location endpoint before validation.
type RawQuery struct {
	Latitude      string
	Longitude     string
	RadiusKm      string
	MaxDistanceKm string
	City          string
	Categories    []string
	Cuisines      []string
	PriceTiers    []string
	Features      []string
	MinRating     string
	HoursFilter   string
	Search        string
	Sort          string
	Page          string
	PageSize      string
}

// RawViewport carries the parameters of the bounds (map viewport) endpoint.
type RawViewport struct {
	SWLat       string
	SWLon       string
	NELat       string
	NELon       string
	City        string
	Categories  []string
	Cuisines    []string
	PriceTiers  []string
	Features    []string
	MinRating   string
	HoursFilter string
	Search      string
}

// Normalizer turns raw parameters into a validated SearchRequest.
// The logger is only used for the documented max-distance soft fallback.
type Normalizer struct {
	logger *log.Logger
}

func NewNormalizer(logger *log.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// --------------------------------------------------
// Radius / no-location requests
// --------------------------------------------------
func (n *Normalizer) Normalize(raw RawQuery) (*SearchRequest, *ValidationError) {
	req := &SearchRequest{
		Sort:     SortRelevance,
		Page:     1,
		PageSize: DefaultPageSize,
	}

	// Coordinates come as a pair or not at all.
	hasLat := strings.TrimSpace(raw.Latitude) != ""
	hasLon := strings.TrimSpace(raw.Longitude) != ""
	switch {
	case hasLat != hasLon:
		return nil, invalid(CodeCoordinatesIncomplete,
			"latitude and longitude must be provided together")
	case hasLat && hasLon:
		lat, latErr := strconv.ParseFloat(strings.TrimSpace(raw.Latitude), 64)
		lon, lonErr := strconv.ParseFloat(strings.TrimSpace(raw.Longitude), 64)
		if latErr != nil || lonErr != nil {
			return nil, invalid(CodeCoordinatesIncomplete,
				"latitude and longitude must be numbers")
		}
		req.Mode = ModeRadius
		req.Center = Point{Lat: lat, Lon: lon}
	default:
		req.Mode = ModeNoLocation
	}

	if req.Mode == ModeRadius {
		req.RadiusKm = DefaultRadiusKm
		if s := strings.TrimSpace(raw.RadiusKm); s != "" {
			r, err := strconv.ParseFloat(s, 64)
			if err != nil || r <= 0 {
				return nil, invalid(CodeInvalidRadius, "radiusKm must be a positive number")
			}
			req.RadiusKm = r
		}

		// Unparsable or non-positive max distance degrades gracefully:
		// the query proceeds without the extra cutoff.
		if s := strings.TrimSpace(raw.MaxDistanceKm); s != "" {
			m, err := strconv.ParseFloat(s, 64)
			if err != nil || m <= 0 {
				n.logger.Printf("MAX_DISTANCE_IGNORED: unusable maxDistanceKm %q", s)
			} else {
				req.MaxDistanceKm = m
			}
		}
	}

	filters, verr := parseFilters(raw.City, raw.Categories, raw.Cuisines,
		raw.PriceTiers, raw.Features, raw.MinRating, raw.HoursFilter)
	if verr != nil {
		return nil, verr
	}
	req.Filters = filters
	req.Text = strings.TrimSpace(raw.Search)

	req.Sort = parseSort(raw.Sort)
	// Distance is undefined without a query center.
	if req.Sort == SortDistance && req.Mode != ModeRadius {
		req.Sort = SortRelevance
	}

	if s := strings.TrimSpace(raw.Page); s != "" {
		p, err := strconv.Atoi(s)
		if err != nil || p < 1 {
			return nil, invalid(CodeInvalidPage, "page must be an integer >= 1")
		}
		req.Page = p
	}

	if s := strings.TrimSpace(raw.PageSize); s != "" {
		ps, err := strconv.Atoi(s)
		if err != nil {
			return nil, invalid(CodeInvalidPageSize, "pageSize must be an integer")
		}
		if ps < 1 {
			ps = 1
		}
		if ps > MaxPageSize {
			ps = MaxPageSize
		}
		req.PageSize = ps
	}

	return req, nil
}

// --------------------------------------------------
// Bounds (viewport) requests
// --------------------------------------------------
func (n *Normalizer) NormalizeViewport(raw RawViewport) (*SearchRequest, *ValidationError) {
	coords := [4]string{raw.SWLat, raw.SWLon, raw.NELat, raw.NELon}
	var parsed [4]float64
	for i, s := range coords {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, invalid(CodeInvalidBounds,
				"swLat, swLon, neLat and neLon must all be numbers")
		}
		parsed[i] = v
	}

	sw := Point{Lat: parsed[0], Lon: parsed[1]}
	ne := Point{Lat: parsed[2], Lon: parsed[3]}
	if sw.Lat > ne.Lat || sw.Lon > ne.Lon {
		return nil, invalid(CodeInvalidBounds,
			"south-west corner must not exceed north-east corner")
	}

	filters, verr := parseFilters(raw.City, raw.Categories, raw.Cuisines,
		raw.PriceTiers, raw.Features, raw.MinRating, raw.HoursFilter)
	if verr != nil {
		return nil, verr
	}

	return &SearchRequest{
		Mode:    ModeBounds,
		SW:      sw,
		NE:      ne,
		Filters: filters,
		Text:    strings.TrimSpace(raw.Search),
		Sort:    SortRelevance,
		Limit:   ViewportLimit,
	}, nil
}

// --------------------------------------------------
// Shared filter parsing
// --------------------------------------------------
func parseFilters(
	city string,
	categories, cuisines, priceTiers, features []string,
	minRating, hoursFilter string,
) (Filters, *ValidationError) {

	f := Filters{
		City:       strings.ToLower(strings.TrimSpace(city)),
		Categories: splitValues(categories),
		Cuisines:   splitValues(cuisines),
		PriceTiers: splitValues(priceTiers),
		Features:   splitValues(features),
	}

	if s := strings.TrimSpace(minRating); s != "" {
		r, err := strconv.ParseFloat(s, 64)
		if err != nil || r < 1 || r > 5 {
			return f, invalid(CodeInvalidRating, "minRating must lie in [1,5]")
		}
		f.MinRating = r
	}

	switch hf := HoursFilter(strings.TrimSpace(hoursFilter)); hf {
	case HoursAny, HoursUntil22, HoursUntilMorning, Hours24:
		f.Hours = hf
	default:
		return f, invalid(CodeInvalidHoursFilter,
			"hoursFilter must be one of until_22, until_morning, 24_hours")
	}

	return f, nil
}

// splitValues accepts repeated parameters and/or comma-delimited strings,
// trims entries and drops empties.
func splitValues(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// parseSort maps unknown values to the default instead of propagating
// strings deeper into the pipeline.
func parseSort(raw string) Sort {
	switch Sort(strings.TrimSpace(raw)) {
	case SortDistance:
		return SortDistance
	case SortRating:
		return SortRating
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	default:
		return SortRelevance
	}
}
