package search

import (
	"github.com/falyronencom/Restaurant-Guide-v2-sub003/internal/establishment"
)

// Mode is the tagged search mode: each mode has its own code path with
// no parameter leakage between them.
type Mode int

const (
	ModeNoLocation Mode = iota
	ModeRadius
	ModeBounds
)

func (m Mode) String() string {
	switch m {
	case ModeRadius:
		return "radius"
	case ModeBounds:
		return "bounds"
	default:
		return "no_location"
	}
}

type Sort string

const (
	SortRelevance Sort = "relevance"
	SortDistance  Sort = "distance"
	SortRating    Sort = "rating"
	SortPriceAsc  Sort = "priceAsc"
	SortPriceDesc Sort = "priceDesc"
)

type HoursFilter string

const (
	HoursAny          HoursFilter = ""
	HoursUntil22      HoursFilter = "until_22"
	HoursUntilMorning HoursFilter = "until_morning"
	Hours24           HoursFilter = "24_hours"
)

type Point struct {
	Lat float64
	Lon float64
}

// Filters are pure set predicates; a zero value for any field means
// pass-through for that field.
type Filters struct {
	City       string
	Categories []string
	Cuisines   []string
	PriceTiers []string
	Features   []string
	MinRating  float64
	Hours      HoursFilter
}

// SearchRequest is the validated, immutable query produced by the
// normalizer. Which coordinate fields are meaningful depends on Mode.
type SearchRequest struct {
	Mode          Mode
	Center        Point   // radius mode
	RadiusKm      float64 // radius mode
	MaxDistanceKm float64 // radius mode, 0 = no extra cutoff
	SW, NE        Point   // bounds mode

	Filters Filters
	Text    string
	Sort    Sort

	Page     int
	PageSize int
	Limit    int // bounds mode result cap
}

// Match pairs an establishment with its distance from the query center.
// DistanceKm is nil outside radius mode.
type Match struct {
	Establishment *establishment.Establishment `json:"establishment"`
	DistanceKm    *float64                     `json:"distanceKm,omitempty"`
}

type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

type SearchResult struct {
	Results []Match `json:"results"`
	Pagination
}

type ViewportResult struct {
	Results []Match `json:"results"`
	Count   int     `json:"count"`
}
