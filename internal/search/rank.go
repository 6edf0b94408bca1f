package search

import (
	"sort"

	"github.com/falyronencom/Restaurant-Guide-v2-sub003/internal/establishment"
)

// rank orders matches by the requested sort key. Every key ends with the
// deterministic tie-break (review_count descending, then id ascending),
// so equal primary keys still produce a reproducible order and pages
// never skip or duplicate rows.
func rank(matches []Match, key Sort) {
	sort.SliceStable(matches, func(i, j int) bool {
		return less(matches[i], matches[j], key)
	})
}

func less(a, b Match, key Sort) bool {
	switch key {
	case SortDistance:
		if c := compareDistance(a, b); c != 0 {
			return c < 0
		}
	case SortRating:
		if c := compareRating(a, b); c != 0 {
			return c < 0
		}
	case SortPriceAsc:
		if c := comparePrice(a, b, true); c != 0 {
			return c < 0
		}
	case SortPriceDesc:
		if c := comparePrice(a, b, false); c != 0 {
			return c < 0
		}
	default:
		sa, sb := relevanceScore(a), relevanceScore(b)
		if sa != sb {
			return sa > sb
		}
	}
	return tieBreak(a, b)
}

func tieBreak(a, b Match) bool {
	if a.Establishment.ReviewCount != b.Establishment.ReviewCount {
		return a.Establishment.ReviewCount > b.Establishment.ReviewCount
	}
	return a.Establishment.ID < b.Establishment.ID
}

// Ascending; a missing distance sorts last.
func compareDistance(a, b Match) int {
	switch {
	case a.DistanceKm == nil && b.DistanceKm == nil:
		return 0
	case a.DistanceKm == nil:
		return 1
	case b.DistanceKm == nil:
		return -1
	case *a.DistanceKm < *b.DistanceKm:
		return -1
	case *a.DistanceKm > *b.DistanceKm:
		return 1
	}
	return 0
}

// Descending; unrated records sort last.
func compareRating(a, b Match) int {
	ra, rb := a.Establishment.AverageRating, b.Establishment.AverageRating
	switch {
	case ra == nil && rb == nil:
		return 0
	case ra == nil:
		return 1
	case rb == nil:
		return -1
	case *ra > *rb:
		return -1
	case *ra < *rb:
		return 1
	}
	return 0
}

// By ordinal tier position; unknown tiers sort last in either direction.
func comparePrice(a, b Match, asc bool) int {
	ia := establishment.PriceTierIndex(a.Establishment.PriceTier)
	ib := establishment.PriceTierIndex(b.Establishment.PriceTier)
	switch {
	case ia == ib:
		return 0
	case ia < 0:
		return 1
	case ib < 0:
		return -1
	}
	if !asc {
		ia, ib = ib, ia
	}
	if ia < ib {
		return -1
	}
	return 1
}

// relevanceScore is the default composite ranking. Each term is a
// monotonic, bounded contribution: closer distance, higher rating, more
// reviews and a higher operator boost all raise the score.
func relevanceScore(m Match) float64 {
	e := m.Establishment

	score := e.BoostScore
	if m.DistanceKm != nil {
		score += 10 / (1 + *m.DistanceKm)
	}
	if e.AverageRating != nil {
		score += *e.AverageRating
	}
	score += 2 * float64(e.ReviewCount) / (float64(e.ReviewCount) + 50)

	return score
}
