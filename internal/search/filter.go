package search

import (
	"strings"
	"time"

	"github.com/falyronencom/Restaurant-Guide-v2-sub003/internal/establishment"
)

// applyFilters narrows the candidate set by every active filter.
// Empty filters pass everything through.
func applyFilters(matches []Match, f Filters, now time.Time) []Match {
	out := matches[:0:0]
	for _, m := range matches {
		if matchesFilters(m.Establishment, f, now) {
			out = append(out, m)
		}
	}
	return out
}

func matchesFilters(e *establishment.Establishment, f Filters, now time.Time) bool {
	if f.City != "" && !strings.EqualFold(e.City, f.City) {
		return false
	}
	// OR semantics within categories and cuisines.
	if len(f.Categories) > 0 && !intersects(e.Categories, f.Categories) {
		return false
	}
	if len(f.Cuisines) > 0 && !intersects(e.Cuisines, f.Cuisines) {
		return false
	}
	if len(f.PriceTiers) > 0 && !containsFold(f.PriceTiers, e.PriceTier) {
		return false
	}
	// A record with no reviews fails any rating threshold.
	if f.MinRating > 0 && (e.AverageRating == nil || *e.AverageRating < f.MinRating) {
		return false
	}
	if f.Hours != HoursAny && !matchesHours(e, f.Hours, now) {
		return false
	}
	// AND semantics for features.
	for _, want := range f.Features {
		if !containsFold(e.Features, want) {
			return false
		}
	}
	return true
}

func intersects(have, want []string) bool {
	for _, w := range want {
		if containsFold(have, w) {
			return true
		}
	}
	return false
}

func containsFold(set []string, value string) bool {
	for _, s := range set {
		if strings.EqualFold(s, value) {
			return true
		}
	}
	return false
}

// matchesHours evaluates the closing-time class against the stored
// schedule for the server-local weekday. Closing times are declarative
// "HH:MM" tags; zero-padded strings compare correctly lexicographically.
// A close earlier than the open means the place runs past midnight.
func matchesHours(e *establishment.Establishment, hf HoursFilter, now time.Time) bool {
	if e.Is24Hours {
		return true
	}
	if hf == Hours24 {
		return false
	}

	day := strings.ToLower(now.Weekday().String())
	hours, ok := e.WorkingHours[day]
	if !ok || hours.Close == "" {
		return false
	}
	pastMidnight := hours.Open != "" && hours.Close < hours.Open

	switch hf {
	case HoursUntil22:
		return pastMidnight || hours.Close >= "22:00"
	case HoursUntilMorning:
		return pastMidnight && hours.Close <= "06:00"
	}
	return false
}
