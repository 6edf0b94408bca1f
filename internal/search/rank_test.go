package search

import (
	"testing"
)

func TestRank_DistanceAscending(t *testing.T) {
	matches := []Match{
		{Establishment: newEst("a", "Far"), DistanceKm: ptr(8.2)},
		{Establishment: newEst("b", "Near"), DistanceKm: ptr(1.4)},
		{Establishment: newEst("c", "Mid"), DistanceKm: ptr(3.0)},
	}

	rank(matches, SortDistance)

	for i := 1; i < len(matches); i++ {
		if *matches[i-1].DistanceKm > *matches[i].DistanceKm {
			t.Fatalf("distances not non-decreasing at %d", i)
		}
	}
}

func TestRank_RatingDescendingNullsLast(t *testing.T) {
	rated := newEst("a", "Good")
	rated.AverageRating = ptr(4.2)
	best := newEst("b", "Best")
	best.AverageRating = ptr(4.9)
	unrated := newEst("c", "New")

	matches := wrap(unrated, rated, best)
	rank(matches, SortRating)

	got := []string{
		matches[0].Establishment.ID,
		matches[1].Establishment.ID,
		matches[2].Establishment.ID,
	}
	want := []string{"b", "a", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestRank_PriceOrdinal(t *testing.T) {
	cheap := newEst("a", "Cheap")
	cheap.PriceTier = "$"
	dear := newEst("b", "Dear")
	dear.PriceTier = "$$$$"
	mid := newEst("c", "Mid")
	mid.PriceTier = "$$"

	matches := wrap(dear, cheap, mid)
	rank(matches, SortPriceAsc)
	if matches[0].Establishment.ID != "a" || matches[2].Establishment.ID != "b" {
		t.Error("priceAsc must order by tier position")
	}

	rank(matches, SortPriceDesc)
	if matches[0].Establishment.ID != "b" || matches[2].Establishment.ID != "a" {
		t.Error("priceDesc must reverse the tier order")
	}
}

func TestRank_TieBreakDeterministic(t *testing.T) {
	popular := newEst("b", "Popular")
	popular.ReviewCount = 120
	quiet := newEst("a", "Quiet")
	quiet.ReviewCount = 3
	twinOne := newEst("c", "Twin")
	twinOne.ReviewCount = 3

	// Same price tier everywhere, so the primary key ties throughout.
	matches := wrap(quiet, popular, twinOne)
	rank(matches, SortPriceAsc)

	got := []string{
		matches[0].Establishment.ID,
		matches[1].Establishment.ID,
		matches[2].Establishment.ID,
	}
	// review_count desc, then id asc.
	want := []string{"b", "a", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected tie-break order %v, got %v", want, got)
		}
	}
}

func TestRelevance_Monotonicity(t *testing.T) {
	base := Match{Establishment: newEst("a", "Base"), DistanceKm: ptr(5.0)}
	base.Establishment.AverageRating = ptr(4.0)
	base.Establishment.ReviewCount = 10

	closer := Match{Establishment: newEst("b", "Closer"), DistanceKm: ptr(2.0)}
	closer.Establishment.AverageRating = ptr(4.0)
	closer.Establishment.ReviewCount = 10

	if relevanceScore(closer) <= relevanceScore(base) {
		t.Error("closer distance must increase the score")
	}

	better := Match{Establishment: newEst("c", "Better"), DistanceKm: ptr(5.0)}
	better.Establishment.AverageRating = ptr(4.8)
	better.Establishment.ReviewCount = 10
	if relevanceScore(better) <= relevanceScore(base) {
		t.Error("higher rating must increase the score")
	}

	reviewed := Match{Establishment: newEst("d", "Reviewed"), DistanceKm: ptr(5.0)}
	reviewed.Establishment.AverageRating = ptr(4.0)
	reviewed.Establishment.ReviewCount = 400
	if relevanceScore(reviewed) <= relevanceScore(base) {
		t.Error("more reviews must increase the score")
	}

	boosted := Match{Establishment: newEst("e", "Boosted"), DistanceKm: ptr(5.0)}
	boosted.Establishment.AverageRating = ptr(4.0)
	boosted.Establishment.ReviewCount = 10
	boosted.Establishment.BoostScore = 3
	if relevanceScore(boosted) <= relevanceScore(base) {
		t.Error("operator boost must increase the score")
	}
}
