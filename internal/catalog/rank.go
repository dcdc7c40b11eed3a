package catalog

import (
	"sort"

	"esculapi/marketplace/domain"
)

// Relevance weights carried over from the help screen: helpful votes
// count far more than raw views, and the editorial order dominates
// both. Manual orders above 100 simply contribute negative points.
const (
	viewWeight    = 0.1
	helpfulWeight = 2
	orderWeight   = 5
	orderCeiling  = 100
)

// DefaultBestOffersLimit caps the "best offers" shelf when the caller
// passes no limit.
const DefaultBestOffersLimit = 5

// Score computes the relevance of a help topic. Higher is more
// relevant. The number is a sort key only, never shown to users.
func Score(t domain.Topic) float64 {
	return float64(t.ViewCount)*viewWeight +
		float64(t.HelpfulCount)*helpfulWeight +
		float64(orderCeiling-t.ManualOrder)*orderWeight
}

// RankTopics returns the topics ordered by descending relevance.
// The input slice is not mutated.
func RankTopics(topics []domain.Topic) []domain.Topic {
	ranked := make([]domain.Topic, len(topics))
	copy(ranked, topics)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Score(ranked[i]) > Score(ranked[j])
	})
	return ranked
}

// BestOffers picks the top-n offer sets for the "best offers" shelf:
// biggest savings first, cheapest best price as the tie-break.
// A non-positive n falls back to DefaultBestOffersLimit.
func BestOffers(sets []domain.OfferSet, n int) []domain.OfferSet {
	if n <= 0 {
		n = DefaultBestOffersLimit
	}
	best := make([]domain.OfferSet, len(sets))
	copy(best, sets)
	sort.SliceStable(best, func(i, j int) bool {
		if best[i].Savings != best[j].Savings {
			return best[i].Savings > best[j].Savings
		}
		return best[i].MinPrice < best[j].MinPrice
	})
	if len(best) > n {
		best = best[:n]
	}
	return best
}
