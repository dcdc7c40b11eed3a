package catalog

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey names one of the fixed comparators the sort engine offers.
type SortKey string

const (
	SortPriceAsc         SortKey = "price_asc"
	SortPriceDesc        SortKey = "price_desc"
	SortRatingThenVolume SortKey = "rating_then_volume_desc"
	SortAlphabetical     SortKey = "alphabetical"
	SortDistanceAsc      SortKey = "distance_asc"
	SortAvailability     SortKey = "availability_then_speed"
)

// Listing is the view of an entity the sort engine understands. Both
// pharmacies and pharmacy-offer cards implement it.
type Listing interface {
	ListingPrice() float64
	ListingRating() (score float64, reviews int)
	ListingName() string
	ListingDistance() string
	ListingAvailability() (open, fast bool)
}

// leading decimal of a formatted distance, "2.5 km" or "1,8 km"
var distancePattern = regexp.MustCompile(`^\s*([0-9]+(?:[.,][0-9]+)?)`)

// ParseDistance extracts the leading decimal from a formatted distance
// string. Unparsable values come back as +Inf so they sort last.
func ParseDistance(label string) float64 {
	m := distancePattern.FindStringSubmatch(label)
	if m == nil {
		return math.Inf(1)
	}
	km, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return math.Inf(1)
	}
	return km
}

// Sort orders items by the named comparator and returns a new slice;
// the input is not mutated. Every comparator is stable: equal keys keep
// their input order, which the list screens rely on for stable
// re-renders. Unknown keys return an InvalidSortKeyError.
func Sort[T Listing](items []T, key SortKey) ([]T, error) {
	less, err := comparator[T](key)
	if err != nil {
		return nil, err
	}
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted, nil
}

func comparator[T Listing](key SortKey) (func(a, b T) bool, error) {
	switch key {
	case SortPriceAsc:
		return func(a, b T) bool {
			return a.ListingPrice() < b.ListingPrice()
		}, nil

	case SortPriceDesc:
		return func(a, b T) bool {
			return a.ListingPrice() > b.ListingPrice()
		}, nil

	case SortRatingThenVolume:
		return func(a, b T) bool {
			ra, va := a.ListingRating()
			rb, vb := b.ListingRating()
			if ra != rb {
				return ra > rb
			}
			return va > vb
		}, nil

	case SortAlphabetical:
		cl := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
		return func(a, b T) bool {
			return cl.CompareString(a.ListingName(), b.ListingName()) < 0
		}, nil

	case SortDistanceAsc:
		return func(a, b T) bool {
			return ParseDistance(a.ListingDistance()) < ParseDistance(b.ListingDistance())
		}, nil

	case SortAvailability:
		return func(a, b T) bool {
			openA, fastA := a.ListingAvailability()
			openB, fastB := b.ListingAvailability()
			if openA != openB {
				return openA
			}
			if openA && fastA != fastB {
				return fastA
			}
			return false
		}, nil
	}
	return nil, &InvalidSortKeyError{Key: key}
}
