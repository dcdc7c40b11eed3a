package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esculapi/marketplace/domain"
)

func card(name string, price float64, rating float64, reviews int, distance string) domain.PharmacyOffer {
	return domain.PharmacyOffer{
		PharmacyName: name,
		ListPrice:    price,
		Rating:       rating,
		ReviewCount:  reviews,
		Distance:     distance,
		Stock:        10,
	}
}

func TestParseDistance(t *testing.T) {
	assert.Equal(t, 2.5, ParseDistance("2.5 km"))
	assert.Equal(t, 1.8, ParseDistance("1,8 km"))
	assert.Equal(t, 10.0, ParseDistance("10 km"))
	assert.True(t, math.IsInf(ParseDistance("abc"), 1))
	assert.True(t, math.IsInf(ParseDistance(""), 1))
}

func TestSort_DistanceAsc_UnparsableLast(t *testing.T) {
	cards := []domain.PharmacyOffer{
		card("A", 0, 0, 0, "10 km"),
		card("B", 0, 0, 0, "2.5 km"),
		card("C", 0, 0, 0, "abc"),
	}

	sorted, err := Sort(cards, SortDistanceAsc)
	require.NoError(t, err)

	assert.Equal(t, "B", sorted[0].PharmacyName)
	assert.Equal(t, "A", sorted[1].PharmacyName)
	assert.Equal(t, "C", sorted[2].PharmacyName)
}

func TestSort_PriceUsesPromoWhenPresent(t *testing.T) {
	promo := 9.9
	a := card("A", 12.9, 0, 0, "")
	a.PromoPrice = &promo
	b := card("B", 11.5, 0, 0, "")

	sorted, err := Sort([]domain.PharmacyOffer{b, a}, SortPriceAsc)
	require.NoError(t, err)
	assert.Equal(t, "A", sorted[0].PharmacyName)

	sorted, err = Sort([]domain.PharmacyOffer{a, b}, SortPriceDesc)
	require.NoError(t, err)
	assert.Equal(t, "B", sorted[0].PharmacyName)
}

func TestSort_RatingThenVolume(t *testing.T) {
	cards := []domain.PharmacyOffer{
		card("A", 0, 4.6, 80, ""),
		card("B", 0, 4.8, 120, ""),
		card("C", 0, 4.8, 230, ""),
	}

	sorted, err := Sort(cards, SortRatingThenVolume)
	require.NoError(t, err)

	assert.Equal(t, "C", sorted[0].PharmacyName)
	assert.Equal(t, "B", sorted[1].PharmacyName)
	assert.Equal(t, "A", sorted[2].PharmacyName)
}

func TestSort_Stable(t *testing.T) {
	// Fully tied keys keep their input order.
	cards := []domain.PharmacyOffer{
		card("first", 10, 4.5, 100, "1 km"),
		card("second", 10, 4.5, 100, "1 km"),
		card("third", 10, 4.5, 100, "1 km"),
	}

	for _, key := range []SortKey{SortPriceAsc, SortRatingThenVolume, SortDistanceAsc, SortAvailability} {
		sorted, err := Sort(cards, key)
		require.NoError(t, err)
		assert.Equal(t, "first", sorted[0].PharmacyName, "key %s", key)
		assert.Equal(t, "second", sorted[1].PharmacyName, "key %s", key)
		assert.Equal(t, "third", sorted[2].PharmacyName, "key %s", key)
	}
}

func TestSort_Alphabetical(t *testing.T) {
	pharmacies := []domain.Pharmacy{
		{DisplayName: "drogaria popular"},
		{DisplayName: "Farmácia Central"},
		{DisplayName: "Drogasil"},
	}

	sorted, err := Sort(pharmacies, SortAlphabetical)
	require.NoError(t, err)

	assert.Equal(t, "drogaria popular", sorted[0].DisplayName)
	assert.Equal(t, "Drogasil", sorted[1].DisplayName)
	assert.Equal(t, "Farmácia Central", sorted[2].DisplayName)
}

func TestSort_AvailabilityThenSpeed(t *testing.T) {
	closed := domain.Pharmacy{DisplayName: "Closed", Closed: true, FastDelivery: true}
	slow := domain.Pharmacy{DisplayName: "Slow"}
	fast := domain.Pharmacy{DisplayName: "Fast", FastDelivery: true}

	sorted, err := Sort([]domain.Pharmacy{closed, slow, fast}, SortAvailability)
	require.NoError(t, err)

	assert.Equal(t, "Fast", sorted[0].DisplayName)
	assert.Equal(t, "Slow", sorted[1].DisplayName)
	assert.Equal(t, "Closed", sorted[2].DisplayName, "closed sorts last regardless of speed")
}

func TestSort_InvalidKey(t *testing.T) {
	_, err := Sort([]domain.Pharmacy{}, SortKey("nope"))

	var invalid *InvalidSortKeyError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, SortKey("nope"), invalid.Key)
}
