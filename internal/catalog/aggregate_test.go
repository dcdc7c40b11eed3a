package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esculapi/marketplace/domain"
)

func offer(pharmacyID int64, price float64) domain.Offer {
	return domain.Offer{ProductID: 1, PharmacyID: pharmacyID, ListPrice: price, Quantity: 10, Active: true}
}

func TestAggregate_EmptyInput(t *testing.T) {
	_, err := Aggregate(domain.Product{ID: 1}, nil)
	assert.ErrorIs(t, err, ErrEmptyOfferSet)
}

func TestAggregate_Invariants(t *testing.T) {
	set, err := Aggregate(domain.Product{ID: 1, Name: "Paracetamol 500mg"}, []domain.Offer{
		offer(3, 15.9), offer(1, 12.9), offer(2, 14.9),
	})
	require.NoError(t, err)

	assert.LessOrEqual(t, set.MinPrice, set.MaxPrice)
	assert.Equal(t, set.MinPrice, set.BestOffer.EffectivePrice())
	assert.Equal(t, int64(1), set.BestOffer.PharmacyID)
	assert.InDelta(t, 3.0, set.Savings, 1e-9)
	assert.True(t, set.Promotion)

	for _, o := range set.Offers {
		assert.GreaterOrEqual(t, o.EffectivePrice(), set.MinPrice)
		assert.LessOrEqual(t, o.EffectivePrice(), set.MaxPrice)
	}
}

func TestAggregate_TieBreakByPharmacyID(t *testing.T) {
	set, err := Aggregate(domain.Product{ID: 1}, []domain.Offer{
		offer(2, 10), offer(1, 10),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), set.BestOffer.PharmacyID)
	assert.False(t, set.Promotion, "equal prices are not a promotion")
	assert.Zero(t, set.Savings)
}

func TestAggregate_SingleOffer(t *testing.T) {
	set, err := Aggregate(domain.Product{ID: 1}, []domain.Offer{offer(1, 9.9)})
	require.NoError(t, err)

	assert.False(t, set.Promotion)
	assert.Zero(t, set.Savings)
	assert.Equal(t, set.MinPrice, set.MaxPrice)
}

func TestAggregate_PromoPriceWins(t *testing.T) {
	promo := 9.9
	set, err := Aggregate(domain.Product{ID: 1}, []domain.Offer{
		{ProductID: 1, PharmacyID: 1, ListPrice: 12.9, PromoPrice: &promo, Quantity: 5, Active: true},
		{ProductID: 1, PharmacyID: 2, ListPrice: 11.5, Quantity: 5, Active: true},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), set.BestOffer.PharmacyID)
	assert.Equal(t, 9.9, set.MinPrice)
	assert.Equal(t, 11.5, set.MaxPrice)
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	offers := []domain.Offer{offer(2, 20), offer(1, 10)}
	_, err := Aggregate(domain.Product{ID: 1}, offers)
	require.NoError(t, err)

	assert.Equal(t, int64(2), offers[0].PharmacyID, "input order untouched")
}
