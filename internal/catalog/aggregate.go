package catalog

import (
	"sort"

	"esculapi/marketplace/domain"
)

// Aggregate reduces every offer for one product into a single
// comparable OfferSet. Offers are ordered by effective price ascending
// with pharmacy ID as the tie-break, so equal-priced offer lists always
// aggregate the same way. The input slice is not mutated.
func Aggregate(product domain.Product, offers []domain.Offer) (domain.OfferSet, error) {
	if len(offers) == 0 {
		return domain.OfferSet{}, ErrEmptyOfferSet
	}

	sorted := make([]domain.Offer, len(offers))
	copy(sorted, offers)
	sort.SliceStable(sorted, func(i, j int) bool {
		pi, pj := sorted[i].EffectivePrice(), sorted[j].EffectivePrice()
		if pi != pj {
			return pi < pj
		}
		return sorted[i].PharmacyID < sorted[j].PharmacyID
	})

	min := sorted[0].EffectivePrice()
	max := sorted[len(sorted)-1].EffectivePrice()

	return domain.OfferSet{
		Product:   product,
		Offers:    sorted,
		BestOffer: sorted[0],
		MinPrice:  min,
		MaxPrice:  max,
		Savings:   max - min,
		Promotion: len(sorted) > 1 && min < max,
	}, nil
}
