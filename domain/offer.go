package domain

// Offer is one pharmacy's listing for a product. Pharmacy-side stock
// edits mutate it; the engine only ever reads it.
type Offer struct {
	ID         int64    `db:"id" json:"id"`
	ProductID  int64    `db:"product_id" json:"product_id"`
	PharmacyID int64    `db:"pharmacy_id" json:"pharmacy_id"`
	ListPrice  float64  `db:"list_price" json:"list_price"`
	PromoPrice *float64 `db:"promo_price" json:"promo_price,omitempty"`
	Quantity   int64    `db:"quantity" json:"quantity"`
	Active     bool     `db:"active" json:"active"`
}

// EffectivePrice is the promotional price when one is set, the list
// price otherwise.
func (o Offer) EffectivePrice() float64 {
	if o.PromoPrice != nil {
		return *o.PromoPrice
	}
	return o.ListPrice
}

// OfferSet is the aggregated view of every offer for one product.
// Offers are ordered by effective price ascending; BestOffer is the
// first element. Derived, never persisted.
type OfferSet struct {
	Product   Product `json:"product"`
	Offers    []Offer `json:"offers"`
	BestOffer Offer   `json:"best_offer"`
	MinPrice  float64 `json:"min_price"`
	MaxPrice  float64 `json:"max_price"`
	Savings   float64 `json:"savings"`
	Promotion bool    `json:"promotion"`
}
