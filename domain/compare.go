package domain

// PharmacyOffer is the price-comparison card shown when one product is
// compared across pharmacies: an offer joined with the stocking
// pharmacy's display data.
type PharmacyOffer struct {
	OfferID      int64    `db:"offer_id" json:"offer_id"`
	PharmacyID   int64    `db:"pharmacy_id" json:"pharmacy_id"`
	PharmacyName string   `db:"pharmacy_name" json:"pharmacy_name"`
	Rating       float64  `db:"rating" json:"rating"`
	ReviewCount  int      `db:"review_count" json:"review_count"`
	Distance     string   `db:"distance" json:"distance"`
	DeliveryTime string   `db:"delivery_time" json:"delivery_time"`
	ListPrice    float64  `db:"list_price" json:"list_price"`
	PromoPrice   *float64 `db:"promo_price" json:"promo_price,omitempty"`
	Stock        int64    `db:"stock" json:"stock"`
	Closed       bool     `db:"closed" json:"closed"`
	FastDelivery bool     `db:"fast_delivery" json:"fast_delivery"`
}

// Listing view used by the sort engine.
func (o PharmacyOffer) ListingPrice() float64 {
	if o.PromoPrice != nil {
		return *o.PromoPrice
	}
	return o.ListPrice
}

func (o PharmacyOffer) ListingRating() (float64, int) { return o.Rating, o.ReviewCount }

func (o PharmacyOffer) ListingName() string { return o.PharmacyName }

func (o PharmacyOffer) ListingDistance() string { return o.Distance }

func (o PharmacyOffer) ListingAvailability() (open, fast bool) {
	return !o.Closed && o.Stock > 0, o.FastDelivery
}
