package domain

import "strings"

// ApprovalStatus tracks where a pharmacy sits in the marketplace
// onboarding flow.
type ApprovalStatus string

const (
	ApprovalPending   ApprovalStatus = "pending"
	ApprovalActive    ApprovalStatus = "active"
	ApprovalSuspended ApprovalStatus = "suspended"
)

type Address struct {
	Street     string `db:"street" json:"street"`
	Number     string `db:"number" json:"number"`
	District   string `db:"district" json:"district"`
	City       string `db:"city" json:"city"`
	State      string `db:"state" json:"state"`
	PostalCode string `db:"postal_code" json:"postal_code"`
}

// String renders the structured address as a single line.
func (a Address) String() string {
	parts := make([]string, 0, 3)
	if a.Street != "" {
		street := a.Street
		if a.Number != "" {
			street += ", " + a.Number
		}
		parts = append(parts, street)
	}
	if a.District != "" {
		parts = append(parts, a.District)
	}
	if a.City != "" {
		city := a.City
		if a.State != "" {
			city += " - " + a.State
		}
		parts = append(parts, city)
	}
	return strings.Join(parts, " - ")
}

type Pharmacy struct {
	ID           int64          `db:"id" json:"id"`
	DisplayName  string         `db:"display_name" json:"display_name"`
	LegalName    string         `db:"legal_name" json:"legal_name"`
	Address      Address        `db:"address" json:"address"`
	Active       bool           `db:"active" json:"active"`
	Approval     ApprovalStatus `db:"approval_status" json:"approval_status"`
	Rating       float64        `db:"rating" json:"rating"`
	ReviewCount  int            `db:"review_count" json:"review_count"`
	Distance     string         `db:"distance" json:"distance"`
	DeliveryTime string         `db:"delivery_time" json:"delivery_time"`
	Closed       bool           `db:"closed" json:"closed"`
	FastDelivery bool           `db:"fast_delivery" json:"fast_delivery"`
	Tags         []string       `db:"-" json:"tags,omitempty"`
}

// SearchFields lists the strings the text filter matches against.
func (p Pharmacy) SearchFields() []string {
	fields := []string{p.DisplayName, p.LegalName, p.Address.Street, p.Address.District, p.Address.City}
	return append(fields, p.Tags...)
}

func (p Pharmacy) CategoryKey() string {
	return string(p.Approval)
}

// Listing view used by the sort engine. Pharmacies carry no price
// dimension, so price sorts keep their input order.
func (p Pharmacy) ListingPrice() float64 { return 0 }

func (p Pharmacy) ListingRating() (float64, int) { return p.Rating, p.ReviewCount }

func (p Pharmacy) ListingName() string { return p.DisplayName }

func (p Pharmacy) ListingDistance() string { return p.Distance }

func (p Pharmacy) ListingAvailability() (open, fast bool) {
	return !p.Closed, p.FastDelivery
}
