package domain

// Category classifies a catalog product.
type Category string

const (
	CategoryRegulated Category = "regulated"
	CategoryOTC       Category = "otc"
)

// Prescription is the requirement tier for dispensing a product.
type Prescription string

const (
	PrescriptionNone        Prescription = "none"
	PrescriptionPlain       Prescription = "plain"
	PrescriptionControlledA Prescription = "controlled_a"
	PrescriptionControlledB Prescription = "controlled_b"
)

type Product struct {
	ID               int64        `db:"id" json:"id"`
	Name             string       `db:"name" json:"name"`
	Description      string       `db:"description" json:"description"`
	ActiveIngredient string       `db:"active_ingredient" json:"active_ingredient,omitempty"`
	Manufacturer     string       `db:"manufacturer" json:"manufacturer,omitempty"`
	Category         Category     `db:"category" json:"category"`
	Prescription     Prescription `db:"prescription" json:"prescription"`
}

// SearchFields lists the strings the text filter matches against.
func (p Product) SearchFields() []string {
	return []string{p.Name, p.Description, p.ActiveIngredient, p.Manufacturer}
}

func (p Product) CategoryKey() string {
	return string(p.Category)
}
