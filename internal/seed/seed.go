package seed

import (
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"esculapi/marketplace/internal/search"
)

// Run loads the bundled demo catalog into the database when it is
// still empty, so a fresh install has something to search. Existing
// rows are left alone.
func Run(db *sqlx.DB, log *zap.Logger) error {
	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	fb := search.NewFallback()

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, p := range fb.Products() {
		if _, err := tx.Exec(`INSERT INTO products (id, name, description, active_ingredient, manufacturer, category, prescription)
                VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.Description, p.ActiveIngredient, p.Manufacturer, p.Category, p.Prescription); err != nil {
			return err
		}
	}

	for _, ph := range fb.Pharmacies() {
		if _, err := tx.Exec(`INSERT INTO pharmacies (id, display_name, legal_name, street, number, district, city, state, postal_code,
                active, approval_status, rating, review_count, distance, delivery_time, closed, fast_delivery, tags)
                VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			ph.ID, ph.DisplayName, ph.LegalName,
			ph.Address.Street, ph.Address.Number, ph.Address.District, ph.Address.City, ph.Address.State, ph.Address.PostalCode,
			ph.Active, ph.Approval, ph.Rating, ph.ReviewCount, ph.Distance, ph.DeliveryTime, ph.Closed, ph.FastDelivery,
			strings.Join(ph.Tags, ",")); err != nil {
			return err
		}
	}

	for _, o := range fb.Offers() {
		if _, err := tx.Exec(`INSERT INTO offers (id, product_id, pharmacy_id, list_price, promo_price, quantity, active)
                VALUES (?, ?, ?, ?, ?, ?, ?)`,
			o.ID, o.ProductID, o.PharmacyID, o.ListPrice, o.PromoPrice, o.Quantity, o.Active); err != nil {
			return err
		}
	}

	for _, t := range fb.Topics() {
		if _, err := tx.Exec(`INSERT INTO topics (id, title, body, category, tags, view_count, helpful_count, manual_order)
                VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.Title, t.Body, t.Category, strings.Join(t.Tags, ","), t.ViewCount, t.HelpfulCount, t.ManualOrder); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("seeded demo catalog",
		zap.Int("products", len(fb.Products())),
		zap.Int("pharmacies", len(fb.Pharmacies())))
	return nil
}
