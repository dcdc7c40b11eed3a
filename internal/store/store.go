package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"esculapi/marketplace/domain"
	"esculapi/marketplace/internal/search"
)

// ErrNotFound is returned when a lookup by ID matches nothing.
var ErrNotFound = sql.ErrNoRows

// Store is the sqlx-backed catalog source. Search is plain
// case-insensitive substring over the entity's text columns, ordered
// by name and capped, the same contract the engine's in-memory filter
// applies to fallback data.
type Store struct {
	db    *sqlx.DB
	log   *zap.Logger
	limit int
}

func New(db *sqlx.DB, log *zap.Logger, limit int) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	if limit <= 0 {
		limit = 25
	}
	return &Store{db: db, log: log, limit: limit}
}

type pharmacyRow struct {
	ID           int64   `db:"id"`
	DisplayName  string  `db:"display_name"`
	LegalName    string  `db:"legal_name"`
	Street       string  `db:"street"`
	Number       string  `db:"number"`
	District     string  `db:"district"`
	City         string  `db:"city"`
	State        string  `db:"state"`
	PostalCode   string  `db:"postal_code"`
	Active       bool    `db:"active"`
	Approval     string  `db:"approval_status"`
	Rating       float64 `db:"rating"`
	ReviewCount  int     `db:"review_count"`
	Distance     string  `db:"distance"`
	DeliveryTime string  `db:"delivery_time"`
	Closed       bool    `db:"closed"`
	FastDelivery bool    `db:"fast_delivery"`
	Tags         string  `db:"tags"`
}

func (r pharmacyRow) toDomain() domain.Pharmacy {
	return domain.Pharmacy{
		ID:          r.ID,
		DisplayName: r.DisplayName,
		LegalName:   r.LegalName,
		Address: domain.Address{
			Street: r.Street, Number: r.Number, District: r.District,
			City: r.City, State: r.State, PostalCode: r.PostalCode,
		},
		Active:       r.Active,
		Approval:     domain.ApprovalStatus(r.Approval),
		Rating:       r.Rating,
		ReviewCount:  r.ReviewCount,
		Distance:     r.Distance,
		DeliveryTime: r.DeliveryTime,
		Closed:       r.Closed,
		FastDelivery: r.FastDelivery,
		Tags:         splitTags(r.Tags),
	}
}

type topicRow struct {
	ID           int64  `db:"id"`
	Title        string `db:"title"`
	Body         string `db:"body"`
	Category     string `db:"category"`
	Tags         string `db:"tags"`
	ViewCount    int64  `db:"view_count"`
	HelpfulCount int64  `db:"helpful_count"`
	ManualOrder  int    `db:"manual_order"`
}

func (r topicRow) toDomain() domain.Topic {
	return domain.Topic{
		ID: r.ID, Title: r.Title, Body: r.Body, Category: r.Category,
		Tags: splitTags(r.Tags), ViewCount: r.ViewCount,
		HelpfulCount: r.HelpfulCount, ManualOrder: r.ManualOrder,
	}
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// SearchAll runs the unified product-and-pharmacy search. Only active,
// approved pharmacies are visible to the marketplace.
func (s *Store) SearchAll(ctx context.Context, query string) (search.Results, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"

	var products []domain.Product
	err := s.db.SelectContext(ctx, &products, `SELECT id, name, description, active_ingredient, manufacturer, category, prescription
                FROM products
                WHERE LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(active_ingredient) LIKE ?
                ORDER BY name LIMIT ?`, like, like, like, s.limit)
	if err != nil {
		return search.Results{}, &search.RemoteQueryError{Op: "search products", Err: err}
	}

	var rows []pharmacyRow
	err = s.db.SelectContext(ctx, &rows, `SELECT * FROM pharmacies
                WHERE active = 1 AND approval_status = 'active'
                AND (LOWER(display_name) LIKE ? OR LOWER(legal_name) LIKE ? OR LOWER(city) LIKE ? OR LOWER(district) LIKE ?)
                ORDER BY display_name LIMIT ?`, like, like, like, like, s.limit)
	if err != nil {
		return search.Results{}, &search.RemoteQueryError{Op: "search pharmacies", Err: err}
	}

	pharmacies := make([]domain.Pharmacy, len(rows))
	for i, row := range rows {
		pharmacies[i] = row.toDomain()
	}
	return search.Results{Products: products, Pharmacies: pharmacies}, nil
}

// FetchProducts loads the catalog with its active offer listings.
func (s *Store) FetchProducts(ctx context.Context) ([]domain.Product, []domain.Offer, error) {
	var products []domain.Product
	err := s.db.SelectContext(ctx, &products, `SELECT id, name, description, active_ingredient, manufacturer, category, prescription
                FROM products ORDER BY name`)
	if err != nil {
		return nil, nil, &search.RemoteQueryError{Op: "fetch products", Err: err}
	}

	var offers []domain.Offer
	err = s.db.SelectContext(ctx, &offers, `SELECT id, product_id, pharmacy_id, list_price, promo_price, quantity, active
                FROM offers WHERE active = 1`)
	if err != nil {
		return nil, nil, &search.RemoteQueryError{Op: "fetch offers", Err: err}
	}
	return products, offers, nil
}

// FetchTopics loads every help topic.
func (s *Store) FetchTopics(ctx context.Context) ([]domain.Topic, error) {
	var rows []topicRow
	err := s.db.SelectContext(ctx, &rows, `SELECT id, title, body, category, tags, view_count, helpful_count, manual_order
                FROM topics ORDER BY manual_order`)
	if err != nil {
		return nil, &search.RemoteQueryError{Op: "fetch topics", Err: err}
	}
	topics := make([]domain.Topic, len(rows))
	for i, row := range rows {
		topics[i] = row.toDomain()
	}
	return topics, nil
}

// Product loads one product by ID.
func (s *Store) Product(ctx context.Context, id int64) (domain.Product, error) {
	var p domain.Product
	err := s.db.GetContext(ctx, &p, `SELECT id, name, description, active_ingredient, manufacturer, category, prescription
                FROM products WHERE id = ?`, id)
	return p, err
}

// OffersForProduct loads the active, in-stock offers for one product.
func (s *Store) OffersForProduct(ctx context.Context, productID int64) ([]domain.Offer, error) {
	var offers []domain.Offer
	err := s.db.SelectContext(ctx, &offers, `SELECT id, product_id, pharmacy_id, list_price, promo_price, quantity, active
                FROM offers WHERE product_id = ? AND active = 1 AND quantity > 0`, productID)
	if err != nil {
		return nil, &search.RemoteQueryError{Op: "fetch product offers", Err: err}
	}
	return offers, nil
}

// Pharmacies loads every active, approved pharmacy.
func (s *Store) Pharmacies(ctx context.Context) ([]domain.Pharmacy, error) {
	var rows []pharmacyRow
	err := s.db.SelectContext(ctx, &rows, `SELECT * FROM pharmacies
                WHERE active = 1 AND approval_status = 'active' ORDER BY display_name`)
	if err != nil {
		return nil, &search.RemoteQueryError{Op: "fetch pharmacies", Err: err}
	}
	pharmacies := make([]domain.Pharmacy, len(rows))
	for i, row := range rows {
		pharmacies[i] = row.toDomain()
	}
	return pharmacies, nil
}

// RecordTopicView bumps a topic's view counter. Counters only ever
// increase.
func (s *Store) RecordTopicView(ctx context.Context, id int64) error {
	return s.bumpTopic(ctx, id, "view_count")
}

// RecordTopicHelpful bumps a topic's helpful-vote counter.
func (s *Store) RecordTopicHelpful(ctx context.Context, id int64) error {
	return s.bumpTopic(ctx, id, "helpful_count")
}

func (s *Store) bumpTopic(ctx context.Context, id int64, column string) error {
	// column is one of two fixed names, never caller input.
	res, err := s.db.ExecContext(ctx, `UPDATE topics SET `+column+` = `+column+` + 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
