package search

import (
	"context"
	"fmt"

	"esculapi/marketplace/domain"
)

// Results is the shape every search path produces, live or fallback,
// so callers never need to know which source answered.
type Results struct {
	Products   []domain.Product  `json:"products"`
	Pharmacies []domain.Pharmacy `json:"pharmacies"`
}

// Empty reports whether the remote answered with nothing usable.
func (r Results) Empty() bool {
	return len(r.Products) == 0 && len(r.Pharmacies) == 0
}

// CatalogSource is the remote data capability the engine consumes but
// never implements: the marketplace backend, or a stub in tests.
type CatalogSource interface {
	FetchProducts(ctx context.Context) ([]domain.Product, []domain.Offer, error)
	SearchAll(ctx context.Context, query string) (Results, error)
	FetchTopics(ctx context.Context) ([]domain.Topic, error)
}

// RemoteQueryError wraps a network or deserialization failure from the
// catalog source. The coordinator recovers from it by re-filtering the
// static dataset; it is never surfaced to the caller.
type RemoteQueryError struct {
	Op  string
	Err error
}

func (e *RemoteQueryError) Error() string {
	return fmt.Sprintf("search: %s: %v", e.Op, e.Err)
}

func (e *RemoteQueryError) Unwrap() error {
	return e.Err
}
