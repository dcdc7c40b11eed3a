package search

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"esculapi/marketplace/domain"
	"esculapi/marketplace/internal/catalog"
)

// DefaultDebounceWindow is how long a session waits for the input to
// go quiet before issuing the remote query.
const DefaultDebounceWindow = 500 * time.Millisecond

// Coordinator orchestrates one search round trip: query the catalog
// source, fall back to the static dataset when the remote fails or
// answers empty, and run both paths through the same filter and sort
// stages. It holds no per-query state and is safe for concurrent use;
// debounce state lives in Session.
type Coordinator struct {
	source   CatalogSource
	fallback *Fallback
	log      *zap.Logger
	window   time.Duration
}

func NewCoordinator(source CatalogSource, fallback *Fallback, log *zap.Logger, window time.Duration) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Coordinator{source: source, fallback: fallback, log: log, window: window}
}

// Search resolves a query to best-effort results. Remote failures are
// logged and recovered locally, never surfaced: the static dataset is
// re-filtered with the same query rather than returned wholesale, so a
// dead backend degrades to a smaller catalog instead of an error.
func (c *Coordinator) Search(ctx context.Context, query, category string) Results {
	if strings.TrimSpace(query) == "" {
		return Results{}
	}

	live, err := c.source.SearchAll(ctx, query)
	if err != nil {
		c.log.Warn("catalog source failed, serving fallback",
			zap.String("query", query), zap.Error(err))
		return c.fromFallback(query, category)
	}
	if live.Empty() {
		return c.fromFallback(query, category)
	}
	return c.narrow(live, query, category)
}

func (c *Coordinator) fromFallback(query, category string) Results {
	return c.narrow(Results{
		Products:   c.fallback.Products(),
		Pharmacies: c.fallback.Pharmacies(),
	}, query, category)
}

// narrow applies the filter pipeline to both collections and orders
// pharmacies alphabetically; products keep the source's name order.
func (c *Coordinator) narrow(r Results, query, category string) Results {
	products := catalog.Filter(r.Products, query, category)

	// Pharmacy search has no category chips; the status predicate is
	// fixed to approved pharmacies upstream.
	pharmacies := catalog.Filter(r.Pharmacies, query, catalog.CategoryAll)
	if sorted, err := catalog.Sort(pharmacies, catalog.SortAlphabetical); err == nil {
		pharmacies = sorted
	}

	return Results{Products: products, Pharmacies: pharmacies}
}

// Topics returns the help topics ranked by relevance, filtered by the
// same two-step pipeline. A failed fetch degrades to the bundled
// topics, matching the help screen's behavior.
func (c *Coordinator) Topics(ctx context.Context, query, category string) []domain.Topic {
	topics, err := c.source.FetchTopics(ctx)
	if err != nil || len(topics) == 0 {
		if err != nil {
			c.log.Warn("topic fetch failed, serving fallback", zap.Error(err))
		}
		topics = c.fallback.Topics()
	}
	return catalog.RankTopics(catalog.Filter(topics, query, category))
}

// BestOffers aggregates the live catalog (or the fallback when the
// remote is down) into offer sets and returns the top-n savings shelf.
func (c *Coordinator) BestOffers(ctx context.Context, n int) []domain.OfferSet {
	products, offers, err := c.source.FetchProducts(ctx)
	if err != nil {
		c.log.Warn("product fetch failed, serving fallback", zap.Error(err))
		products, offers, _ = c.fallback.FetchProducts(ctx)
	}

	byProduct := make(map[int64][]domain.Offer, len(products))
	for _, o := range offers {
		if !o.Active || o.Quantity <= 0 {
			continue
		}
		byProduct[o.ProductID] = append(byProduct[o.ProductID], o)
	}

	sets := make([]domain.OfferSet, 0, len(products))
	for _, p := range products {
		group := byProduct[p.ID]
		if len(group) == 0 {
			continue
		}
		set, err := catalog.Aggregate(p, group)
		if err != nil {
			continue
		}
		sets = append(sets, set)
	}
	return catalog.BestOffers(sets, n)
}

// NewSession starts a debounced search session using the coordinator's
// configured window. onResults is invoked each time the session's
// results change, including the synchronous clear to empty.
func (c *Coordinator) NewSession(onResults func(Results)) *Session {
	return newSession(c, c.window, onResults)
}
