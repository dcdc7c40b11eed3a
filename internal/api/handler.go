package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"esculapi/marketplace/internal/catalog"
	"esculapi/marketplace/internal/search"
	"esculapi/marketplace/internal/store"
)

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	coord      *search.Coordinator
	store      *store.Store
	log        *zap.Logger
	bestOffers int
}

// New constructs a Handler.
func New(coord *search.Coordinator, st *store.Store, log *zap.Logger, bestOffers int) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{coord: coord, store: st, log: log, bestOffers: bestOffers}
}

// Router wires up the HTTP API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)
	r.Get("/search", h.search)

	r.Route("/products", func(r chi.Router) {
		r.Get("/{id}/offers", h.productOffers)
	})
	r.Get("/offers/best", h.bestOfferShelf)
	r.Get("/pharmacies", h.listPharmacies)

	r.Route("/topics", func(r chi.Router) {
		r.Get("/", h.listTopics)
		r.Post("/{id}/view", h.recordTopicView)
		r.Post("/{id}/helpful", h.recordTopicHelpful)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// search runs the unified product-and-pharmacy search. It never
// fails: remote trouble degrades to the bundled dataset inside the
// coordinator.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	category := r.URL.Query().Get("category")

	results := h.coord.Search(r.Context(), query, category)
	respondJSON(w, http.StatusOK, results)
}

func (h *Handler) productOffers(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.store.Product(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load product")
		return
	}

	offers, err := h.store.OffersForProduct(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load offers")
		return
	}
	// Aggregation rejects empty input by contract; guard here.
	if len(offers) == 0 {
		respondError(w, http.StatusNotFound, "no offers for product")
		return
	}

	set, err := catalog.Aggregate(product, offers)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to aggregate offers")
		return
	}
	respondJSON(w, http.StatusOK, set)
}

func (h *Handler) bestOfferShelf(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = h.bestOffers
	}
	respondJSON(w, http.StatusOK, h.coord.BestOffers(r.Context(), limit))
}

func (h *Handler) listPharmacies(w http.ResponseWriter, r *http.Request) {
	pharmacies, err := h.store.Pharmacies(r.Context())
	if err != nil {
		h.log.Warn("pharmacy fetch failed, serving fallback", zap.Error(err))
		pharmacies = search.NewFallback().Pharmacies()
	}

	if key := r.URL.Query().Get("sort"); key != "" {
		sorted, err := catalog.Sort(pharmacies, catalog.SortKey(key))
		var invalid *catalog.InvalidSortKeyError
		if errors.As(err, &invalid) {
			respondError(w, http.StatusBadRequest, invalid.Error())
			return
		}
		pharmacies = sorted
	}
	respondJSON(w, http.StatusOK, pharmacies)
}

func (h *Handler) listTopics(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	category := r.URL.Query().Get("category")

	respondJSON(w, http.StatusOK, h.coord.Topics(r.Context(), query, category))
}

func (h *Handler) recordTopicView(w http.ResponseWriter, r *http.Request) {
	h.bumpTopic(w, r, h.store.RecordTopicView)
}

func (h *Handler) recordTopicHelpful(w http.ResponseWriter, r *http.Request) {
	h.bumpTopic(w, r, h.store.RecordTopicHelpful)
}

func (h *Handler) bumpTopic(w http.ResponseWriter, r *http.Request, record func(ctx context.Context, id int64) error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid topic id")
		return
	}
	if err := record(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "topic not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "unable to update topic")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}

// Helpers

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
