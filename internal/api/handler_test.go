package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"esculapi/marketplace/domain"
	"esculapi/marketplace/internal/database"
	"esculapi/marketplace/internal/migrations"
	"esculapi/marketplace/internal/search"
	"esculapi/marketplace/internal/seed"
	"esculapi/marketplace/internal/store"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.Run(db))
	require.NoError(t, seed.Run(db, zap.NewNop()))

	st := store.New(db, zap.NewNop(), 25)
	coord := search.NewCoordinator(st, search.NewFallback(), zap.NewNop(), search.DefaultDebounceWindow)

	srv := httptest.NewServer(New(coord, st, zap.NewNop(), 5).Router())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, dest interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if dest != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
	}
	return resp.StatusCode
}

func TestSearchEndpoint(t *testing.T) {
	srv := testServer(t)

	var results search.Results
	status := getJSON(t, srv.URL+"/search?query=vitamina", &results)

	assert.Equal(t, http.StatusOK, status)
	require.Len(t, results.Products, 1)
	assert.Equal(t, "Vitamina C 1000mg", results.Products[0].Name)
}

func TestSearchEndpoint_BlankQuery(t *testing.T) {
	srv := testServer(t)

	var results search.Results
	status := getJSON(t, srv.URL+"/search?query=", &results)

	assert.Equal(t, http.StatusOK, status)
	assert.True(t, results.Empty())
}

func TestProductOffersEndpoint(t *testing.T) {
	srv := testServer(t)

	var set domain.OfferSet
	status := getJSON(t, srv.URL+"/products/1/offers", &set)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Paracetamol 500mg", set.Product.Name)
	require.NotEmpty(t, set.Offers)
	assert.Equal(t, set.MinPrice, set.BestOffer.EffectivePrice())
	assert.True(t, set.Promotion)
}

func TestProductOffersEndpoint_UnknownProduct(t *testing.T) {
	srv := testServer(t)

	status := getJSON(t, srv.URL+"/products/9999/offers", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestBestOffersEndpoint(t *testing.T) {
	srv := testServer(t)

	var shelf []domain.OfferSet
	status := getJSON(t, srv.URL+"/offers/best?limit=2", &shelf)

	assert.Equal(t, http.StatusOK, status)
	require.Len(t, shelf, 2)
	assert.GreaterOrEqual(t, shelf[0].Savings, shelf[1].Savings)
}

func TestPharmaciesEndpoint_Sorted(t *testing.T) {
	srv := testServer(t)

	var pharmacies []domain.Pharmacy
	status := getJSON(t, srv.URL+"/pharmacies?sort=distance_asc", &pharmacies)

	assert.Equal(t, http.StatusOK, status)
	require.Len(t, pharmacies, 4)
	assert.Equal(t, "Farmácia São Paulo", pharmacies[0].DisplayName)
}

func TestPharmaciesEndpoint_InvalidSortKey(t *testing.T) {
	srv := testServer(t)

	status := getJSON(t, srv.URL+"/pharmacies?sort=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestTopicsEndpoint(t *testing.T) {
	srv := testServer(t)

	var topics []domain.Topic
	status := getJSON(t, srv.URL+"/topics?query=pix", &topics)

	assert.Equal(t, http.StatusOK, status)
	require.Len(t, topics, 1)
	assert.Equal(t, "Formas de pagamento aceitas", topics[0].Title)
}

func TestTopicCounterEndpoints(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Post(srv.URL+"/topics/1/view", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/topics/9999/helpful", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
