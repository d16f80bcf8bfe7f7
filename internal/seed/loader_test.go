package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const fixturePath = "testdata/seed_products.json"

func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	var srv *httptest.Server

	mux.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/products/"))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(catalogProduct{
			ID:          id,
			Title:       fmt.Sprintf("Product %d", id),
			Description: fmt.Sprintf("Description %d", id),
			Price:       float64(id) * 1.5,
			Image:       srv.URL + "/image.png",
		})
	})
	mux.HandleFunc("/image.png", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
	})

	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLoadSeedDataFromAPI(t *testing.T) {
	srv := newCatalogServer(t)
	loader := NewLoader(srv.URL, fixturePath, zap.NewNop())

	products, stocks, err := loader.LoadSeedData(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 9)
	require.Len(t, stocks, 9)

	first := products[0]
	assert.Equal(t, "1", first.ProductID)
	assert.Equal(t, "2", first.SellerID, "seller id derives from product id")
	assert.Equal(t, "Product 1", first.Name)
	assert.Equal(t, 1.5, first.Price)
	assert.True(t, strings.HasPrefix(first.ImageB64, "data:image/png;base64,"))

	for i, stock := range stocks {
		assert.Equal(t, strconv.Itoa(i+1), stock.ProductID)
		assert.Equal(t, (i+1)*10, stock.StockAmount)
	}
}

func TestLoadSeedDataFallsBackToFixture(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	loader := NewLoader(srv.URL, fixturePath, zap.NewNop())

	products, stocks, err := loader.LoadSeedData(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 9)
	require.Len(t, stocks, 9)

	assert.Equal(t, "1", products[0].ProductID)
	assert.NotEmpty(t, products[0].ImageB64)
	assert.Equal(t, 90, stocks[8].StockAmount)
}

func TestLoadSeedDataFixtureMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	loader := NewLoader(srv.URL, "testdata/does_not_exist.json", zap.NewNop())

	_, _, err := loader.LoadSeedData(context.Background())
	assert.Error(t, err)
}
