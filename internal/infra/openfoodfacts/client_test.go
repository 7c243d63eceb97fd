package openfoodfacts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nutrifit/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	cfg := &config.Config{}
	cfg.FoodCatalog.BaseURL = baseURL
	cfg.FoodCatalog.Timeout = 2 * time.Second

	return NewClient(cfg).(*Client)
}

func TestFetchProduct_KnownBarcode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/product/3017620422003.json", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": 1,
			"code": "3017620422003",
			"product": {
				"product_name": "Nutella",
				"ingredients_text": "Sugar, palm oil, hazelnuts",
				"nutriments": {"energy-kcal": 539, "fat": 30.9, "sugars": 56.3},
				"nutriscore_grade": "e",
				"brands": "Ferrero",
				"allergens_tags": ["en:nuts"],
				"image_url": "https://images.example/nutella.jpg"
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	product, err := client.FetchProduct(context.Background(), "3017620422003")

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Nutella", product.ProductName)
	assert.InDelta(t, 539, product.Nutriments.EnergyKcal, 1e-9)
	assert.Equal(t, []string{"en:nuts"}, product.Allergens)
}

func TestFetchProduct_UnknownBarcodeStatusZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": 0, "code": "0000000000000"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	product, err := client.FetchProduct(context.Background(), "0000000000000")

	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestFetchProduct_UnknownBarcodeHTTP404(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	product, err := client.FetchProduct(context.Background(), "0000000000000")

	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestFetchProduct_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FetchProduct(context.Background(), "3017620422003")

	require.Error(t, err)
}

func TestFetchProduct_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)

	_, err := client.FetchProduct(context.Background(), "3017620422003")

	require.Error(t, err)
}
