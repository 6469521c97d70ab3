package barcode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fridgewise/v1/internal/domain/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewClient(zap.NewNop())
	c.baseURL = server.URL
	return c
}

func TestLookupKnownProduct(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/product/8801043015945.json", r.URL.Path)
		w.Write([]byte(`{
			"status": 1,
			"product": {
				"product_name_ko": "신라면",
				"product_name": "Shin Ramyun",
				"brands": "농심",
				"categories_tags": ["en:instant-noodles"],
				"image_front_small_url": "https://img.example/front.jpg",
				"quantity": "120g"
			}
		}`))
	})

	info, err := client.Lookup(context.Background(), "8801043015945")

	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "신라면", info.Name, "Korean name wins over the generic one")
	assert.Equal(t, "농심", info.Brand)
	assert.Equal(t, string(inventory.CategoryGrain), info.Category)
	assert.Equal(t, "https://img.example/front.jpg", info.Image)
	assert.Equal(t, "120g", info.Quantity)
	assert.Equal(t, "8801043015945", info.Barcode)
}

func TestLookupFallsBackThroughNames(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": 1, "product": {"product_name": "Whole Milk", "categories_tags": ["en:milks"]}}`))
	})

	info, err := client.Lookup(context.Background(), "000111")

	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "Whole Milk", info.Name)
	assert.Equal(t, string(inventory.CategoryDairy), info.Category)
}

func TestLookupUnknownProduct(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": 0}`))
	})

	info, err := client.Lookup(context.Background(), "0000000000000")

	require.NoError(t, err)
	assert.Nil(t, info, "unknown barcode is not an error")
}

func TestLookupMalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	})

	_, err := client.Lookup(context.Background(), "12345")
	require.Error(t, err)
}

func TestMapCategory(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want inventory.Category
	}{
		{"pork products", []string{"en:meats", "en:pork"}, inventory.CategoryMeat},
		{"fish", []string{"en:fishes"}, inventory.CategorySeafood},
		{"cheese", []string{"en:cheeses"}, inventory.CategoryDairy},
		{"juice", []string{"en:fruit-juices"}, inventory.CategoryFruit},
		{"frozen dumplings", []string{"en:frozen-foods"}, inventory.CategoryFrozen},
		{"soy sauce", []string{"en:sauces"}, inventory.CategorySeasoning},
		{"instant noodles", []string{"en:instant-noodles"}, inventory.CategoryGrain},
		{"no match", []string{"en:snacks"}, inventory.CategoryOther},
		{"empty tags", nil, inventory.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapCategory(tt.tags))
		})
	}
}
