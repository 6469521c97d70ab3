// Package barcode provides product lookups against the Open Food Facts
// public API and maps product categories onto the app's closed set.
package barcode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fridgewise/v1/internal/domain/inventory"
	"github.com/fridgewise/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://world.openfoodfacts.org"

// Client implements the BarcodeService port
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a new Open Food Facts client
func NewClient(logger *zap.Logger) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

type productResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductNameKo      string   `json:"product_name_ko"`
		ProductName        string   `json:"product_name"`
		GenericName        string   `json:"generic_name"`
		Brands             string   `json:"brands"`
		CategoriesTags     []string `json:"categories_tags"`
		ImageFrontSmallURL string   `json:"image_front_small_url"`
		ImageURL           string   `json:"image_url"`
		Quantity           string   `json:"quantity"`
	} `json:"product"`
}

// Lookup fetches product information for a barcode. Unknown products
// return (nil, nil); only transport-level problems are errors.
func (c *Client) Lookup(ctx context.Context, barcode string) (*outbound.ProductInfo, error) {
	url := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, barcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build barcode request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("barcode lookup failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read barcode response: %w", err)
	}

	var parsed productResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode barcode response: %w", err)
	}

	if parsed.Status != 1 {
		c.logger.Debug("barcode not found", zap.String("barcode", barcode))
		return nil, nil
	}

	p := parsed.Product
	name := p.ProductNameKo
	if name == "" {
		name = p.ProductName
	}
	if name == "" {
		name = p.GenericName
	}
	if name == "" {
		name = "알 수 없는 제품"
	}

	image := p.ImageFrontSmallURL
	if image == "" {
		image = p.ImageURL
	}

	return &outbound.ProductInfo{
		Name:     name,
		Brand:    p.Brands,
		Category: string(MapCategory(p.CategoriesTags)),
		Image:    image,
		Quantity: p.Quantity,
		Barcode:  barcode,
	}, nil
}

// categoryKeywords maps Open Food Facts tag substrings to app
// categories. Checked in order; first hit wins.
var categoryKeywords = []struct {
	keywords []string
	category inventory.Category
}{
	{[]string{"meat", "pork", "beef", "chicken"}, inventory.CategoryMeat},
	{[]string{"seafood", "fish", "shrimp"}, inventory.CategorySeafood},
	{[]string{"vegetable"}, inventory.CategoryVegetable},
	{[]string{"fruit"}, inventory.CategoryFruit},
	{[]string{"dairy", "milk", "cheese", "yogurt"}, inventory.CategoryDairy},
	{[]string{"frozen"}, inventory.CategoryFrozen},
	{[]string{"beverage", "drink", "juice", "water"}, inventory.CategoryBeverage},
	{[]string{"sauce", "condiment", "spice"}, inventory.CategorySeasoning},
	{[]string{"cereal", "rice", "grain", "noodle"}, inventory.CategoryGrain},
}

// MapCategory maps Open Food Facts category tags onto the closed
// category set, defaulting to "other"
func MapCategory(tags []string) inventory.Category {
	joined := strings.ToLower(strings.Join(tags, ","))
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(joined, kw) {
				return entry.category
			}
		}
	}
	return inventory.CategoryOther
}
