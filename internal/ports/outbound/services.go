package outbound

import (
	"context"

	"github.com/fridgewise/v1/internal/domain/recipe"
)

// ChatService is the outbound port for generative text completion.
// Implementations wrap a provider-specific API; the application layer
// depends only on prompt-in, text-out.
type ChatService interface {
	// Complete sends an instruction and returns the raw response text.
	Complete(ctx context.Context, prompt string) (string, error)

	// CompleteWithImage sends an instruction together with an inline
	// image (receipt scanning). mimeType defaults to image/jpeg when empty.
	CompleteWithImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}

// CorpusProvider is the outbound port for the public recipe dataset.
// Snapshot returns the full cached corpus; implementations own TTL and
// single-flight refill. A fetch failure degrades to an empty corpus
// rather than an error (fail-open).
type CorpusProvider interface {
	Snapshot(ctx context.Context) ([]recipe.PublicRecipe, error)
	Invalidate()
}

// ProductInfo is the result of a barcode lookup
type ProductInfo struct {
	Name     string `json:"name"`
	Brand    string `json:"brand,omitempty"`
	Category string `json:"category,omitempty"`
	Image    string `json:"image,omitempty"`
	Quantity string `json:"quantity,omitempty"`
	Barcode  string `json:"barcode"`
}

// BarcodeService is the outbound port for product lookups by barcode.
// A nil result with nil error means the product is unknown.
type BarcodeService interface {
	Lookup(ctx context.Context, barcode string) (*ProductInfo, error)
}
