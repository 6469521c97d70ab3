// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/fridgewise/v1/internal/domain/recipe"
)

// RecommendService defines the AI-backed use cases: recipe
// recommendation, receipt extraction, and daily planner suggestions.
// This is the primary port the HTTP handlers drive.
type RecommendService interface {
	Recommend(ctx context.Context, cmd RecommendCommand) (*RecommendResult, error)
	ScanReceipt(ctx context.Context, image []byte, mimeType string) ([]ReceiptItem, error)
	SuggestDailyPlan(ctx context.Context, cmd SuggestPlanCommand) ([]MealSuggestion, error)
}

// RecommendMode selects the emphasis of a recommendation request
type RecommendMode string

const (
	// ModeGeneral asks for recipes using whatever is on hand
	ModeGeneral RecommendMode = "general"
	// ModeUrgent asks for recipes that consume near-expiry items first
	ModeUrgent RecommendMode = "urgent"
)

// RecommendIngredient is one owned ingredient passed into a
// recommendation request. DDay, when set, is the signed day offset to
// the ingredient's expiry date.
type RecommendIngredient struct {
	Name     string
	Quantity float64
	Unit     string
	DDay     *int
}

// RecommendCommand contains data for a recommendation request
type RecommendCommand struct {
	Ingredients []RecommendIngredient
	Mode        RecommendMode
	Theme       string   // optional cuisine style, free text
	MustUse     []string // ingredient names every recipe must include
}

// PublicRecipeRef is the attribution payload for a matched public recipe
type PublicRecipeRef struct {
	Name        string `json:"name"`
	Image       string `json:"image,omitempty"`
	Ingredients string `json:"ingredients"`
}

// RecommendResult is the outcome of a recommendation request
type RecommendResult struct {
	Recipes              []recipe.AIRecipe          `json:"recipes"`
	PublicRecipes        map[string]PublicRecipeRef `json:"publicRecipes"`
	MatchedPublicRecipes int                        `json:"matchedPublicRecipes"`
	TotalPublicRecipes   int                        `json:"totalPublicRecipes"`
}

// ReceiptItem is one candidate ingredient extracted from a receipt image
type ReceiptItem struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
}

// SuggestPlanCommand contains data for a daily planner suggestion
type SuggestPlanCommand struct {
	Date        string // YYYY-MM-DD
	Ingredients []RecommendIngredient
}

// MealSuggestion is one suggested meal for the planner
type MealSuggestion struct {
	MealType    string                   `json:"mealType"`
	Title       string                   `json:"title"`
	Ingredients []recipe.SavedIngredient `json:"ingredients"`
}
