// Package recommend provides the application layer for AI-backed
// recommendation flows: recipe suggestions from fridge contents,
// receipt extraction, and daily meal planning.
package recommend

import (
	"context"
	"time"

	"github.com/fridgewise/v1/internal/domain/inventory"
	"github.com/fridgewise/v1/internal/domain/recipe"
	"github.com/fridgewise/v1/internal/infrastructure/ai"
	"github.com/fridgewise/v1/internal/ports/inbound"
	"github.com/fridgewise/v1/internal/ports/outbound"
	apperrors "github.com/fridgewise/v1/pkg/errors"
	"go.uber.org/zap"
)

// maxReferenceRecipes bounds how many matched public recipes are
// embedded in the instruction as reference material.
const maxReferenceRecipes = 5

// Service implements the RecommendService port
type Service struct {
	chat   outbound.ChatService
	corpus outbound.CorpusProvider
	logger *zap.Logger
}

// NewService creates the recommendation service
func NewService(chat outbound.ChatService, corpus outbound.CorpusProvider, logger *zap.Logger) inbound.RecommendService {
	return &Service{
		chat:   chat,
		corpus: corpus,
		logger: logger.Named("recommend"),
	}
}

// Recommend generates recipe suggestions from the user's ingredients.
// Validation happens before any external call; the corpus is consulted
// fail-open; malformed model output is retried exactly once with a
// stricter instruction before surfacing.
func (s *Service) Recommend(ctx context.Context, cmd inbound.RecommendCommand) (*inbound.RecommendResult, error) {
	if len(cmd.Ingredients) == 0 {
		return nil, apperrors.NewValidationError("재료를 입력해주세요")
	}

	corpus, err := s.corpus.Snapshot(ctx)
	if err != nil {
		// The provider is fail-open by contract; treat an error the same way
		s.logger.Warn("corpus snapshot unavailable", zap.Error(err))
		corpus = nil
	}

	names := make([]string, 0, len(cmd.Ingredients))
	for _, ing := range cmd.Ingredients {
		names = append(names, ing.Name)
	}

	allMatches := recipe.MatchByIngredients(corpus, names)
	references := allMatches
	if len(references) > maxReferenceRecipes {
		references = references[:maxReferenceRecipes]
	}

	prompt := buildRecommendPrompt(cmd, references)

	recipes, err := s.completeRecipes(ctx, prompt)
	if err != nil {
		return nil, err
	}

	normalizeProvenance(recipes, references)

	refs := make(map[string]inbound.PublicRecipeRef, len(references))
	for _, m := range references {
		refs[m.Recipe.ID] = inbound.PublicRecipeRef{
			Name:        m.Recipe.Name,
			Image:       m.Recipe.Image,
			Ingredients: m.Recipe.Ingredients,
		}
	}

	return &inbound.RecommendResult{
		Recipes:              recipes,
		PublicRecipes:        refs,
		MatchedPublicRecipes: len(allMatches),
		TotalPublicRecipes:   len(corpus),
	}, nil
}

// completeRecipes calls the model and extracts the recipe array,
// retrying once with a stricter instruction when the output cannot be
// parsed. Rate-limit and transport failures are never retried here;
// the retrying client already owns the rate-limit budget.
func (s *Service) completeRecipes(ctx context.Context, prompt string) ([]recipe.AIRecipe, error) {
	text, err := s.chat.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var recipes []recipe.AIRecipe
	if err := ai.ExtractJSONArray(text, &recipes); err == nil && len(recipes) > 0 {
		return recipes, nil
	}

	s.logger.Warn("recipe extraction failed, retrying with strict instruction")
	text, err = s.chat.Complete(ctx, prompt+strictOutputReminder)
	if err != nil {
		return nil, err
	}
	if err := ai.ExtractJSONArray(text, &recipes); err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, apperrors.NewAIMalformedOutputError("model returned an empty recipe array")
	}
	return recipes, nil
}

// normalizeProvenance repairs the provenance tags on returned recipes:
// a recipe citing a known reference is public-db derived, everything
// else is freshly generated.
func normalizeProvenance(recipes []recipe.AIRecipe, references []recipe.Match) {
	known := make(map[string]bool, len(references))
	for _, m := range references {
		known[m.Recipe.ID] = true
	}

	for i := range recipes {
		if recipes[i].SourceID != "" && known[recipes[i].SourceID] {
			recipes[i].Source = recipe.ProvenancePublicDB
		} else {
			recipes[i].Source = recipe.ProvenanceAIGenerated
			recipes[i].SourceID = ""
		}
	}
}

// ScanReceipt extracts candidate ingredient records from a receipt image
func (s *Service) ScanReceipt(ctx context.Context, image []byte, mimeType string) ([]inbound.ReceiptItem, error) {
	if len(image) == 0 {
		return nil, apperrors.NewValidationError("이미지를 업로드해주세요")
	}

	text, err := s.chat.CompleteWithImage(ctx, receiptScanPrompt, image, mimeType)
	if err != nil {
		return nil, err
	}

	var items []inbound.ReceiptItem
	if err := ai.ExtractJSONArray(text, &items); err != nil {
		s.logger.Warn("receipt extraction failed, retrying with strict instruction")
		text, err = s.chat.CompleteWithImage(ctx, receiptScanPrompt+strictOutputReminder, image, mimeType)
		if err != nil {
			return nil, err
		}
		if err := ai.ExtractJSONArray(text, &items); err != nil {
			return nil, err
		}
	}

	// Coerce AI output onto the closed enumerations
	for i := range items {
		items[i].Category = string(inventory.CategoryOrOther(items[i].Category))
		items[i].Unit = string(inventory.UnitOrPiece(items[i].Unit))
		if items[i].Quantity <= 0 {
			items[i].Quantity = 1
		}
	}

	return items, nil
}

// SuggestDailyPlan suggests breakfast, lunch, and dinner for a date,
// favoring the user's current holdings when provided
func (s *Service) SuggestDailyPlan(ctx context.Context, cmd inbound.SuggestPlanCommand) ([]inbound.MealSuggestion, error) {
	if _, err := time.Parse("2006-01-02", cmd.Date); err != nil {
		return nil, apperrors.NewValidationError("날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)")
	}

	prompt := buildPlanPrompt(cmd)

	text, err := s.chat.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var suggestions []inbound.MealSuggestion
	if err := ai.ExtractJSONArray(text, &suggestions); err != nil {
		s.logger.Warn("plan extraction failed, retrying with strict instruction")
		text, err = s.chat.Complete(ctx, prompt+strictOutputReminder)
		if err != nil {
			return nil, err
		}
		if err := ai.ExtractJSONArray(text, &suggestions); err != nil {
			return nil, err
		}
	}

	return suggestions, nil
}
