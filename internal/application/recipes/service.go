// Package recipes provides the application layer for saved recipes.
package recipes

import (
	"context"

	domain "github.com/fridgewise/v1/internal/domain/recipe"
	"github.com/fridgewise/v1/internal/ports/outbound"
	apperrors "github.com/fridgewise/v1/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service orchestrates the saved recipe collection
type Service struct {
	saved  outbound.SavedRecipeRepository
	logger *zap.Logger
}

// NewService creates the saved recipes service
func NewService(saved outbound.SavedRecipeRepository, logger *zap.Logger) *Service {
	return &Service{
		saved:  saved,
		logger: logger.Named("recipes"),
	}
}

// SaveCommand contains data for saving a recipe
type SaveCommand struct {
	UserID   uuid.UUID
	Title    string
	Source   domain.SavedSource
	SourceID string
	Content  domain.SavedContent
}

// Save keeps a recipe in the user's collection
func (s *Service) Save(ctx context.Context, cmd SaveCommand) (*domain.SavedRecipe, error) {
	saved, err := domain.NewSavedRecipe(cmd.UserID, cmd.Title, cmd.Source, cmd.SourceID, cmd.Content)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.saved.Create(ctx, saved); err != nil {
		return nil, apperrors.NewDatabaseError("save recipe", err)
	}

	s.logger.Info("recipe saved",
		zap.String("user_id", cmd.UserID.String()),
		zap.String("source", string(cmd.Source)),
	)
	return saved, nil
}

// List returns the user's saved recipes, newest first
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*domain.SavedRecipe, error) {
	recipes, err := s.saved.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list saved recipes", err)
	}
	return recipes, nil
}

// Delete removes a recipe from the collection
func (s *Service) Delete(ctx context.Context, userID, recipeID uuid.UUID) error {
	if err := s.saved.Delete(ctx, userID, recipeID); err != nil {
		if err == domain.ErrRecipeNotFound {
			return apperrors.NewAppError(apperrors.CodeRecipeNotFound, "Recipe not found", "")
		}
		return apperrors.NewDatabaseError("delete saved recipe", err)
	}
	return nil
}
