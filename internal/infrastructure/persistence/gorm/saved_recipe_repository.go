package gorm

import (
	"context"

	"github.com/fridgewise/v1/internal/domain/recipe"
	"github.com/fridgewise/v1/internal/ports/outbound"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SavedRecipeRepository implements the saved recipe repository interface using GORM
type SavedRecipeRepository struct {
	db *gorm.DB
}

// NewSavedRecipeRepository creates a new saved recipe repository
func NewSavedRecipeRepository(db *gorm.DB) outbound.SavedRecipeRepository {
	return &SavedRecipeRepository{db: db}
}

// Create creates a new saved recipe
func (r *SavedRecipeRepository) Create(ctx context.Context, saved *recipe.SavedRecipe) error {
	model, err := SavedRecipeToModel(saved)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete deletes a saved recipe the user owns
func (r *SavedRecipeRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&SavedRecipeModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return recipe.ErrRecipeNotFound
	}
	return nil
}

// FindByUserID finds the user's saved recipes, newest first
func (r *SavedRecipeRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*recipe.SavedRecipe, error) {
	var models []SavedRecipeModel

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	recipes := make([]*recipe.SavedRecipe, len(models))
	for i := range models {
		saved, err := ModelToSavedRecipe(&models[i])
		if err != nil {
			return nil, err
		}
		recipes[i] = saved
	}
	return recipes, nil
}
