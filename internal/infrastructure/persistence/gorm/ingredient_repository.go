package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/fridgewise/v1/internal/domain/inventory"
	"github.com/fridgewise/v1/internal/ports/outbound"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IngredientRepository implements the ingredient repository interface
// using GORM. Ownership is enforced through the fridge relation, so
// every query joins on fridges.user_id.
type IngredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(db *gorm.DB) outbound.IngredientRepository {
	return &IngredientRepository{db: db}
}

// Create creates a new ingredient
func (r *IngredientRepository) Create(ctx context.Context, ingredient *inventory.Ingredient) error {
	model := IngredientToModel(ingredient)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Update updates an existing ingredient
func (r *IngredientRepository) Update(ctx context.Context, ingredient *inventory.Ingredient) error {
	model := IngredientToModel(ingredient)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return inventory.ErrIngredientNotFound
	}
	return nil
}

// Delete deletes an ingredient the user owns
func (r *IngredientRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND fridge_id IN (?)", id, r.ownedFridgeIDs(ctx, userID)).
		Delete(&IngredientModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return inventory.ErrIngredientNotFound
	}
	return nil
}

// FindByID finds an ingredient by ID, scoped to the owning user
func (r *IngredientRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*inventory.Ingredient, error) {
	var model IngredientModel

	result := r.db.WithContext(ctx).
		Joins("JOIN fridges ON fridges.id = ingredients.fridge_id").
		Where("ingredients.id = ? AND fridges.user_id = ?", id, userID).
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, inventory.ErrIngredientNotFound
		}
		return nil, result.Error
	}

	return ModelToIngredient(&model), nil
}

// FindByUserID finds every ingredient across the user's fridges
func (r *IngredientRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*inventory.Ingredient, error) {
	var models []IngredientModel

	result := r.db.WithContext(ctx).
		Joins("JOIN fridges ON fridges.id = ingredients.fridge_id").
		Where("fridges.user_id = ?", userID).
		Order("ingredients.expiry_date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	return modelsToIngredients(models), nil
}

// FindByFridgeID finds the ingredients of one fridge the user owns
func (r *IngredientRepository) FindByFridgeID(ctx context.Context, userID, fridgeID uuid.UUID) ([]*inventory.Ingredient, error) {
	var models []IngredientModel

	result := r.db.WithContext(ctx).
		Joins("JOIN fridges ON fridges.id = ingredients.fridge_id").
		Where("fridges.user_id = ? AND ingredients.fridge_id = ?", userID, fridgeID).
		Order("ingredients.expiry_date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	return modelsToIngredients(models), nil
}

// DeleteExpired removes every ingredient of the user whose expiry date
// is strictly before the cutoff. Returns the number removed.
func (r *IngredientRepository) DeleteExpired(ctx context.Context, userID uuid.UUID, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expiry_date < ? AND fridge_id IN (?)", before, r.ownedFridgeIDs(ctx, userID)).
		Delete(&IngredientModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ownedFridgeIDs builds the subquery selecting the user's fridge IDs
func (r *IngredientRepository) ownedFridgeIDs(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&FridgeModel{}).
		Select("id").
		Where("user_id = ?", userID)
}

func modelsToIngredients(models []IngredientModel) []*inventory.Ingredient {
	ingredients := make([]*inventory.Ingredient, len(models))
	for i := range models {
		ingredients[i] = ModelToIngredient(&models[i])
	}
	return ingredients
}
