// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/fridgewise/v1/internal/domain/inventory"
	"github.com/fridgewise/v1/internal/domain/mealplan"
	"github.com/fridgewise/v1/internal/domain/recipe"
	"github.com/fridgewise/v1/internal/domain/shopping"
	"github.com/google/uuid"
)

// FridgeRepository defines the interface for fridge persistence
type FridgeRepository interface {
	Create(ctx context.Context, fridge *inventory.Fridge) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*inventory.Fridge, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*inventory.Fridge, error)
	Rename(ctx context.Context, userID, id uuid.UUID, name string) error
}

// IngredientRepository defines the interface for ingredient persistence.
// Every query is scoped by the owning user through the fridge relation.
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *inventory.Ingredient) error
	Update(ctx context.Context, ingredient *inventory.Ingredient) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*inventory.Ingredient, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*inventory.Ingredient, error)
	FindByFridgeID(ctx context.Context, userID, fridgeID uuid.UUID) ([]*inventory.Ingredient, error)

	// DeleteExpired removes every ingredient of the user whose expiry
	// date is strictly before the cutoff. Returns the number removed.
	DeleteExpired(ctx context.Context, userID uuid.UUID, before time.Time) (int64, error)
}

// ShoppingRepository defines the interface for shopping list persistence
type ShoppingRepository interface {
	Create(ctx context.Context, item *shopping.Item) error
	BulkCreate(ctx context.Context, items []*shopping.Item) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*shopping.Item, error)
	SetChecked(ctx context.Context, userID, id uuid.UUID, checked bool) error
	DeleteChecked(ctx context.Context, userID uuid.UUID) (int64, error)
}

// MealPlanRepository defines the interface for meal plan persistence.
// Upsert replaces any existing plan for the same (user, date, slot).
type MealPlanRepository interface {
	Upsert(ctx context.Context, plan *mealplan.MealPlan) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	FindByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*mealplan.MealPlan, error)
}

// SavedRecipeRepository defines the interface for saved recipe persistence
type SavedRecipeRepository interface {
	Create(ctx context.Context, saved *recipe.SavedRecipe) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*recipe.SavedRecipe, error)
}
