package gorm

import (
	"encoding/json"
	"fmt"

	"github.com/fridgewise/v1/internal/domain/inventory"
	"github.com/fridgewise/v1/internal/domain/mealplan"
	"github.com/fridgewise/v1/internal/domain/recipe"
	"github.com/fridgewise/v1/internal/domain/shopping"
)

// FridgeToModel converts a domain fridge to its GORM model
func FridgeToModel(f *inventory.Fridge) *FridgeModel {
	return &FridgeModel{
		ID:        f.ID(),
		UserID:    f.UserID(),
		Name:      f.Name(),
		Kind:      string(f.Kind()),
		CreatedAt: f.CreatedAt(),
	}
}

// ModelToFridge converts a GORM model to a domain fridge
func ModelToFridge(m *FridgeModel) *inventory.Fridge {
	return inventory.ReconstructFridge(m.ID, m.UserID, m.Name, inventory.FridgeKind(m.Kind), m.CreatedAt)
}

// IngredientToModel converts a domain ingredient to its GORM model
func IngredientToModel(i *inventory.Ingredient) *IngredientModel {
	return &IngredientModel{
		ID:           i.ID(),
		FridgeID:     i.FridgeID(),
		Name:         i.Name(),
		Category:     string(i.Category()),
		Quantity:     i.Quantity(),
		Unit:         string(i.Unit()),
		PurchaseDate: i.PurchaseDate(),
		ExpiryDate:   i.ExpiryDate(),
		Barcode:      i.Barcode(),
		Memo:         i.Memo(),
		CreatedAt:    i.CreatedAt(),
	}
}

// ModelToIngredient converts a GORM model to a domain ingredient
func ModelToIngredient(m *IngredientModel) *inventory.Ingredient {
	return inventory.ReconstructIngredient(
		m.ID,
		m.FridgeID,
		m.Name,
		inventory.Category(m.Category),
		m.Quantity,
		inventory.Unit(m.Unit),
		m.PurchaseDate,
		m.ExpiryDate,
		m.Barcode,
		m.Memo,
		m.CreatedAt,
	)
}

// ShoppingItemToModel converts a domain shopping item to its GORM model
func ShoppingItemToModel(i *shopping.Item) *ShoppingItemModel {
	return &ShoppingItemModel{
		ID:        i.ID(),
		UserID:    i.UserID(),
		Name:      i.Name(),
		Quantity:  i.Quantity(),
		Unit:      string(i.Unit()),
		Checked:   i.Checked(),
		RecipeID:  i.RecipeID(),
		CreatedAt: i.CreatedAt(),
	}
}

// ModelToShoppingItem converts a GORM model to a domain shopping item
func ModelToShoppingItem(m *ShoppingItemModel) *shopping.Item {
	return shopping.Reconstruct(m.ID, m.UserID, m.Name, m.Quantity, inventory.Unit(m.Unit), m.Checked, m.RecipeID, m.CreatedAt)
}

// MealPlanToModel converts a domain meal plan to its GORM model
func MealPlanToModel(p *mealplan.MealPlan) (*MealPlanModel, error) {
	ingredients, err := json.Marshal(p.Ingredients())
	if err != nil {
		return nil, fmt.Errorf("failed to encode meal plan ingredients: %w", err)
	}

	return &MealPlanModel{
		ID:          p.ID(),
		UserID:      p.UserID(),
		Date:        p.Date(),
		MealType:    string(p.Slot()),
		Title:       p.Title(),
		Ingredients: JSONDocument(ingredients),
		Memo:        p.Memo(),
		CreatedAt:   p.CreatedAt(),
	}, nil
}

// ModelToMealPlan converts a GORM model to a domain meal plan
func ModelToMealPlan(m *MealPlanModel) (*mealplan.MealPlan, error) {
	var ingredients []mealplan.IngredientHint
	if len(m.Ingredients) > 0 {
		if err := json.Unmarshal(m.Ingredients, &ingredients); err != nil {
			return nil, fmt.Errorf("failed to decode meal plan ingredients: %w", err)
		}
	}

	return mealplan.Reconstruct(
		m.ID,
		m.UserID,
		m.Date,
		mealplan.MealSlot(m.MealType),
		m.Title,
		ingredients,
		m.Memo,
		m.CreatedAt,
	), nil
}

// SavedRecipeToModel converts a domain saved recipe to its GORM model
func SavedRecipeToModel(r *recipe.SavedRecipe) (*SavedRecipeModel, error) {
	content, err := json.Marshal(r.Content())
	if err != nil {
		return nil, fmt.Errorf("failed to encode saved recipe content: %w", err)
	}

	return &SavedRecipeModel{
		ID:        r.ID(),
		UserID:    r.UserID(),
		Title:     r.Title(),
		Source:    string(r.Source()),
		SourceID:  r.SourceID(),
		Content:   JSONDocument(content),
		CreatedAt: r.CreatedAt(),
	}, nil
}

// ModelToSavedRecipe converts a GORM model to a domain saved recipe
func ModelToSavedRecipe(m *SavedRecipeModel) (*recipe.SavedRecipe, error) {
	var content recipe.SavedContent
	if len(m.Content) > 0 {
		if err := json.Unmarshal(m.Content, &content); err != nil {
			return nil, fmt.Errorf("failed to decode saved recipe content: %w", err)
		}
	}

	return recipe.ReconstructSavedRecipe(
		m.ID,
		m.UserID,
		m.Title,
		recipe.SavedSource(m.Source),
		m.SourceID,
		content,
		m.CreatedAt,
	), nil
}
