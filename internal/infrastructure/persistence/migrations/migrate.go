// Package migrations runs schema migration for the application models
package migrations

import (
	"fmt"

	gormModels "github.com/fridgewise/v1/internal/infrastructure/persistence/gorm"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Run applies auto-migration for every application model
func Run(db *gorm.DB, log *zap.Logger) error {
	err := db.AutoMigrate(
		&gormModels.FridgeModel{},
		&gormModels.IngredientModel{},
		&gormModels.ShoppingItemModel{},
		&gormModels.MealPlanModel{},
		&gormModels.SavedRecipeModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info("Database migration completed")
	return nil
}
