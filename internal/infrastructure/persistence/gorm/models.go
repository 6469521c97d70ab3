// Package gorm provides GORM model definitions and repository
// implementations for the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FridgeModel represents the GORM model for fridges
type FridgeModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Kind      string    `gorm:"type:varchar(20);not null;default:'refrigerator'"`
	CreatedAt time.Time

	// Relationships
	Ingredients []IngredientModel `gorm:"foreignKey:FridgeID;constraint:OnDelete:CASCADE"`
}

// IngredientModel represents the GORM model for fridge ingredients
type IngredientModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	FridgeID     uuid.UUID `gorm:"type:char(36);not null;index"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Category     string    `gorm:"type:varchar(30);not null;index"`
	Quantity     float64   `gorm:"not null;default:1"`
	Unit         string    `gorm:"type:varchar(10);not null"`
	PurchaseDate time.Time
	ExpiryDate   time.Time `gorm:"index"`
	Barcode      string    `gorm:"type:varchar(64)"`
	Memo         string    `gorm:"type:text"`
	CreatedAt    time.Time

	// Relationships
	Fridge FridgeModel `gorm:"foreignKey:FridgeID"`
}

// ShoppingItemModel represents the GORM model for shopping list entries
type ShoppingItemModel struct {
	ID        uuid.UUID  `gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID  `gorm:"type:char(36);not null;index"`
	Name      string     `gorm:"type:varchar(100);not null"`
	Quantity  float64    `gorm:"not null;default:1"`
	Unit      string     `gorm:"type:varchar(10);not null"`
	Checked   bool       `gorm:"default:false;index"`
	RecipeID  *uuid.UUID `gorm:"type:char(36);index"`
	CreatedAt time.Time
}

// MealPlanModel represents the GORM model for planned meals.
// The (user_id, date, meal_type) key backs the upsert semantics.
type MealPlanModel struct {
	ID          uuid.UUID    `gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID    `gorm:"type:char(36);not null;uniqueIndex:idx_meal_plans_user_date_slot"`
	Date        time.Time    `gorm:"type:date;not null;uniqueIndex:idx_meal_plans_user_date_slot"`
	MealType    string       `gorm:"type:varchar(20);not null;uniqueIndex:idx_meal_plans_user_date_slot"`
	Title       string       `gorm:"type:varchar(255);not null"`
	Ingredients JSONDocument `gorm:"type:json"`
	Memo        string       `gorm:"type:text"`
	CreatedAt   time.Time
}

// SavedRecipeModel represents the GORM model for saved recipes
type SavedRecipeModel struct {
	ID        uuid.UUID    `gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID    `gorm:"type:char(36);not null;index"`
	Title     string       `gorm:"type:varchar(255);not null"`
	Source    string       `gorm:"type:varchar(20);not null"`
	SourceID  string       `gorm:"type:varchar(64)"`
	Content   JSONDocument `gorm:"type:json"`
	CreatedAt time.Time    `gorm:"index"`
}

// JSONDocument custom type for handling opaque JSON columns
type JSONDocument json.RawMessage

// Scan implements the sql.Scanner interface
func (j *JSONDocument) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		*j = append((*j)[0:0], v...)
		return nil
	case string:
		*j = JSONDocument(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into JSONDocument", value)
	}
}

// Value implements the driver.Valuer interface
func (j JSONDocument) Value() (driver.Value, error) {
	if len(j) == 0 {
		return "null", nil
	}
	return string(j), nil
}

// BeforeCreate hook for FridgeModel
func (f *FridgeModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for IngredientModel
func (i *IngredientModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for ShoppingItemModel
func (s *ShoppingItemModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for MealPlanModel
func (m *MealPlanModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for SavedRecipeModel
func (s *SavedRecipeModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (FridgeModel) TableName() string {
	return "fridges"
}

func (IngredientModel) TableName() string {
	return "ingredients"
}

func (ShoppingItemModel) TableName() string {
	return "shopping_items"
}

func (MealPlanModel) TableName() string {
	return "meal_plans"
}

func (SavedRecipeModel) TableName() string {
	return "saved_recipes"
}
