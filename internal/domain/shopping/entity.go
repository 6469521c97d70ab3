// Package shopping contains the shopping list domain.
package shopping

import (
	"errors"
	"time"

	"github.com/fridgewise/v1/internal/domain/inventory"
	"github.com/google/uuid"
)

// Domain errors for shopping list operations
var (
	ErrNameRequired = errors.New("shopping item name is required")
	ErrItemNotFound = errors.New("shopping item not found")
)

// Item is one entry of a user's shopping list. Items are created
// manually or from a recipe's missing ingredients, toggled checked on
// purchase, and purged in bulk once checked.
type Item struct {
	id        uuid.UUID
	userID    uuid.UUID
	name      string
	quantity  float64
	unit      inventory.Unit
	checked   bool
	recipeID  *uuid.UUID
	createdAt time.Time
}

// NewItem creates a shopping item with validation
func NewItem(userID uuid.UUID, name string, quantity float64, unit inventory.Unit, recipeID *uuid.UUID) (*Item, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if quantity <= 0 {
		quantity = 1
	}
	if !unit.IsValid() {
		unit = inventory.UnitPiece
	}

	return &Item{
		id:        uuid.New(),
		userID:    userID,
		name:      name,
		quantity:  quantity,
		unit:      unit,
		recipeID:  recipeID,
		createdAt: time.Now(),
	}, nil
}

// Reconstruct rebuilds an Item from persisted state
func Reconstruct(id, userID uuid.UUID, name string, quantity float64, unit inventory.Unit, checked bool, recipeID *uuid.UUID, createdAt time.Time) *Item {
	return &Item{
		id:        id,
		userID:    userID,
		name:      name,
		quantity:  quantity,
		unit:      unit,
		checked:   checked,
		recipeID:  recipeID,
		createdAt: createdAt,
	}
}

func (i *Item) ID() uuid.UUID        { return i.id }
func (i *Item) UserID() uuid.UUID    { return i.userID }
func (i *Item) Name() string         { return i.name }
func (i *Item) Quantity() float64    { return i.quantity }
func (i *Item) Unit() inventory.Unit { return i.unit }
func (i *Item) Checked() bool        { return i.checked }
func (i *Item) RecipeID() *uuid.UUID { return i.recipeID }
func (i *Item) CreatedAt() time.Time { return i.createdAt }

// SetChecked marks the item purchased or not
func (i *Item) SetChecked(checked bool) {
	i.checked = checked
}
