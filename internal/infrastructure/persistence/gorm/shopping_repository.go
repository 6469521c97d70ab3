package gorm

import (
	"context"

	"github.com/fridgewise/v1/internal/domain/shopping"
	"github.com/fridgewise/v1/internal/ports/outbound"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShoppingRepository implements the shopping list repository interface using GORM
type ShoppingRepository struct {
	db *gorm.DB
}

// NewShoppingRepository creates a new shopping list repository
func NewShoppingRepository(db *gorm.DB) outbound.ShoppingRepository {
	return &ShoppingRepository{db: db}
}

// Create creates a new shopping item
func (r *ShoppingRepository) Create(ctx context.Context, item *shopping.Item) error {
	model := ShoppingItemToModel(item)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// BulkCreate creates a batch of shopping items in one statement
func (r *ShoppingRepository) BulkCreate(ctx context.Context, items []*shopping.Item) error {
	if len(items) == 0 {
		return nil
	}

	models := make([]*ShoppingItemModel, len(items))
	for i, item := range items {
		models[i] = ShoppingItemToModel(item)
	}

	result := r.db.WithContext(ctx).Create(models)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete deletes a shopping item the user owns
func (r *ShoppingRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&ShoppingItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shopping.ErrItemNotFound
	}
	return nil
}

// FindByUserID finds the user's shopping list, unchecked items first
func (r *ShoppingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*shopping.Item, error) {
	var models []ShoppingItemModel

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("checked ASC, created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*shopping.Item, len(models))
	for i := range models {
		items[i] = ModelToShoppingItem(&models[i])
	}
	return items, nil
}

// SetChecked toggles the purchased flag on one item
func (r *ShoppingRepository) SetChecked(ctx context.Context, userID, id uuid.UUID, checked bool) error {
	result := r.db.WithContext(ctx).
		Model(&ShoppingItemModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("checked", checked)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shopping.ErrItemNotFound
	}
	return nil
}

// DeleteChecked removes every checked item of the user
func (r *ShoppingRepository) DeleteChecked(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND checked = ?", userID, true).
		Delete(&ShoppingItemModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
