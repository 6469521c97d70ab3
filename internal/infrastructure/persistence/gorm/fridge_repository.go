package gorm

import (
	"context"
	"errors"

	"github.com/fridgewise/v1/internal/domain/inventory"
	"github.com/fridgewise/v1/internal/ports/outbound"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FridgeRepository implements the fridge repository interface using GORM
type FridgeRepository struct {
	db *gorm.DB
}

// NewFridgeRepository creates a new fridge repository
func NewFridgeRepository(db *gorm.DB) outbound.FridgeRepository {
	return &FridgeRepository{db: db}
}

// Create creates a new fridge
func (r *FridgeRepository) Create(ctx context.Context, fridge *inventory.Fridge) error {
	model := FridgeToModel(fridge)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete deletes a fridge owned by the user
func (r *FridgeRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&FridgeModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return inventory.ErrFridgeNotFound
	}
	return nil
}

// FindByID finds a fridge by ID, scoped to the owning user
func (r *FridgeRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*inventory.Fridge, error) {
	var model FridgeModel

	result := r.db.WithContext(ctx).
		First(&model, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, inventory.ErrFridgeNotFound
		}
		return nil, result.Error
	}

	return ModelToFridge(&model), nil
}

// FindByUserID finds all fridges owned by the user
func (r *FridgeRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*inventory.Fridge, error) {
	var models []FridgeModel

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	fridges := make([]*inventory.Fridge, len(models))
	for i := range models {
		fridges[i] = ModelToFridge(&models[i])
	}
	return fridges, nil
}

// Rename updates the fridge display name
func (r *FridgeRepository) Rename(ctx context.Context, userID, id uuid.UUID, name string) error {
	result := r.db.WithContext(ctx).
		Model(&FridgeModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return inventory.ErrFridgeNotFound
	}
	return nil
}
