// Package inventory provides the application layer for fridge and
// ingredient management.
package inventory

import (
	"context"
	"time"

	domain "github.com/fridgewise/v1/internal/domain/inventory"
	"github.com/fridgewise/v1/internal/ports/outbound"
	apperrors "github.com/fridgewise/v1/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service orchestrates fridge and ingredient use cases
type Service struct {
	fridges     outbound.FridgeRepository
	ingredients outbound.IngredientRepository
	logger      *zap.Logger
}

// NewService creates the inventory service
func NewService(fridges outbound.FridgeRepository, ingredients outbound.IngredientRepository, logger *zap.Logger) *Service {
	return &Service{
		fridges:     fridges,
		ingredients: ingredients,
		logger:      logger.Named("inventory"),
	}
}

// CreateFridgeCommand contains data for creating a fridge
type CreateFridgeCommand struct {
	UserID uuid.UUID
	Name   string
	Kind   domain.FridgeKind
}

// CreateFridge adds a new fridge for the user
func (s *Service) CreateFridge(ctx context.Context, cmd CreateFridgeCommand) (*domain.Fridge, error) {
	fridge, err := domain.NewFridge(cmd.UserID, cmd.Name, cmd.Kind)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.fridges.Create(ctx, fridge); err != nil {
		return nil, apperrors.NewDatabaseError("create fridge", err)
	}

	s.logger.Info("fridge created",
		zap.String("fridge_id", fridge.ID().String()),
		zap.String("user_id", cmd.UserID.String()),
	)
	return fridge, nil
}

// ListFridges returns all fridges owned by the user
func (s *Service) ListFridges(ctx context.Context, userID uuid.UUID) ([]*domain.Fridge, error) {
	fridges, err := s.fridges.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list fridges", err)
	}
	return fridges, nil
}

// DeleteFridge removes a fridge the user owns
func (s *Service) DeleteFridge(ctx context.Context, userID, fridgeID uuid.UUID) error {
	if err := s.fridges.Delete(ctx, userID, fridgeID); err != nil {
		if err == domain.ErrFridgeNotFound {
			return apperrors.NewAppError(apperrors.CodeFridgeNotFound, "Fridge not found", "")
		}
		return apperrors.NewDatabaseError("delete fridge", err)
	}
	return nil
}

// AddIngredientCommand contains data for adding an ingredient
type AddIngredientCommand struct {
	UserID       uuid.UUID
	FridgeID     uuid.UUID
	Name         string
	Category     string
	Quantity     float64
	Unit         string
	PurchaseDate time.Time
	ExpiryDate   time.Time
	Barcode      string
	Memo         string
}

// AddIngredient stores a new ingredient after confirming fridge ownership
func (s *Service) AddIngredient(ctx context.Context, cmd AddIngredientCommand) (*domain.Ingredient, error) {
	if _, err := s.fridges.FindByID(ctx, cmd.UserID, cmd.FridgeID); err != nil {
		if err == domain.ErrFridgeNotFound {
			return nil, apperrors.NewAppError(apperrors.CodeFridgeNotFound, "Fridge not found", "")
		}
		return nil, apperrors.NewDatabaseError("find fridge", err)
	}

	ingredient, err := domain.NewIngredient(
		cmd.FridgeID,
		cmd.Name,
		domain.Category(cmd.Category),
		cmd.Quantity,
		domain.Unit(cmd.Unit),
		cmd.PurchaseDate,
		cmd.ExpiryDate,
	)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if cmd.Barcode != "" {
		ingredient.SetBarcode(cmd.Barcode)
	}
	if cmd.Memo != "" {
		ingredient.SetMemo(cmd.Memo)
	}

	if err := s.ingredients.Create(ctx, ingredient); err != nil {
		return nil, apperrors.NewDatabaseError("create ingredient", err)
	}

	s.logger.Info("ingredient added",
		zap.String("ingredient_id", ingredient.ID().String()),
		zap.String("fridge_id", cmd.FridgeID.String()),
	)
	return ingredient, nil
}

// UpdateIngredientCommand contains data for editing an ingredient
type UpdateIngredientCommand struct {
	UserID       uuid.UUID
	IngredientID uuid.UUID
	Name         string
	Category     string
	Quantity     float64
	Unit         string
	ExpiryDate   time.Time
	Memo         *string
}

// UpdateIngredient applies a user edit to an owned ingredient
func (s *Service) UpdateIngredient(ctx context.Context, cmd UpdateIngredientCommand) (*domain.Ingredient, error) {
	ingredient, err := s.ingredients.FindByID(ctx, cmd.UserID, cmd.IngredientID)
	if err != nil {
		if err == domain.ErrIngredientNotFound {
			return nil, apperrors.NewAppError(apperrors.CodeIngredientNotFound, "Ingredient not found", "")
		}
		return nil, apperrors.NewDatabaseError("find ingredient", err)
	}

	if err := ingredient.UpdateDetails(
		cmd.Name,
		domain.Category(cmd.Category),
		cmd.Quantity,
		domain.Unit(cmd.Unit),
		cmd.ExpiryDate,
	); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if cmd.Memo != nil {
		ingredient.SetMemo(*cmd.Memo)
	}

	if err := s.ingredients.Update(ctx, ingredient); err != nil {
		return nil, apperrors.NewDatabaseError("update ingredient", err)
	}
	return ingredient, nil
}

// DeleteIngredient removes an ingredient the user owns
func (s *Service) DeleteIngredient(ctx context.Context, userID, ingredientID uuid.UUID) error {
	if err := s.ingredients.Delete(ctx, userID, ingredientID); err != nil {
		if err == domain.ErrIngredientNotFound {
			return apperrors.NewAppError(apperrors.CodeIngredientNotFound, "Ingredient not found", "")
		}
		return apperrors.NewDatabaseError("delete ingredient", err)
	}
	return nil
}

// ListIngredients returns the user's ingredients, most urgent first.
// When fridgeID is non-nil only that fridge's contents are returned.
func (s *Service) ListIngredients(ctx context.Context, userID uuid.UUID, fridgeID *uuid.UUID) ([]*domain.Ingredient, error) {
	var (
		ingredients []*domain.Ingredient
		err         error
	)
	if fridgeID != nil {
		ingredients, err = s.ingredients.FindByFridgeID(ctx, userID, *fridgeID)
	} else {
		ingredients, err = s.ingredients.FindByUserID(ctx, userID)
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError("list ingredients", err)
	}

	domain.SortByExpiry(ingredients, time.Now())
	return ingredients, nil
}

// PurgeExpired bulk-deletes every ingredient already past its expiry
// date and returns how many were removed
func (s *Service) PurgeExpired(ctx context.Context, userID uuid.UUID) (int64, error) {
	now := time.Now()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	count, err := s.ingredients.DeleteExpired(ctx, userID, cutoff)
	if err != nil {
		return 0, apperrors.NewDatabaseError("purge expired ingredients", err)
	}

	s.logger.Info("expired ingredients purged",
		zap.String("user_id", userID.String()),
		zap.Int64("count", count),
	)
	return count, nil
}
