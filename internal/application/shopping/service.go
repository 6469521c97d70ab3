// Package shopping provides the application layer for shopping lists.
package shopping

import (
	"context"

	"github.com/fridgewise/v1/internal/domain/inventory"
	domain "github.com/fridgewise/v1/internal/domain/shopping"
	"github.com/fridgewise/v1/internal/ports/outbound"
	apperrors "github.com/fridgewise/v1/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service orchestrates shopping list use cases
type Service struct {
	items  outbound.ShoppingRepository
	logger *zap.Logger
}

// NewService creates the shopping service
func NewService(items outbound.ShoppingRepository, logger *zap.Logger) *Service {
	return &Service{
		items:  items,
		logger: logger.Named("shopping"),
	}
}

// AddItemCommand contains data for adding one shopping item
type AddItemCommand struct {
	UserID   uuid.UUID
	Name     string
	Quantity float64
	Unit     string
	RecipeID *uuid.UUID
}

// AddItem appends one item to the user's shopping list
func (s *Service) AddItem(ctx context.Context, cmd AddItemCommand) (*domain.Item, error) {
	item, err := domain.NewItem(cmd.UserID, cmd.Name, cmd.Quantity, inventory.Unit(cmd.Unit), cmd.RecipeID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, apperrors.NewDatabaseError("create shopping item", err)
	}
	return item, nil
}

// AddMissingIngredients bulk-adds a recipe's missing ingredient lines.
// Lines with empty names are skipped rather than failing the batch.
func (s *Service) AddMissingIngredients(ctx context.Context, userID uuid.UUID, recipeID *uuid.UUID, lines []AddItemCommand) ([]*domain.Item, error) {
	items := make([]*domain.Item, 0, len(lines))
	for _, line := range lines {
		if line.Name == "" {
			continue
		}
		item, err := domain.NewItem(userID, line.Name, line.Quantity, inventory.Unit(line.Unit), recipeID)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, apperrors.NewValidationError("추가할 재료가 없습니다")
	}

	if err := s.items.BulkCreate(ctx, items); err != nil {
		return nil, apperrors.NewDatabaseError("bulk create shopping items", err)
	}

	s.logger.Info("shopping items added from recipe",
		zap.String("user_id", userID.String()),
		zap.Int("count", len(items)),
	)
	return items, nil
}

// List returns the user's shopping list
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*domain.Item, error) {
	items, err := s.items.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list shopping items", err)
	}
	return items, nil
}

// SetChecked toggles the purchased flag on one item
func (s *Service) SetChecked(ctx context.Context, userID, itemID uuid.UUID, checked bool) error {
	if err := s.items.SetChecked(ctx, userID, itemID, checked); err != nil {
		if err == domain.ErrItemNotFound {
			return apperrors.NewNotFoundError("shopping item")
		}
		return apperrors.NewDatabaseError("update shopping item", err)
	}
	return nil
}

// DeleteItem removes one item from the list
func (s *Service) DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error {
	if err := s.items.Delete(ctx, userID, itemID); err != nil {
		if err == domain.ErrItemNotFound {
			return apperrors.NewNotFoundError("shopping item")
		}
		return apperrors.NewDatabaseError("delete shopping item", err)
	}
	return nil
}

// ClearChecked removes every checked item and returns how many were removed
func (s *Service) ClearChecked(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.items.DeleteChecked(ctx, userID)
	if err != nil {
		return 0, apperrors.NewDatabaseError("clear checked shopping items", err)
	}
	return count, nil
}
