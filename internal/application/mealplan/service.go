// Package mealplan provides the application layer for the weekly meal
// calendar.
package mealplan

import (
	"context"
	"time"

	domain "github.com/fridgewise/v1/internal/domain/mealplan"
	"github.com/fridgewise/v1/internal/ports/outbound"
	apperrors "github.com/fridgewise/v1/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service orchestrates meal plan use cases
type Service struct {
	plans  outbound.MealPlanRepository
	logger *zap.Logger
}

// NewService creates the meal plan service
func NewService(plans outbound.MealPlanRepository, logger *zap.Logger) *Service {
	return &Service{
		plans:  plans,
		logger: logger.Named("mealplan"),
	}
}

// PlanMealCommand contains data for planning one meal
type PlanMealCommand struct {
	UserID      uuid.UUID
	Date        time.Time
	Slot        domain.MealSlot
	Title       string
	Ingredients []domain.IngredientHint
	Memo        string
}

// PlanMeal writes a meal into a calendar slot, replacing whatever
// occupied the same (date, slot)
func (s *Service) PlanMeal(ctx context.Context, cmd PlanMealCommand) (*domain.MealPlan, error) {
	plan, err := domain.NewMealPlan(cmd.UserID, cmd.Date, cmd.Slot, cmd.Title, cmd.Ingredients, cmd.Memo)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.plans.Upsert(ctx, plan); err != nil {
		return nil, apperrors.NewDatabaseError("upsert meal plan", err)
	}

	s.logger.Info("meal planned",
		zap.String("user_id", cmd.UserID.String()),
		zap.String("date", plan.Date().Format("2006-01-02")),
		zap.String("slot", string(plan.Slot())),
	)
	return plan, nil
}

// WeekOf returns the plans for the seven days starting at start.
// Start is truncated to midnight in its own location.
func (s *Service) WeekOf(ctx context.Context, userID uuid.UUID, start time.Time) ([]*domain.MealPlan, error) {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	end := day.AddDate(0, 0, 7)

	plans, err := s.plans.FindByDateRange(ctx, userID, day, end)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list meal plans", err)
	}
	return plans, nil
}

// Range returns the plans between start and end inclusive of start,
// exclusive of end
func (s *Service) Range(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*domain.MealPlan, error) {
	if !end.After(start) {
		return nil, apperrors.NewValidationError("end must be after start")
	}

	plans, err := s.plans.FindByDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list meal plans", err)
	}
	return plans, nil
}

// DeleteMeal removes one planned meal
func (s *Service) DeleteMeal(ctx context.Context, userID, planID uuid.UUID) error {
	if err := s.plans.Delete(ctx, userID, planID); err != nil {
		if err == domain.ErrMealPlanNotFound {
			return apperrors.NewAppError(apperrors.CodeMealPlanNotFound, "Meal plan not found", "")
		}
		return apperrors.NewDatabaseError("delete meal plan", err)
	}
	return nil
}
