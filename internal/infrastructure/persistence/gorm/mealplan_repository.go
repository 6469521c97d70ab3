package gorm

import (
	"context"
	"time"

	"github.com/fridgewise/v1/internal/domain/mealplan"
	"github.com/fridgewise/v1/internal/ports/outbound"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MealPlanRepository implements the meal plan repository interface using GORM
type MealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository creates a new meal plan repository
func NewMealPlanRepository(db *gorm.DB) outbound.MealPlanRepository {
	return &MealPlanRepository{db: db}
}

// Upsert writes the plan, replacing any existing entry for the same
// (user, date, slot)
func (r *MealPlanRepository) Upsert(ctx context.Context, plan *mealplan.MealPlan) error {
	model, err := MealPlanToModel(plan)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "date"},
			{Name: "meal_type"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"title", "ingredients", "memo"}),
	}).Create(model)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete deletes a planned meal the user owns
func (r *MealPlanRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&MealPlanModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return mealplan.ErrMealPlanNotFound
	}
	return nil
}

// FindByDateRange finds the user's plans with start <= date < end
func (r *MealPlanRepository) FindByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*mealplan.MealPlan, error) {
	var models []MealPlanModel

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date ASC, meal_type ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	plans := make([]*mealplan.MealPlan, len(models))
	for i := range models {
		plan, err := ModelToMealPlan(&models[i])
		if err != nil {
			return nil, err
		}
		plans[i] = plan
	}
	return plans, nil
}
