// Package mealplan contains the weekly meal calendar domain.
package mealplan

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// MealSlot is the meal position within a day
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnack     MealSlot = "snack"
)

// IsValid reports whether the slot is one of the closed set
func (s MealSlot) IsValid() bool {
	switch s {
	case SlotBreakfast, SlotLunch, SlotDinner, SlotSnack:
		return true
	}
	return false
}

// Domain errors for meal plan operations
var (
	ErrTitleRequired    = errors.New("meal plan title is required")
	ErrInvalidSlot      = errors.New("meal slot must be breakfast, lunch, dinner, or snack")
	ErrInvalidDate      = errors.New("meal plan date must be a valid calendar date")
	ErrMealPlanNotFound = errors.New("meal plan not found")
)

// IngredientHint is a (name, quantity) pair attached to a plan entry
type IngredientHint struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// MealPlan is one planned meal. At most one exists per
// (user, date, slot); writes upsert on that key.
type MealPlan struct {
	id          uuid.UUID
	userID      uuid.UUID
	date        time.Time // calendar date, midnight
	slot        MealSlot
	title       string
	ingredients []IngredientHint
	memo        string
	createdAt   time.Time
}

// NewMealPlan creates a meal plan with validation
func NewMealPlan(userID uuid.UUID, date time.Time, slot MealSlot, title string, ingredients []IngredientHint, memo string) (*MealPlan, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}
	if !slot.IsValid() {
		return nil, ErrInvalidSlot
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}

	return &MealPlan{
		id:          uuid.New(),
		userID:      userID,
		date:        truncateToDay(date),
		slot:        slot,
		title:       title,
		ingredients: ingredients,
		memo:        memo,
		createdAt:   time.Now(),
	}, nil
}

// Reconstruct rebuilds a MealPlan from persisted state
func Reconstruct(id, userID uuid.UUID, date time.Time, slot MealSlot, title string, ingredients []IngredientHint, memo string, createdAt time.Time) *MealPlan {
	return &MealPlan{
		id:          id,
		userID:      userID,
		date:        date,
		slot:        slot,
		title:       title,
		ingredients: ingredients,
		memo:        memo,
		createdAt:   createdAt,
	}
}

func (m *MealPlan) ID() uuid.UUID                 { return m.id }
func (m *MealPlan) UserID() uuid.UUID             { return m.userID }
func (m *MealPlan) Date() time.Time               { return m.date }
func (m *MealPlan) Slot() MealSlot                { return m.slot }
func (m *MealPlan) Title() string                 { return m.title }
func (m *MealPlan) Ingredients() []IngredientHint { return m.ingredients }
func (m *MealPlan) Memo() string                  { return m.memo }
func (m *MealPlan) CreatedAt() time.Time          { return m.createdAt }

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
