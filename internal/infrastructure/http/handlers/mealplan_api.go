package handlers

import (
	"net/http"
	"time"

	"github.com/fridgewise/v1/internal/application/mealplan"
	domain "github.com/fridgewise/v1/internal/domain/mealplan"
	"github.com/fridgewise/v1/internal/infrastructure/http/middleware"
	apperrors "github.com/fridgewise/v1/pkg/errors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// MealPlanHandlers handles meal calendar requests
type MealPlanHandlers struct {
	service *mealplan.Service
	logger  *zap.Logger
}

// NewMealPlanHandlers creates the meal plan handlers
func NewMealPlanHandlers(service *mealplan.Service, logger *zap.Logger) *MealPlanHandlers {
	return &MealPlanHandlers{service: service, logger: logger}
}

type planMealRequest struct {
	Date        string                  `json:"date" validate:"required"`
	MealType    string                  `json:"mealType" validate:"required,oneof=breakfast lunch dinner snack"`
	Title       string                  `json:"title" validate:"required,max=255"`
	Ingredients []domain.IngredientHint `json:"ingredients" validate:"omitempty,max=30"`
	Memo        string                  `json:"memo" validate:"omitempty,max=500"`
}

type mealPlanResponse struct {
	ID          uuid.UUID               `json:"id"`
	Date        string                  `json:"date"`
	MealType    string                  `json:"mealType"`
	Title       string                  `json:"title"`
	Ingredients []domain.IngredientHint `json:"ingredients"`
	Memo        string                  `json:"memo,omitempty"`
	CreatedAt   time.Time               `json:"createdAt"`
}

func toMealPlanResponse(p *domain.MealPlan) mealPlanResponse {
	return mealPlanResponse{
		ID:          p.ID(),
		Date:        p.Date().Format(dateLayout),
		MealType:    string(p.Slot()),
		Title:       p.Title(),
		Ingredients: p.Ingredients(),
		Memo:        p.Memo(),
		CreatedAt:   p.CreatedAt(),
	}
}

// PlanMeal handles PUT /api/v1/planner
func (h *MealPlanHandlers) PlanMeal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	var req planMealRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		writeError(w, h.logger, apperrors.NewValidationError("날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)"))
		return
	}

	plan, err := h.service.PlanMeal(r.Context(), mealplan.PlanMealCommand{
		UserID:      userID,
		Date:        date,
		Slot:        domain.MealSlot(req.MealType),
		Title:       req.Title,
		Ingredients: req.Ingredients,
		Memo:        req.Memo,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, toMealPlanResponse(plan))
}

// Week handles GET /api/v1/planner?start=YYYY-MM-DD
func (h *MealPlanHandlers) Week(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	start := time.Now()
	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			writeError(w, h.logger, apperrors.NewValidationError("날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)"))
			return
		}
		start = parsed
	}

	plans, err := h.service.WeekOf(r.Context(), userID, start)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	out := make([]mealPlanResponse, len(plans))
	for i, plan := range plans {
		out[i] = toMealPlanResponse(plan)
	}
	writeJSON(w, h.logger, http.StatusOK, out)
}

// DeleteMeal handles DELETE /api/v1/planner/{id}
func (h *MealPlanHandlers) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	planID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("Invalid plan id"))
		return
	}

	if err := h.service.DeleteMeal(r.Context(), userID, planID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
