package handlers

import (
	"net/http"
	"time"

	"github.com/fridgewise/v1/internal/application/recipes"
	domain "github.com/fridgewise/v1/internal/domain/recipe"
	"github.com/fridgewise/v1/internal/infrastructure/http/middleware"
	apperrors "github.com/fridgewise/v1/pkg/errors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecipesHandlers handles saved recipe requests
type RecipesHandlers struct {
	service *recipes.Service
	logger  *zap.Logger
}

// NewRecipesHandlers creates the saved recipe handlers
func NewRecipesHandlers(service *recipes.Service, logger *zap.Logger) *RecipesHandlers {
	return &RecipesHandlers{service: service, logger: logger}
}

type saveRecipeRequest struct {
	Title    string              `json:"title" validate:"required,max=255"`
	Source   string              `json:"source" validate:"required,oneof=api ai manual"`
	SourceID string              `json:"sourceId" validate:"omitempty,max=64"`
	Content  domain.SavedContent `json:"content"`
}

type savedRecipeResponse struct {
	ID        uuid.UUID           `json:"id"`
	Title     string              `json:"title"`
	Source    string              `json:"source"`
	SourceID  string              `json:"sourceId,omitempty"`
	Content   domain.SavedContent `json:"content"`
	CreatedAt time.Time           `json:"createdAt"`
}

func toSavedRecipeResponse(r *domain.SavedRecipe) savedRecipeResponse {
	return savedRecipeResponse{
		ID:        r.ID(),
		Title:     r.Title(),
		Source:    string(r.Source()),
		SourceID:  r.SourceID(),
		Content:   r.Content(),
		CreatedAt: r.CreatedAt(),
	}
}

// Save handles POST /api/v1/recipes/saved
func (h *RecipesHandlers) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	var req saveRecipeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	saved, err := h.service.Save(r.Context(), recipes.SaveCommand{
		UserID:   userID,
		Title:    req.Title,
		Source:   domain.SavedSource(req.Source),
		SourceID: req.SourceID,
		Content:  req.Content,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, toSavedRecipeResponse(saved))
}

// List handles GET /api/v1/recipes/saved
func (h *RecipesHandlers) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	saved, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	out := make([]savedRecipeResponse, len(saved))
	for i, s := range saved {
		out[i] = toSavedRecipeResponse(s)
	}
	writeJSON(w, h.logger, http.StatusOK, out)
}

// Delete handles DELETE /api/v1/recipes/saved/{id}
func (h *RecipesHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	recipeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("Invalid recipe id"))
		return
	}

	if err := h.service.Delete(r.Context(), userID, recipeID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
