package handlers

import (
	"net/http"
	"time"

	"github.com/fridgewise/v1/internal/application/shopping"
	domain "github.com/fridgewise/v1/internal/domain/shopping"
	"github.com/fridgewise/v1/internal/infrastructure/http/middleware"
	apperrors "github.com/fridgewise/v1/pkg/errors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ShoppingHandlers handles shopping list requests
type ShoppingHandlers struct {
	service *shopping.Service
	logger  *zap.Logger
}

// NewShoppingHandlers creates the shopping handlers
func NewShoppingHandlers(service *shopping.Service, logger *zap.Logger) *ShoppingHandlers {
	return &ShoppingHandlers{service: service, logger: logger}
}

type shoppingItemRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit" validate:"omitempty,max=10"`
}

type shoppingBulkRequest struct {
	RecipeID *uuid.UUID            `json:"recipeId"`
	Items    []shoppingItemRequest `json:"items" validate:"required,min=1,max=50,dive"`
}

type shoppingItemResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Quantity  float64    `json:"quantity"`
	Unit      string     `json:"unit"`
	Checked   bool       `json:"checked"`
	RecipeID  *uuid.UUID `json:"recipeId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toShoppingItemResponse(i *domain.Item) shoppingItemResponse {
	return shoppingItemResponse{
		ID:        i.ID(),
		Name:      i.Name(),
		Quantity:  i.Quantity(),
		Unit:      string(i.Unit()),
		Checked:   i.Checked(),
		RecipeID:  i.RecipeID(),
		CreatedAt: i.CreatedAt(),
	}
}

// AddItem handles POST /api/v1/shopping
func (h *ShoppingHandlers) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	var req shoppingItemRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	item, err := h.service.AddItem(r.Context(), shopping.AddItemCommand{
		UserID:   userID,
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, toShoppingItemResponse(item))
}

type bulkAddResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

// AddBulk handles POST /api/v1/shopping/add, typically fed by a
// recipe's missing ingredients
func (h *ShoppingHandlers) AddBulk(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	var req shoppingBulkRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	lines := make([]shopping.AddItemCommand, len(req.Items))
	for i, item := range req.Items {
		lines[i] = shopping.AddItemCommand{
			Name:     item.Name,
			Quantity: item.Quantity,
			Unit:     item.Unit,
		}
	}

	items, err := h.service.AddMissingIngredients(r.Context(), userID, req.RecipeID, lines)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, bulkAddResponse{Success: true, Count: len(items)})
}

// List handles GET /api/v1/shopping
func (h *ShoppingHandlers) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	items, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	out := make([]shoppingItemResponse, len(items))
	for i, item := range items {
		out[i] = toShoppingItemResponse(item)
	}
	writeJSON(w, h.logger, http.StatusOK, out)
}

type setCheckedRequest struct {
	Checked bool `json:"checked"`
}

// SetChecked handles PATCH /api/v1/shopping/{id}/checked
func (h *ShoppingHandlers) SetChecked(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("Invalid item id"))
		return
	}

	var req setCheckedRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	if err := h.service.SetChecked(r.Context(), userID, itemID, req.Checked); err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteItem handles DELETE /api/v1/shopping/{id}
func (h *ShoppingHandlers) DeleteItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("Invalid item id"))
		return
	}

	if err := h.service.DeleteItem(r.Context(), userID, itemID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearChecked handles DELETE /api/v1/shopping/checked
func (h *ShoppingHandlers) ClearChecked(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	count, err := h.service.ClearChecked(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, map[string]int64{"deleted": count})
}
