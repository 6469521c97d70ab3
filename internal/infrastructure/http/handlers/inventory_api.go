package handlers

import (
	"net/http"
	"time"

	"github.com/fridgewise/v1/internal/application/inventory"
	domain "github.com/fridgewise/v1/internal/domain/inventory"
	"github.com/fridgewise/v1/internal/infrastructure/http/middleware"
	"github.com/fridgewise/v1/internal/ports/outbound"
	apperrors "github.com/fridgewise/v1/pkg/errors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InventoryHandlers handles fridge and ingredient requests
type InventoryHandlers struct {
	service  *inventory.Service
	barcodes outbound.BarcodeService
	logger   *zap.Logger
}

// NewInventoryHandlers creates the inventory handlers
func NewInventoryHandlers(service *inventory.Service, barcodes outbound.BarcodeService, logger *zap.Logger) *InventoryHandlers {
	return &InventoryHandlers{
		service:  service,
		barcodes: barcodes,
		logger:   logger,
	}
}

type fridgeRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Kind string `json:"kind" validate:"omitempty,oneof=refrigerator freezer"`
}

type fridgeResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
}

func toFridgeResponse(f *domain.Fridge) fridgeResponse {
	return fridgeResponse{
		ID:        f.ID(),
		Name:      f.Name(),
		Kind:      string(f.Kind()),
		CreatedAt: f.CreatedAt(),
	}
}

// CreateFridge handles POST /api/v1/fridges
func (h *InventoryHandlers) CreateFridge(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	var req fridgeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	kind := domain.FridgeKind(req.Kind)
	if req.Kind == "" {
		kind = domain.FridgeKindRefrigerator
	}

	fridge, err := h.service.CreateFridge(r.Context(), inventory.CreateFridgeCommand{
		UserID: userID,
		Name:   req.Name,
		Kind:   kind,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, toFridgeResponse(fridge))
}

// ListFridges handles GET /api/v1/fridges
func (h *InventoryHandlers) ListFridges(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	fridges, err := h.service.ListFridges(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	out := make([]fridgeResponse, len(fridges))
	for i, f := range fridges {
		out[i] = toFridgeResponse(f)
	}
	writeJSON(w, h.logger, http.StatusOK, out)
}

// DeleteFridge handles DELETE /api/v1/fridges/{id}
func (h *InventoryHandlers) DeleteFridge(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	fridgeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("Invalid fridge id"))
		return
	}

	if err := h.service.DeleteFridge(r.Context(), userID, fridgeID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type ingredientRequest struct {
	FridgeID     uuid.UUID `json:"fridgeId" validate:"required"`
	Name         string    `json:"name" validate:"required,max=100"`
	Category     string    `json:"category" validate:"required"`
	Quantity     float64   `json:"quantity" validate:"gte=0"`
	Unit         string    `json:"unit" validate:"required"`
	PurchaseDate time.Time `json:"purchaseDate"`
	ExpiryDate   time.Time `json:"expiryDate" validate:"required"`
	Barcode      string    `json:"barcode" validate:"omitempty,max=64"`
	Memo         string    `json:"memo" validate:"omitempty,max=500"`
}

type ingredientUpdateRequest struct {
	Name       string    `json:"name" validate:"required,max=100"`
	Category   string    `json:"category" validate:"required"`
	Quantity   float64   `json:"quantity" validate:"gte=0"`
	Unit       string    `json:"unit" validate:"required"`
	ExpiryDate time.Time `json:"expiryDate" validate:"required"`
	Memo       *string   `json:"memo" validate:"omitempty,max=500"`
}

type ingredientResponse struct {
	ID           uuid.UUID `json:"id"`
	FridgeID     uuid.UUID `json:"fridgeId"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	PurchaseDate time.Time `json:"purchaseDate"`
	ExpiryDate   time.Time `json:"expiryDate"`
	DDay         int       `json:"dday"`
	ExpiryBand   string    `json:"expiryBand"`
	Barcode      string    `json:"barcode,omitempty"`
	Memo         string    `json:"memo,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toIngredientResponse(i *domain.Ingredient, now time.Time) ingredientResponse {
	dday := i.DaysUntilExpiry(now)
	return ingredientResponse{
		ID:           i.ID(),
		FridgeID:     i.FridgeID(),
		Name:         i.Name(),
		Category:     string(i.Category()),
		Quantity:     i.Quantity(),
		Unit:         string(i.Unit()),
		PurchaseDate: i.PurchaseDate(),
		ExpiryDate:   i.ExpiryDate(),
		DDay:         dday,
		ExpiryBand:   string(domain.Classify(dday)),
		Barcode:      i.Barcode(),
		Memo:         i.Memo(),
		CreatedAt:    i.CreatedAt(),
	}
}

// AddIngredient handles POST /api/v1/ingredients
func (h *InventoryHandlers) AddIngredient(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	var req ingredientRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	if req.PurchaseDate.IsZero() {
		req.PurchaseDate = time.Now()
	}

	ingredient, err := h.service.AddIngredient(r.Context(), inventory.AddIngredientCommand{
		UserID:       userID,
		FridgeID:     req.FridgeID,
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		PurchaseDate: req.PurchaseDate,
		ExpiryDate:   req.ExpiryDate,
		Barcode:      req.Barcode,
		Memo:         req.Memo,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, toIngredientResponse(ingredient, time.Now()))
}

// ListIngredients handles GET /api/v1/ingredients?fridgeId=
func (h *InventoryHandlers) ListIngredients(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	var fridgeID *uuid.UUID
	if raw := r.URL.Query().Get("fridgeId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, h.logger, apperrors.NewBadRequestError("Invalid fridge id"))
			return
		}
		fridgeID = &id
	}

	ingredients, err := h.service.ListIngredients(r.Context(), userID, fridgeID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	now := time.Now()
	out := make([]ingredientResponse, len(ingredients))
	for i, ing := range ingredients {
		out[i] = toIngredientResponse(ing, now)
	}
	writeJSON(w, h.logger, http.StatusOK, out)
}

// UpdateIngredient handles PUT /api/v1/ingredients/{id}
func (h *InventoryHandlers) UpdateIngredient(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	ingredientID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("Invalid ingredient id"))
		return
	}

	var req ingredientUpdateRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	ingredient, err := h.service.UpdateIngredient(r.Context(), inventory.UpdateIngredientCommand{
		UserID:       userID,
		IngredientID: ingredientID,
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		ExpiryDate:   req.ExpiryDate,
		Memo:         req.Memo,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, toIngredientResponse(ingredient, time.Now()))
}

// DeleteIngredient handles DELETE /api/v1/ingredients/{id}
func (h *InventoryHandlers) DeleteIngredient(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	ingredientID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("Invalid ingredient id"))
		return
	}

	if err := h.service.DeleteIngredient(r.Context(), userID, ingredientID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PurgeExpired handles DELETE /api/v1/ingredients/expired
func (h *InventoryHandlers) PurgeExpired(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	count, err := h.service.PurgeExpired(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, map[string]int64{"deleted": count})
}

// LookupBarcode handles GET /api/v1/barcode/{code}
func (h *InventoryHandlers) LookupBarcode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		writeError(w, h.logger, apperrors.NewBadRequestError("Barcode is required"))
		return
	}

	product, err := h.barcodes.Lookup(r.Context(), code)
	if err != nil {
		writeError(w, h.logger, apperrors.Wrap(err, "barcode lookup failed"))
		return
	}
	if product == nil {
		writeError(w, h.logger, apperrors.NewNotFoundError("product"))
		return
	}

	writeJSON(w, h.logger, http.StatusOK, product)
}
