package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/fridgewise/v1/internal/application/inventory"
	"github.com/fridgewise/v1/internal/infrastructure/http/middleware"
	"github.com/fridgewise/v1/internal/ports/inbound"
	apperrors "github.com/fridgewise/v1/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxReceiptImageBytes caps receipt uploads at 10 MiB
const maxReceiptImageBytes = 10 << 20

// RecommendHandlers handles the AI-backed API requests
type RecommendHandlers struct {
	recommend inbound.RecommendService
	inventory *inventory.Service
	logger    *zap.Logger
}

// NewRecommendHandlers creates the recommendation handlers
func NewRecommendHandlers(recommend inbound.RecommendService, inventoryService *inventory.Service, logger *zap.Logger) *RecommendHandlers {
	return &RecommendHandlers{
		recommend: recommend,
		inventory: inventoryService,
		logger:    logger,
	}
}

type recommendIngredientRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Quantity float64 `json:"quantity" validate:"omitempty,gte=0"`
	Unit     string  `json:"unit" validate:"omitempty,max=10"`
	DDay     *int    `json:"dday"`
}

type recommendRequest struct {
	Ingredients []recommendIngredientRequest `json:"ingredients" validate:"omitempty,max=100,dive"`
	Mode        string                       `json:"mode" validate:"omitempty,oneof=general urgent"`
	Theme       string                       `json:"theme" validate:"omitempty,max=50"`
	MustUse     []string                     `json:"mustUse" validate:"omitempty,max=10,dive,required"`
}

// Recommend handles POST /api/v1/recipes/recommend
func (h *RecommendHandlers) Recommend(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	var req recommendRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	// Callers may pin the ingredient list explicitly; otherwise the
	// user's live holdings are loaded so the model sees current expiry data.
	var holdings []inbound.RecommendIngredient
	if len(req.Ingredients) > 0 {
		holdings = make([]inbound.RecommendIngredient, len(req.Ingredients))
		for i, ing := range req.Ingredients {
			holdings[i] = inbound.RecommendIngredient{
				Name:     ing.Name,
				Quantity: ing.Quantity,
				Unit:     ing.Unit,
				DDay:     ing.DDay,
			}
		}
	} else {
		var err error
		holdings, err = h.loadHoldings(r, userID)
		if err != nil {
			writeError(w, h.logger, err)
			return
		}
	}

	mode := inbound.RecommendMode(req.Mode)
	if req.Mode == "" {
		mode = inbound.ModeGeneral
	}

	result, err := h.recommend.Recommend(r.Context(), inbound.RecommendCommand{
		Ingredients: holdings,
		Mode:        mode,
		Theme:       req.Theme,
		MustUse:     req.MustUse,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

// ScanReceipt handles POST /api/v1/receipt/scan with a multipart image
func (h *RecommendHandlers) ScanReceipt(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	if err := r.ParseMultipartForm(maxReceiptImageBytes); err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("Invalid multipart body"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, h.logger, apperrors.NewValidationError("이미지를 업로드해주세요"))
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxReceiptImageBytes))
	if err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("Failed to read image"))
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	items, err := h.recommend.ScanReceipt(r.Context(), image, mimeType)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, map[string]interface{}{"items": items})
}

type suggestPlanRequest struct {
	Date string `json:"date" validate:"required"`
}

// SuggestDailyPlan handles POST /api/v1/planner/suggest
func (h *RecommendHandlers) SuggestDailyPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	var req suggestPlanRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	holdings, err := h.loadHoldings(r, userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	suggestions, err := h.recommend.SuggestDailyPlan(r.Context(), inbound.SuggestPlanCommand{
		Date:        req.Date,
		Ingredients: holdings,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, map[string]interface{}{"suggestions": suggestions})
}

// loadHoldings converts the user's live inventory into recommendation input
func (h *RecommendHandlers) loadHoldings(r *http.Request, userID uuid.UUID) ([]inbound.RecommendIngredient, error) {
	ingredients, err := h.inventory.ListIngredients(r.Context(), userID, nil)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	holdings := make([]inbound.RecommendIngredient, 0, len(ingredients))
	for _, ing := range ingredients {
		dday := ing.DaysUntilExpiry(now)
		holdings = append(holdings, inbound.RecommendIngredient{
			Name:     ing.Name(),
			Quantity: ing.Quantity(),
			Unit:     string(ing.Unit()),
			DDay:     &dday,
		})
	}
	return holdings, nil
}
