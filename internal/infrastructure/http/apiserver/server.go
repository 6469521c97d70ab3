// Package apiserver provides the JSON API HTTP server
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fridgewise/v1/internal/application/inventory"
	"github.com/fridgewise/v1/internal/application/mealplan"
	"github.com/fridgewise/v1/internal/application/recipes"
	"github.com/fridgewise/v1/internal/application/shopping"
	"github.com/fridgewise/v1/internal/infrastructure/config"
	"github.com/fridgewise/v1/internal/infrastructure/http/handlers"
	"github.com/fridgewise/v1/internal/infrastructure/http/middleware"
	"github.com/fridgewise/v1/internal/infrastructure/security"
	"github.com/fridgewise/v1/internal/ports/inbound"
	"github.com/fridgewise/v1/internal/ports/outbound"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// APIServer serves the JSON API
type APIServer struct {
	config    *config.Config
	logger    *zap.Logger
	server    *http.Server
	router    *chi.Mux
	tokens    *security.TokenService
	inventory *inventory.Service
	shopping  *shopping.Service
	mealplans *mealplan.Service
	recipes   *recipes.Service
	recommend inbound.RecommendService
	barcodes  outbound.BarcodeService
}

// NewAPIServer creates a new API server instance
func NewAPIServer(
	cfg *config.Config,
	log *zap.Logger,
	tokens *security.TokenService,
	inventoryService *inventory.Service,
	shoppingService *shopping.Service,
	mealplanService *mealplan.Service,
	recipesService *recipes.Service,
	recommendService inbound.RecommendService,
	barcodeService outbound.BarcodeService,
) *APIServer {
	server := &APIServer{
		config:    cfg,
		logger:    log,
		tokens:    tokens,
		inventory: inventoryService,
		shopping:  shoppingService,
		mealplans: mealplanService,
		recipes:   recipesService,
		recommend: recommendService,
		barcodes:  barcodeService,
	}

	server.router = server.setupRoutes()
	server.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return server
}

// setupRoutes configures the JSON API routes
func (s *APIServer) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	}
	r.Use(chimiddleware.Timeout(s.config.Server.RequestTimeout))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.JSONOnly())

	r.Get("/health", s.handleHealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		s.setupAPIV1Routes(r)
	})

	return r
}

// setupAPIV1Routes configures API v1 endpoints
func (s *APIServer) setupAPIV1Routes(r chi.Router) {
	invH := handlers.NewInventoryHandlers(s.inventory, s.barcodes, s.logger)
	shopH := handlers.NewShoppingHandlers(s.shopping, s.logger)
	planH := handlers.NewMealPlanHandlers(s.mealplans, s.logger)
	recH := handlers.NewRecipesHandlers(s.recipes, s.logger)
	aiH := handlers.NewRecommendHandlers(s.recommend, s.inventory, s.logger)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthenticateAPI(s.tokens))

		// Fridge and ingredient routes
		r.Route("/fridges", func(r chi.Router) {
			r.Get("/", invH.ListFridges)
			r.Post("/", invH.CreateFridge)
			r.Delete("/{id}", invH.DeleteFridge)
		})
		r.Route("/ingredients", func(r chi.Router) {
			r.Get("/", invH.ListIngredients)
			r.Post("/", invH.AddIngredient)
			r.Delete("/expired", invH.PurgeExpired)
			r.Put("/{id}", invH.UpdateIngredient)
			r.Delete("/{id}", invH.DeleteIngredient)
		})
		r.Get("/barcode/{code}", invH.LookupBarcode)

		// Shopping list routes
		r.Route("/shopping", func(r chi.Router) {
			r.Get("/", shopH.List)
			r.Post("/", shopH.AddItem)
			r.Post("/add", shopH.AddBulk)
			r.Delete("/checked", shopH.ClearChecked)
			r.Patch("/{id}/checked", shopH.SetChecked)
			r.Delete("/{id}", shopH.DeleteItem)
		})

		// Meal calendar routes
		r.Route("/planner", func(r chi.Router) {
			r.Get("/", planH.Week)
			r.Put("/", planH.PlanMeal)
			r.Delete("/{id}", planH.DeleteMeal)
		})

		// Saved recipe routes
		r.Route("/recipes/saved", func(r chi.Router) {
			r.Get("/", recH.List)
			r.Post("/", recH.Save)
			r.Delete("/{id}", recH.Delete)
		})

		// AI-backed routes share one rate limit bucket
		r.Group(func(r chi.Router) {
			if s.config.RateLimit.Enable {
				r.Use(middleware.RateLimit(s.config.RateLimit.RequestsPerMin, s.config.RateLimit.BurstSize))
			}
			r.Post("/recipes/recommend", aiH.Recommend)
			r.Post("/receipt/scan", aiH.ScanReceipt)
			r.Post("/planner/suggest", aiH.SuggestDailyPlan)
		})
	})
}

// Start starts the API HTTP server
func (s *APIServer) Start() error {
	s.logger.Info("Starting API server",
		zap.String("address", s.server.Addr),
	)
	return s.server.ListenAndServe()
}

// Server returns the underlying HTTP server instance
func (s *APIServer) Server() *http.Server {
	return s.server
}

// Shutdown gracefully shuts down the API server
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")
	return s.server.Shutdown(ctx)
}

// handleHealthCheck provides the health check endpoint
func (s *APIServer) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"healthy","service":"%s","version":"%s","timestamp":%d}`,
		s.config.App.Name, s.config.App.Version, time.Now().Unix())
}
