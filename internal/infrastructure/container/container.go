// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"

	appinventory "github.com/fridgewise/v1/internal/application/inventory"
	appmealplan "github.com/fridgewise/v1/internal/application/mealplan"
	apprecipes "github.com/fridgewise/v1/internal/application/recipes"
	apprecommend "github.com/fridgewise/v1/internal/application/recommend"
	appshopping "github.com/fridgewise/v1/internal/application/shopping"
	"github.com/fridgewise/v1/internal/infrastructure/ai"
	"github.com/fridgewise/v1/internal/infrastructure/barcode"
	"github.com/fridgewise/v1/internal/infrastructure/config"
	"github.com/fridgewise/v1/internal/infrastructure/foodapi"
	"github.com/fridgewise/v1/internal/infrastructure/http/apiserver"
	gormRepo "github.com/fridgewise/v1/internal/infrastructure/persistence/gorm"
	"github.com/fridgewise/v1/internal/infrastructure/persistence/migrations"
	"github.com/fridgewise/v1/internal/infrastructure/persistence/postgres"
	redisconn "github.com/fridgewise/v1/internal/infrastructure/persistence/redis"
	"github.com/fridgewise/v1/internal/infrastructure/persistence/sqlite"
	"github.com/fridgewise/v1/internal/infrastructure/security"
	"github.com/fridgewise/v1/internal/ports/outbound"
	"github.com/fridgewise/v1/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Module provides all dependency injection modules for the API server
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	RepositoryModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the database connection and runs migration
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		var db *gorm.DB

		switch cfg.Database.Driver {
		case "sqlite":
			logLevel := gormLogger.Silent
			if cfg.App.Debug {
				logLevel = gormLogger.Info
			}
			sqliteDB, err := sqlite.SetupDatabase(cfg.Database.Database+".db", logLevel)
			if err != nil {
				return nil, err
			}
			db = sqliteDB
		default:
			conn, err := postgres.NewConnection(cfg, log)
			if err != nil {
				return nil, err
			}
			db = conn.GetDB()
		}

		if cfg.Database.AutoMigrate {
			if err := migrations.Run(db, log); err != nil {
				return nil, fmt.Errorf("migration failed: %w", err)
			}
		}
		return db, nil
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewFridgeRepository,
	gormRepo.NewIngredientRepository,
	gormRepo.NewShoppingRepository,
	gormRepo.NewMealPlanRepository,
	gormRepo.NewSavedRecipeRepository,
)

// ServiceModule provides application services and their outbound adapters
var ServiceModule = fx.Provide(
	// Token validation
	security.NewTokenService,

	// Chat completion client
	fx.Annotate(
		func(cfg *config.Config, log *zap.Logger) *ai.Client {
			return ai.NewClient(cfg.AI, log)
		},
		fx.As(new(outbound.ChatService)),
	),

	// Public recipe corpus with optional Redis snapshot tier
	fx.Annotate(
		func(cfg *config.Config, log *zap.Logger) *foodapi.CachedCorpus {
			fetcher := foodapi.NewClient(cfg.FoodAPI, log)

			var store foodapi.SnapshotStore
			if cfg.Redis.Enabled {
				client, err := redisconn.NewClient(cfg, log)
				if err != nil {
					log.Warn("Redis unavailable, corpus snapshot tier disabled", zap.Error(err))
				} else {
					store = foodapi.NewRedisSnapshotStore(client, cfg.FoodAPI.CacheTTL, log)
				}
			}

			return foodapi.NewCachedCorpus(fetcher, store, cfg.FoodAPI.CacheTTL, log)
		},
		fx.As(new(outbound.CorpusProvider)),
	),

	// Barcode lookups
	fx.Annotate(
		barcode.NewClient,
		fx.As(new(outbound.BarcodeService)),
	),

	// Application services
	appinventory.NewService,
	appshopping.NewService,
	appmealplan.NewService,
	apprecipes.NewService,
	apprecommend.NewService,
)

// HTTPModule provides the API server
var HTTPModule = fx.Provide(
	apiserver.NewAPIServer,
)

// LifecycleModule wires server start and graceful shutdown
var LifecycleModule = fx.Invoke(
	func(lc fx.Lifecycle, server *apiserver.APIServer, log *zap.Logger) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				go func() {
					if err := server.Start(); err != nil {
						log.Error("API server stopped", zap.Error(err))
					}
				}()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return server.Shutdown(ctx)
			},
		})
	},
)
