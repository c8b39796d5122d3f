package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	catalogapp "github.com/storekit/backend/internal/application/catalog"
	collectionapp "github.com/storekit/backend/internal/application/collection"
	inventoryapp "github.com/storekit/backend/internal/application/inventory"
	shippingapp "github.com/storekit/backend/internal/application/shipping"
	"github.com/storekit/backend/internal/domain/catalog"
	"github.com/storekit/backend/internal/domain/inventory"
	sharedprovider "github.com/storekit/backend/internal/domain/shared/provider"
	"github.com/storekit/backend/internal/infrastructure/config"
	"github.com/storekit/backend/internal/infrastructure/logger"
	"github.com/storekit/backend/internal/infrastructure/persistence"
	"github.com/storekit/backend/internal/infrastructure/provider"
	"github.com/storekit/backend/internal/interfaces/http/handler"
	"github.com/storekit/backend/internal/interfaces/http/middleware"
	"github.com/storekit/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() { _ = log.Sync() }()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLogLevel := gormlogger.Warn
	if cfg.App.Env == "development" {
		gormLogLevel = gormlogger.Info
	}
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	variantRepo := persistence.NewGormVariantRepository(db.DB)
	catalogRepo := persistence.NewGormCatalogRepository(db.DB)
	shipCountryRepo := persistence.NewGormShipCountryRepository(db.DB)
	shipMethodRepo := persistence.NewGormShipMethodRepository(db.DB)
	collectionRepo := persistence.NewGormCollectionRepository(db.DB)

	// Capability providers
	registry := provider.NewRegistry()
	mustRegister(log, registry, provider.FixedRateProviderKey, func() (sharedprovider.Provider, error) {
		return provider.NewFixedRateShipProvider(shipMethodRepo), nil
	})
	mustRegister(log, registry, provider.StaticCollectionProviderKey, func() (sharedprovider.Provider, error) {
		return provider.NewStaticCollectionProvider(collectionRepo), nil
	})

	// Application services
	productService := catalogapp.NewProductService(productRepo)
	variantService := catalogapp.NewVariantService(productRepo, catalog.NewVariantComposer())
	inventoryService := inventoryapp.NewInventoryService(catalogRepo, variantRepo, inventory.NewLedger())
	membershipService := collectionapp.NewMembershipService(registry, collectionRepo, log)
	shipMethodService := shippingapp.NewShipMethodService(shipCountryRepo, shipMethodRepo, registry, log)

	// HTTP handlers
	handlers := router.Handlers{
		Product:    handler.NewProductHandler(productService),
		Variant:    handler.NewVariantHandler(variantService),
		Inventory:  handler.NewInventoryHandler(inventoryService),
		Collection: handler.NewCollectionHandler(membershipService),
		Shipping:   handler.NewShippingHandler(shipMethodService),
		System:     handler.NewSystemHandler(db),
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithConfig(corsConfig))

	router.Setup(engine, handlers)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

func mustRegister(log *zap.Logger, registry *provider.Registry, key string, factory provider.Factory) {
	if err := registry.Register(key, factory); err != nil {
		log.Fatal("Failed to register provider", zap.String("key", key), zap.Error(err))
	}
}
