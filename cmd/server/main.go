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

	identityapp "github.com/dropship/backend/internal/application/identity"
	supplierapp "github.com/dropship/backend/internal/application/supplier"
	"github.com/dropship/backend/internal/infrastructure/config"
	"github.com/dropship/backend/internal/infrastructure/logger"
	"github.com/dropship/backend/internal/infrastructure/mailer"
	"github.com/dropship/backend/internal/infrastructure/persistence"
	"github.com/dropship/backend/internal/interfaces/http/handler"
	"github.com/dropship/backend/internal/interfaces/http/middleware"
	"github.com/dropship/backend/internal/interfaces/http/router"
)

//	@title			Drop-Ship Backend API
//	@version		1.0
//	@description	Marketplace drop-ship supplier lifecycle API

//	@contact.name	API Support
//	@contact.email	support@dropship.example.com

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Drop-Ship Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	locationRepo := persistence.NewGormStockLocationRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Drop-ship settings and welcome mailer
	settings := config.NewDropShipSettings(cfg.DropShip)
	welcomeMailer := mailer.NewSMTPWelcomeMailer(cfg.SMTP, log)

	// Initialize application services
	supplierService := supplierapp.NewSupplierService(
		supplierRepo, locationRepo, userRepo, settings, welcomeMailer, log)
	stockLocationService := supplierapp.NewStockLocationService(locationRepo, supplierRepo)
	userService := identityapp.NewUserService(userRepo, log)

	// Initialize HTTP handlers
	supplierHandler := handler.NewSupplierHandler(supplierService)
	stockLocationHandler := handler.NewStockLocationHandler(stockLocationService)
	userHandler := handler.NewUserHandler(userService)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Report validation errors using json/form field names
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Supplier domain (suppliers and their stock locations)
	supplierRoutes := router.NewDomainGroup("suppliers", "/suppliers")
	supplierRoutes.POST("", supplierHandler.Create)
	supplierRoutes.GET("", supplierHandler.List)
	supplierRoutes.GET("/slug/:slug", supplierHandler.GetBySlug)
	supplierRoutes.GET("/:id", supplierHandler.GetByID)
	supplierRoutes.PUT("/:id", supplierHandler.Update)
	supplierRoutes.DELETE("/:id", supplierHandler.Delete)
	supplierRoutes.POST("/:id/users", supplierHandler.LinkUser)
	supplierRoutes.DELETE("/:id/users/:user_id", supplierHandler.UnlinkUser)
	supplierRoutes.POST("/:id/stock-locations", stockLocationHandler.Create)
	supplierRoutes.GET("/:id/stock-locations", stockLocationHandler.ListBySupplier)

	// Stock locations addressed directly by ID
	stockLocationRoutes := router.NewDomainGroup("stock-locations", "/stock-locations")
	stockLocationRoutes.GET("/:id", stockLocationHandler.GetByID)
	stockLocationRoutes.PUT("/:id", stockLocationHandler.Update)
	stockLocationRoutes.DELETE("/:id", stockLocationHandler.Delete)

	// Identity domain (marketplace user accounts)
	userRoutes := router.NewDomainGroup("users", "/users")
	userRoutes.POST("", userHandler.Register)
	userRoutes.POST("/login", userHandler.Login)
	userRoutes.GET("/:id", userHandler.GetByID)
	userRoutes.DELETE("/:id", userHandler.Deactivate)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(supplierRoutes).
		Register(stockLocationRoutes).
		Register(userRoutes).
		Register(systemRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
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

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
