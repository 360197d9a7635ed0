package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/foodify/backend/internal/auth"
	"github.com/foodify/backend/internal/config"
	"github.com/foodify/backend/internal/handlers"
	"github.com/foodify/backend/internal/logger"
	"github.com/foodify/backend/internal/middleware"
	"github.com/foodify/backend/internal/repositories"
	"github.com/foodify/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Foodify restaurant server")

	// Connect to database
	client, err := connectMongo(cfg.Database.URI)
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Logger.Error("Failed to disconnect from database", zap.Error(err))
		}
	}()

	db := client.Database(cfg.Database.DBName)

	// Create indexes (unique email makes duplicate registration a storage
	// constraint instead of a check-then-insert race)
	if err := ensureIndexes(db); err != nil {
		logger.Logger.Fatal("Failed to create indexes", zap.Error(err))
	}

	// Initialize JWT token generator
	tokenGenerator := auth.NewTokenGenerator(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, logger.Logger)
	menuRepo := repositories.NewMenuRepository(db, logger.Logger)
	reviewRepo := repositories.NewReviewRepository(db, logger.Logger)
	cartRepo := repositories.NewCartRepository(db, logger.Logger)

	// Initialize services
	userService := services.NewUserService(userRepo, logger.Logger)
	authService := services.NewAuthService(userRepo, tokenGenerator, logger.Logger)
	catalogService := services.NewCatalogService(menuRepo, reviewRepo, logger.Logger)
	cartService := services.NewCartService(cartRepo, logger.Logger)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, logger.Logger)
	authHandler := handlers.NewAuthHandler(authService, logger.Logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger.Logger)
	cartHandler := handlers.NewCartHandler(cartService, logger.Logger)

	// Initialize gates
	authGate := middleware.Auth(tokenGenerator)
	adminGate := middleware.RequireAdmin(userRepo)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger.Logger))
	r.Use(middleware.Recovery(logger.Logger))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middleware.RequestSizeLimit(1 * 1024 * 1024)) // 1MB

	// Liveness
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Foodify restaurant server is running"))
	})

	// Register routes
	userHandler.RegisterRoutes(r, authGate, adminGate)
	authHandler.RegisterRoutes(r)
	catalogHandler.RegisterRoutes(r)
	cartHandler.RegisterRoutes(r, authGate)

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectMongo connects to MongoDB and verifies the connection
func connectMongo(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}

// ensureIndexes creates the indexes the application relies on
func ensureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create unique email index: %w", err)
	}

	return nil
}
