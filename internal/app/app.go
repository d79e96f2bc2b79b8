package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"product-api/internal/config"
	"product-api/internal/database"
	"product-api/internal/handler"
	"product-api/internal/middleware"
	"product-api/internal/repository"
	"product-api/internal/router"
	"product-api/internal/service"
)

type App struct {
	server       *http.Server
	cleanupFuncs []func()
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var cleanupFuncs []func()

	var userStore service.UserStore
	var productStore service.ProductStore
	if cfg.DatabaseURL != "" {
		slog.Info("connecting to PostgreSQL")
		db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := db.EnsureSchema(context.Background()); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to ensure database schema: %w", err)
		}
		if err := db.SeedProducts(context.Background(), repository.SeedProducts()); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to seed products: %w", err)
		}

		userStore = repository.NewPostgresUserRepository(db.Pool)
		productStore = repository.NewPostgresProductRepository(db.Pool)
		cleanupFuncs = append(cleanupFuncs, db.Close)
		slog.Info("database ready")
	} else {
		slog.Info("no DATABASE_URL set; using in-memory store, all users are lost on restart")
		userStore = repository.NewUserRepository()
		productStore = repository.NewProductRepository(repository.SeedProducts())
	}

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	authService := service.NewAuthService(userStore, hasher, tokenService)
	productService := service.NewProductService(productStore)

	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	docsHandler := handler.NewDocsHandler(cfg.BaseURL)

	appRouter := router.New(cfg, authMiddleware, authHandler, productHandler, docsHandler)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      appRouter,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	return &App{server: server, cleanupFuncs: cleanupFuncs}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		slog.Info("health check available", "path", "/health")
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, cleanup := range a.cleanupFuncs {
		cleanup()
	}

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
