package main

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"orderdash/internal/auth"
	"orderdash/internal/cache"
	"orderdash/internal/config"
	"orderdash/internal/db"
	"orderdash/internal/handler"
	"orderdash/internal/model"
	"orderdash/internal/repository"
	"orderdash/internal/router"
	"orderdash/internal/service"
	"orderdash/internal/web"
)

func main() {
	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("renderer init: %v", err)
	}
	e.Renderer = renderer

	gormDB, err := db.NewSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Account{},
		&model.Order{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)

	// Initialize auth components
	sessions := auth.NewSessionService(cfg.SessionSecret)
	sessionStore := auth.NewSessionStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(accountRepo, sessions, sessionStore, cfg.AdminPassword)
	orderService := service.NewOrderService(orderRepo, accountRepo, cacheClient)

	// Seed the default admin account on first run
	if err := authService.EnsureDefaultAdmin(context.Background()); err != nil {
		log.Fatalf("seed admin account: %v", err)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, sessions, sessionStore)
	dashboardHandler := handler.NewDashboardHandler(orderService)
	orderHandler := handler.NewOrderHandler(orderService)

	// Register routes
	router.Register(
		e,
		cfg,
		sessionStore,
		authHandler,
		dashboardHandler,
		orderHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
