package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"unitrade/internal/adapter/api"
	"unitrade/internal/adapter/api/handler"
	apimiddleware "unitrade/internal/adapter/api/middleware"
	"unitrade/internal/adapter/api/router"
	"unitrade/internal/adapter/repository"
	"unitrade/internal/infrastructure/ws"
	"unitrade/internal/usecase"
	"unitrade/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	store, err := repository.OpenSnapshotStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open snapshot store at %s: %v", cfg.DataDir, err)
	}

	accountRepo := repository.NewSnapshotAccountRepository(store)
	listingRepo := repository.NewSnapshotListingRepository(store)
	messageRepo := repository.NewSnapshotMessageRepository(store)
	reviewRepo := repository.NewSnapshotReviewRepository(store)

	hub := ws.NewHub()
	hub.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(accountRepo, cfg.JWTSecret, cfg.JWTExpiry)
	userUseCase := usecase.NewUserUseCase(accountRepo, listingRepo, reviewRepo)
	messageUseCase := usecase.NewMessageUseCase(messageRepo, accountRepo, hub)
	listingUseCase := usecase.NewListingUseCase(listingRepo, accountRepo, messageUseCase)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, listingRepo, accountRepo)
	adminUseCase := usecase.NewAdminUseCase(accountRepo, listingRepo)

	handler.Setup(authUseCase, userUseCase, listingUseCase, messageUseCase, reviewUseCase, adminUseCase)
	handler.SetupHealthHandler()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(cfg.JWTSecret)
	adminMiddleware := apimiddleware.NewAdminMiddleware(accountRepo)

	router.Setup(e, authMiddleware, adminMiddleware, hub)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
