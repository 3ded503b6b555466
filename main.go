package main

import (
	"log"

	api "pushadmin-backend/cmd/api"
	devicedomain "pushadmin-backend/internal/device/domain"
	deviceRepo "pushadmin-backend/internal/device/repository"
	notifdomain "pushadmin-backend/internal/notification/domain"
	notifRepo "pushadmin-backend/internal/notification/repository"
	notifUsecase "pushadmin-backend/internal/notification/usecase"
	"pushadmin-backend/pkg/config"
	"pushadmin-backend/pkg/database"
	"pushadmin-backend/pkg/fcm"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&devicedomain.FCMToken{}, &notifdomain.Notification{}, &notifdomain.NotificationRecipient{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize FCM client (created once, reused across requests)
	fcmClient, err := fcm.NewClient(cfg)
	if err != nil {
		log.Fatal("Failed to initialize FCM client:", err)
	}

	// Initialize repositories and the dispatch usecase
	notificationRepo := notifRepo.NewNotificationRepository(db)
	tokenRepo := deviceRepo.NewFCMTokenRepository(db)
	dispatchUsecase := notifUsecase.NewDispatchUsecase(fcmClient, notificationRepo)

	// Initialize HTTP handler and start
	handler := api.NewHandler(dispatchUsecase, tokenRepo)

	log.Printf("Dispatch service starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
