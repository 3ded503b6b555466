package main

import (
	_ "embed"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	admindelivery "pushadmin-backend/internal/admin/delivery"
	adminUsecase "pushadmin-backend/internal/admin/usecase"
	devicedomain "pushadmin-backend/internal/device/domain"
	deviceRepo "pushadmin-backend/internal/device/repository"
	"pushadmin-backend/pkg/config"
	"pushadmin-backend/pkg/database"
	"pushadmin-backend/pkg/dispatchclient"
)

//go:embed web/index.html
var indexHTML []byte

func main() {
	// Load configuration
	cfg := config.Load()

	// The admin console reads and prunes device tokens directly from the
	// store; sends go through the dispatch service over HTTP.
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&devicedomain.FCMToken{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	tokenRepo := deviceRepo.NewFCMTokenRepository(db)
	dispatch := dispatchclient.New(cfg.DispatchServiceURL)
	usecase := adminUsecase.NewAdminUsecase(dispatch, tokenRepo)
	handler := admindelivery.NewAdminHandler(usecase)

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
	})

	api := r.Group("/api")
	{
		api.GET("/tokens", handler.ListTokens)
		api.DELETE("/tokens/:id", handler.DeleteToken)
		api.POST("/send", handler.Send)
	}

	log.Printf("Admin console starting on port %s (dispatch service at %s)", cfg.AdminPort, cfg.DispatchServiceURL)
	if err := r.Run(":" + cfg.AdminPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
