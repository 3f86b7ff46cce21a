package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"aiconsult/internal/config"
	"aiconsult/internal/database"
	"aiconsult/internal/middleware"
	"aiconsult/internal/modules/catalog"
	"aiconsult/internal/modules/lead"
	"aiconsult/internal/modules/subscriber"
	"aiconsult/internal/repository"
	"aiconsult/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatal(err)
	}

	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	promptRepo := repository.NewPromptRepository(db)
	toolRepo := repository.NewToolRepository(db)
	blueprintRepo := repository.NewBlueprintRepository(db)
	subscriberRepo := repository.NewSubscriberRepository(db)
	consultationRepo := repository.NewConsultationRepository(db)

	files := storage.NewPublicBucket(cfg.Storage.BaseURL, cfg.Storage.Bucket)
	notifier := lead.NewHTTPNotifier(cfg.Notify.URL)

	catalogService := catalog.NewService(promptRepo, toolRepo, blueprintRepo, files)
	catalogHandler := catalog.NewHandler(catalogService)

	subscriberService := subscriber.NewService(subscriberRepo)
	subscriberHandler := subscriber.NewHandler(subscriberService)

	leadService := lead.NewService(consultationRepo, notifier)
	leadHandler := lead.NewHandler(leadService)

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.ErrorLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		catalogHandler.RegisterRoutes(v1)
		subscriberHandler.RegisterRoutes(v1)
		leadHandler.RegisterRoutes(v1)
	}

	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatal(err)
	}
}
