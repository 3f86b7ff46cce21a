package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"aiconsult/internal/config"
	"aiconsult/internal/modules/mailer"
)

// The notification function runs as its own small service so it can be
// deployed and scaled independently of the site API.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	service := mailer.NewService(&cfg.Email)
	handler := mailer.NewHandler(service)

	r := gin.Default()

	// the function is called cross-origin from the browser
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "authorization, content-type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	handler.RegisterRoutes(r)

	port := os.Getenv("NOTIFY_PORT")
	if port == "" {
		port = "8090"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
