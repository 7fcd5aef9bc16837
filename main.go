package main

import (
	"log"
	"os"
	"time"

	"dinehub/controller"
	"dinehub/database"
	"dinehub/notify"
	"dinehub/route"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	database.InitDatabase()

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Println("Running in debug mode")
	}

	// Session event fan-out. Without NATS_URL events stay in-process, which
	// is enough for a single instance.
	hub := notify.NewHub()
	notifier := notify.NewNotifier(hub)
	if natsURL := os.Getenv("NATS_URL"); natsURL != "" {
		if err := notifier.ConnectNATS(natsURL); err != nil {
			log.Fatalf("Failed to connect to NATS: %v", err)
		}
		log.Println("NATS connected")
	}
	defer notifier.Close()
	controller.Notifier = notifier

	// Initialize router
	router := gin.Default()

	// Configure CORS
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	origins := []string{"http://localhost:3000"}
	if allowedOrigins != "" {
		origins = append(origins, allowedOrigins)
	}
	corsConfig := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))
	log.Println("CORS configured")

	// Setup routes
	route.Routes(router, hub)
	log.Println("Routes configured successfully")

	// Serve stored uploads
	uploadDir := "./uploads"
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		log.Fatalf("Failed to create uploads directory: %v", err)
	}
	router.Static("/files", uploadDir)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}
	log.Printf("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
