package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/timekeep-simple/api/v1"
	"github.com/timekeep-simple/config"
	"github.com/timekeep-simple/database"
)

func main() {
	// Load environment variables from .env if present
	config.LoadEnv()

	// Set Gin mode
	gin.SetMode(config.GetEnv("GIN_MODE", gin.ReleaseMode))

	// Connect to database and run migrations
	database.Initialize()

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Register versioned API routes
	apiV1 := router.Group("/api/v1")
	v1.RegisterRoutes(apiV1)

	port := config.GetEnv("PORT", "8080")

	log.Printf("🚀 Timekeep starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
