package v1

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/timekeep-simple/lib/telegram"
	"github.com/timekeep-simple/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// The Telegram notifier is optional: without credentials the approval
	// queue still works, only the notifications are skipped.
	var notifier telegram.Notifier
	if bot, err := telegram.NewBotNotifier(); err != nil {
		log.Printf("Warning: Telegram notifications disabled: %v", err)
	} else {
		notifier = bot
	}
	registrationController := NewRegistrationController(notifier)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", registrationController.Register)
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", Logout)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Approval endpoints - capability URLs reachable from the Telegram
	// message, no session required
	registrationGroup := router.Group("/registration")
	{
		registrationGroup.GET("/approve/:token", registrationController.Approve)
		registrationGroup.GET("/deny/:token", registrationController.Deny)
		registrationGroup.POST("/:token/resend", registrationController.Resend)
	}

	// Everything below requires authentication
	authRouter := router.Group("")
	authRouter.Use(middleware.AuthMiddleware())

	// Customer endpoints
	customerGroup := authRouter.Group("/customers")
	{
		customerGroup.GET("", ListCustomers)
		customerGroup.POST("", CreateCustomer)
		customerGroup.GET("/:id", GetCustomer)
		customerGroup.PUT("/:id", UpdateCustomer)
		customerGroup.DELETE("/:id", DeleteCustomer)
		customerGroup.GET("/:id/total", GetCustomerTotal)
		customerGroup.GET("/:id/projects", ListProjects)
		customerGroup.POST("/:id/projects", CreateProject)
	}

	// Project endpoints
	projectGroup := authRouter.Group("/projects")
	{
		projectGroup.GET("/:id", GetProject)
		projectGroup.PUT("/:id", UpdateProject)
		projectGroup.DELETE("/:id", DeleteProject)
		projectGroup.POST("/:id/complete", CompleteProject)
		projectGroup.GET("/:id/total", GetProjectTotal)
	}

	// Timer, session and deliverable endpoints
	timerController := NewTimerController()
	timerController.RegisterRoutes(authRouter)

	sessionController := NewSessionController()
	sessionController.RegisterRoutes(authRouter)

	deliverableController := NewDeliverableController()
	deliverableController.RegisterRoutes(authRouter)

	// Statistics overview
	authRouter.GET("/stats", GetStats)

	// Admin endpoints - protected by AdminMiddleware
	adminGroup := authRouter.Group("/admin")
	adminGroup.Use(middleware.AdminMiddleware())
	{
		adminGroup.GET("/registrations", registrationController.ListPending)
		adminGroup.GET("/users", ListUsers)
	}
}
