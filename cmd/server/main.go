package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/pomotrack/pomodoro-api/internal/config"
	"github.com/pomotrack/pomodoro-api/internal/constants"
	"github.com/pomotrack/pomodoro-api/internal/database"
	"github.com/pomotrack/pomodoro-api/internal/handlers"
	"github.com/pomotrack/pomodoro-api/internal/middleware"
	"github.com/pomotrack/pomodoro-api/internal/repository"
	"github.com/pomotrack/pomodoro-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	sessionService := services.NewSessionService(sessionRepo, userRepo, settingsRepo)
	statsService := services.NewStatsService(sessionRepo, userRepo)
	settingsService := services.NewSettingsService(settingsRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	statsHandler := handlers.NewStatsHandler(statsService, sessionService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Pomodoro Tracker API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
			auth.DELETE("/me", middleware.RequireAuth(), authHandler.DeleteAccount)
		}

		// Session ledger routes (protected)
		session := api.Group("/session")
		session.Use(middleware.RequireAuth())
		{
			session.POST("/start", sessionHandler.StartSession)
			session.POST("/complete", sessionHandler.CompleteSession)
			session.GET("/next", sessionHandler.NextSession)
		}

		// Read-side routes (protected)
		api.GET("/stats", middleware.RequireAuth(), statsHandler.GetStats)
		api.GET("/dashboard", middleware.RequireAuth(), statsHandler.GetDashboard)
		api.GET("/history", middleware.RequireAuth(), statsHandler.GetHistory)

		// Settings routes (protected)
		settings := api.Group("/settings")
		settings.Use(middleware.RequireAuth())
		{
			settings.GET("", settingsHandler.GetSettings)
			settings.PUT("", settingsHandler.UpdateSettings)
		}
	}

	// Start server
	log.Println("Server starting on :" + cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
