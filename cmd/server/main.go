package main

import (
	"log"
	"net/http"

	"github.com/Shreyas8905/simplyCRM/internal/config"
	"github.com/Shreyas8905/simplyCRM/internal/constants"
	"github.com/Shreyas8905/simplyCRM/internal/database"
	"github.com/Shreyas8905/simplyCRM/internal/handlers"
	"github.com/Shreyas8905/simplyCRM/internal/logger"
	"github.com/Shreyas8905/simplyCRM/internal/middleware"
	"github.com/Shreyas8905/simplyCRM/internal/repository"
	"github.com/Shreyas8905/simplyCRM/internal/services"
	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	appLog, err := logger.New(cfg.GinMode)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLog.Sync()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		appLog.Fatal("Failed to connect to database", "error", err)
	}
	appLog.Info("Database connection established", "driver", cfg.DBDriver)

	// Run migrations
	if err := database.Migrate(); err != nil {
		appLog.Fatal("Failed to run migrations", "error", err)
	}

	// Ensure the reserved admin account exists
	if err := database.EnsureAdmin(database.GetDB(), cfg, appLog); err != nil {
		appLog.Fatal("Failed to bootstrap admin user", "error", err)
	}

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(appLog))
	r.Use(middleware.CORS())

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		appLog.Fatal("Failed to create Redis session store", "error", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAge, // fixed 24h, not sliding
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)

	authService := services.NewAuthService(userRepo)
	contactService := services.NewContactService(contactRepo)
	statsService := services.NewStatsService(contactRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg.Port)
	authHandler := handlers.NewAuthHandler(authService)
	contactHandler := handlers.NewContactHandler(contactService)
	dashboardHandler := handlers.NewDashboardHandler(statsService)

	// API routes
	api := r.Group("/api")
	{
		// Public routes
		api.GET("/health", healthHandler.Check)
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)

		// Protected routes
		api.GET("/user", middleware.RequireAuth(), authHandler.GetCurrentUser)

		contacts := api.Group("/contacts")
		contacts.Use(middleware.RequireAuth())
		{
			contacts.GET("", contactHandler.ListContacts)
			contacts.POST("", contactHandler.CreateContact)
			contacts.GET("/:id", contactHandler.GetContact)
			contacts.PUT("/:id", contactHandler.UpdateContact)
			contacts.DELETE("/:id", contactHandler.DeleteContact)
		}

		dashboard := api.Group("/dashboard")
		dashboard.Use(middleware.RequireAuth())
		{
			dashboard.GET("/stats", dashboardHandler.GetStats)
		}
	}

	// Start server
	appLog.Info("Server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		appLog.Fatal("Failed to start server", "error", err)
	}
}
