package router

import (
	"database/sql"
	"path/filepath"

	"personality_sessions_backend/internal/handlers"
	"personality_sessions_backend/internal/repositories"
	"personality_sessions_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application. The shared database
// handle is passed in explicitly; repositories, services and handlers are
// constructed here and hold no other state.
func Setup(engine *gin.Engine, db *sql.DB, staticDir string) {
	// Initialize Repositories
	userRepo := repositories.NewUserRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	analyticsRepo := repositories.NewAnalyticsRepository(db)

	// Initialize Services
	userService := services.NewUserService(userRepo, db)
	eventService := services.NewEventService(eventRepo, db)
	sessionService := services.NewSessionService(sessionRepo, db)
	analyticsService := services.NewAnalyticsService(analyticsRepo)

	// Initialize Handlers
	userHandler := handlers.NewUserHandler(userService)
	eventHandler := handlers.NewEventHandler(eventService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	healthHandler := handlers.NewHealthHandler(db)

	// Static pages
	engine.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(staticDir, "index.html"))
	})
	engine.GET("/admin", func(c *gin.Context) {
		c.File(filepath.Join(staticDir, "admin.html"))
	})

	api := engine.Group("/api")
	{
		SetupUserRoutes(api, userHandler, sessionHandler)
		SetupEventRoutes(api, eventHandler)
		SetupSessionRoutes(api, sessionHandler)
		SetupAnalyticsRoutes(api, analyticsHandler)

		api.GET("/health", healthHandler.Health)
	}
}
