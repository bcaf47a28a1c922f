package router

import (
	"personality_sessions_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupUserRoutes sets up the user routes. The per-user sessions listing is
// registered here too: gin allows only one wildcard name per path segment,
// so /users/:email/sessions reuses the :email param to carry the user id.
func SetupUserRoutes(apiGroup *gin.RouterGroup, userHandler *handlers.UserHandler, sessionHandler *handlers.SessionHandler) {
	userRoutes := apiGroup.Group("/users")
	{
		userRoutes.POST("", userHandler.UpsertUser)
		userRoutes.GET("", userHandler.GetUsers)
		userRoutes.GET("/:email", userHandler.GetUserByEmail)
		userRoutes.GET("/:email/sessions", sessionHandler.GetUserSessions)
	}
}

// SetupEventRoutes sets up the event-tracking routes.
func SetupEventRoutes(apiGroup *gin.RouterGroup, eventHandler *handlers.EventHandler) {
	eventRoutes := apiGroup.Group("/events")
	{
		eventRoutes.POST("", eventHandler.TrackEvent)
	}
}

// SetupSessionRoutes sets up the session booking routes.
func SetupSessionRoutes(apiGroup *gin.RouterGroup, sessionHandler *handlers.SessionHandler) {
	sessionRoutes := apiGroup.Group("/sessions")
	{
		sessionRoutes.POST("", sessionHandler.CreateSession)
		sessionRoutes.PUT("/:sessionId", sessionHandler.UpdateSession)
	}
}

// SetupAnalyticsRoutes sets up the admin analytics routes.
func SetupAnalyticsRoutes(apiGroup *gin.RouterGroup, analyticsHandler *handlers.AnalyticsHandler) {
	analyticsRoutes := apiGroup.Group("/analytics")
	{
		analyticsRoutes.GET("", analyticsHandler.GetAnalytics)
	}
}
