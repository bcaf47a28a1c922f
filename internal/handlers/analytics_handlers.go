package handlers

import (
	"net/http"

	"personality_sessions_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler holds the analytics service.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(as services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: as}
}

// GetAnalytics returns the aggregated dashboard metrics. The response is
// always 200; individual metric failures are reported inline under their key.
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyticsService.GetAnalytics())
}
