package handlers

import (
	"errors"
	"net/http"

	"personality_sessions_backend/internal/services"
	"personality_sessions_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SessionHandler holds the session service.
type SessionHandler struct {
	sessionService services.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(ss services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: ss}
}

// CreateSession books a coaching session for a user.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req services.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateSession: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}

	sessionID, err := h.sessionService.CreateSession(req)
	if err != nil {
		if errors.Is(err, services.ErrDateFormat) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid session date.", err.Error()))
			return
		}
		utils.LogError(err, "CreateSession: Error from sessionService.CreateSession")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create session.", "Internal error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Session created successfully",
		"sessionId": sessionID,
	})
}

// GetUserSessions lists a user's sessions, most recent date first.
// The route shares its path parameter with the fetch-by-email route, so the
// numeric user id arrives under the "email" param name.
func (h *SessionHandler) GetUserSessions(c *gin.Context) {
	userID, err := utils.StrToInt64(c.Param("email"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid user ID format.", err.Error()))
		return
	}

	sessions, err := h.sessionService.GetSessionsForUser(userID)
	if err != nil {
		utils.LogError(err, "GetUserSessions: Error from sessionService.GetSessionsForUser")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch sessions.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// UpdateSession overwrites a session's status and notes.
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	sessionID, err := utils.StrToInt64(c.Param("sessionId"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid session ID format.", err.Error()))
		return
	}

	var req services.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateSession: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}

	if err := h.sessionService.UpdateSessionStatus(sessionID, req); err != nil {
		utils.LogError(err, "UpdateSession: Error from sessionService.UpdateSessionStatus")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update session.", "Internal error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Session updated successfully",
	})
}
