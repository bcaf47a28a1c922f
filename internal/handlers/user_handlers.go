package handlers

import (
	"errors"
	"net/http"

	"personality_sessions_backend/internal/services"
	"personality_sessions_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler holds the user service.
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us services.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

// UpsertUser handles a signup/payment submission, creating the user on first
// contact and overwriting the record on repeat submissions with the same email.
func (h *UserHandler) UpsertUser(c *gin.Context) {
	var req services.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpsertUser: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}

	userID, err := h.userService.UpsertUser(req)
	if err != nil {
		utils.LogError(err, "UpsertUser: Error from userService.UpsertUser")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to save user.", "Internal error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User saved successfully",
		"userId":  userID,
	})
}

// GetUserByEmail handles fetching a single user by email.
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	email := c.Param("email")

	user, err := h.userService.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "User not found.", ""))
			return
		}
		utils.LogError(err, "GetUserByEmail: Error from userService.GetUserByEmail for "+email)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch user.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUsers handles the admin listing of all users, newest first.
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.GetUsers()
	if err != nil {
		utils.LogError(err, "GetUsers: Error from userService.GetUsers")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch users.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, users)
}
