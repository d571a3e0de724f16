package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/nexuspos/pos-api/internal/application/service"
	"github.com/nexuspos/pos-api/internal/presentation/http/dto/request"
	"github.com/nexuspos/pos-api/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService     *service.AuthService
	userService     *service.UserService
	activityService *service.ActivityService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, userService *service.UserService, activityService *service.ActivityService) *AuthHandler {
	return &AuthHandler{
		authService:     authService,
		userService:     userService,
		activityService: activityService,
	}
}

// Login handles username/password login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Username and password are required")
		return
	}

	tokens, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.activityService.Record(c.Request.Context(), &tokens.User.ID, "auth.login", nil)
	response.OK(c, "Login successful", tokens)
}

// Refresh exchanges a refresh token for a new token pair
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Refresh token is required")
		return
	}

	tokens, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token refreshed", tokens)
}

// GetProfile returns the authenticated user
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile retrieved", user)
}

// ChangePassword changes the authenticated user's password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "New password must be at least 8 characters and match the confirmation")
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), *userID, req.NewPassword); err != nil {
		response.Error(c, err)
		return
	}

	h.activityService.Record(c.Request.Context(), userID, "auth.password_changed", nil)
	response.OK(c, "Password changed", nil)
}
