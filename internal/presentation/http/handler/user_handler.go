package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nexuspos/pos-api/internal/application/service"
	"github.com/nexuspos/pos-api/internal/domain/enum"
	"github.com/nexuspos/pos-api/internal/presentation/http/dto/request"
	"github.com/nexuspos/pos-api/internal/presentation/http/dto/response"
	"github.com/nexuspos/pos-api/pkg/pagination"
)

// UserHandler handles user administration HTTP requests
type UserHandler struct {
	userService     *service.UserService
	activityService *service.ActivityService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService, activityService *service.ActivityService) *UserHandler {
	return &UserHandler{userService: userService, activityService: activityService}
}

// Create handles user creation
func (h *UserHandler) Create(c *gin.Context) {
	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid user payload")
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &service.CreateUserInput{
		Username:        req.Username,
		Password:        req.Password,
		FullName:        req.FullName,
		Role:            enum.UserRole(req.Role),
		PermissionSlugs: req.PermissionSlugs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	actorID := GetUserID(c)
	details := user.Username
	h.activityService.Record(c.Request.Context(), actorID, "users.created", &details)

	response.Created(c, "User created", user)
}

// Get returns one user with permissions
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User retrieved", user)
}

// List handles user listing
func (h *UserHandler) List(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	users, total, err := h.userService.ListUsers(c.Request.Context(), &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	params.Validate()
	page := pagination.NewPagination(params.Page, params.PerPage, total)
	response.SuccessWithPagination(c, "Users retrieved", users, page)
}

// SetActive enables or disables a user account
func (h *UserHandler) SetActive(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req request.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Active flag is required")
		return
	}

	if err := h.userService.SetUserActive(c.Request.Context(), id, *req.Active); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User updated", nil)
}

// GrantPermission adds a capability slug to a user
func (h *UserHandler) GrantPermission(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req request.PermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Permission slug is required")
		return
	}

	if err := h.userService.GrantPermission(c.Request.Context(), id, req.Slug); err != nil {
		response.Error(c, err)
		return
	}

	actorID := GetUserID(c)
	details := req.Slug
	h.activityService.Record(c.Request.Context(), actorID, "users.permission_granted", &details)

	response.OK(c, "Permission granted", nil)
}

// RevokePermission removes a capability slug from a user
func (h *UserHandler) RevokePermission(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req request.PermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Permission slug is required")
		return
	}

	if err := h.userService.RevokePermission(c.Request.Context(), id, req.Slug); err != nil {
		response.Error(c, err)
		return
	}

	actorID := GetUserID(c)
	details := req.Slug
	h.activityService.Record(c.Request.Context(), actorID, "users.permission_revoked", &details)

	response.OK(c, "Permission revoked", nil)
}

// ListPermissions lists all known capability slugs
func (h *UserHandler) ListPermissions(c *gin.Context) {
	permissions, err := h.userService.ListPermissions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Permissions retrieved", permissions)
}

// RecentActivity returns the newest activity log entries
func (h *UserHandler) RecentActivity(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			response.BadRequest(c, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	entries, err := h.activityService.Recent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Activity retrieved", entries)
}
