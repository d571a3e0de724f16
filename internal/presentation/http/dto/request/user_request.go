package request

// CreateUserRequest represents a user creation request
type CreateUserRequest struct {
	Username        string   `json:"username" binding:"required,min=3,max=50"`
	Password        string   `json:"password" binding:"required,min=8"`
	FullName        *string  `json:"full_name"`
	Role            string   `json:"role" binding:"omitempty,oneof=admin manager cashier"`
	PermissionSlugs []string `json:"permission_slugs"`
}

// SetActiveRequest toggles a user's active flag
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// PermissionRequest grants or revokes one capability slug
type PermissionRequest struct {
	Slug string `json:"slug" binding:"required"`
}
