package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	"github.com/nexuspos/pos-api/internal/domain/enum"
	"github.com/nexuspos/pos-api/internal/domain/repository"
	"github.com/nexuspos/pos-api/pkg/apperror"
	"github.com/nexuspos/pos-api/pkg/pagination"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles user administration and permission grants.
type UserService struct {
	userRepo       repository.UserRepository
	permissionRepo repository.PermissionRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, permissionRepo repository.PermissionRepository) *UserService {
	return &UserService{userRepo: userRepo, permissionRepo: permissionRepo}
}

// CreateUserInput represents the create user input
type CreateUserInput struct {
	Username        string
	Password        string
	FullName        *string
	Role            enum.UserRole
	PermissionSlugs []string
}

// CreateUser creates a user with a bcrypt-hashed password and the given
// permission slugs.
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	if input.Username == "" {
		return nil, apperror.NewBadRequestError("Username is required")
	}
	if len(input.Password) < 8 {
		return nil, apperror.NewBadRequestError("Password must be at least 8 characters")
	}

	existing, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Username already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = enum.UserRoleCashier
	}

	permissions := make([]entity.Permission, 0, len(input.PermissionSlugs))
	for _, slug := range input.PermissionSlugs {
		permission, err := s.permissionRepo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if permission == nil {
			return nil, apperror.NewBadRequestError("Unknown permission: " + slug)
		}
		permissions = append(permissions, *permission)
	}

	user := &entity.User{
		Username:     input.Username,
		PasswordHash: string(hashed),
		FullName:     input.FullName,
		Role:         role,
		IsActive:     true,
		Permissions:  permissions,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser loads a user with their permission set.
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetWithPermissions(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// ListUsers returns users page by page.
func (s *UserService) ListUsers(ctx context.Context, params *pagination.PaginationParams) ([]entity.User, int64, error) {
	return s.userRepo.List(ctx, params)
}

// SetUserActive enables or disables a user account.
func (s *UserService) SetUserActive(ctx context.Context, id uuid.UUID, active bool) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	user.IsActive = active
	return s.userRepo.Update(ctx, user)
}

// ChangePassword replaces a user's password hash.
func (s *UserService) ChangePassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	if len(newPassword) < 8 {
		return apperror.NewBadRequestError("Password must be at least 8 characters")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashed)
	return s.userRepo.Update(ctx, user)
}

// GrantPermission grants a permission slug to a user.
func (s *UserService) GrantPermission(ctx context.Context, userID uuid.UUID, slug string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	permission, err := s.permissionRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if permission == nil {
		return apperror.NewNotFoundError("Permission")
	}

	return s.userRepo.GrantPermission(ctx, userID, permission.ID)
}

// RevokePermission removes a permission slug from a user.
func (s *UserService) RevokePermission(ctx context.Context, userID uuid.UUID, slug string) error {
	permission, err := s.permissionRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if permission == nil {
		return apperror.NewNotFoundError("Permission")
	}

	return s.userRepo.RevokePermission(ctx, userID, permission.ID)
}

// ListPermissions returns the full permission catalogue.
func (s *UserService) ListPermissions(ctx context.Context) ([]entity.Permission, error) {
	return s.permissionRepo.List(ctx)
}
