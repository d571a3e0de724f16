package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	"github.com/nexuspos/pos-api/pkg/pagination"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// GetWithPermissions loads a user together with the granted permission set
	GetWithPermissions(ctx context.Context, id uuid.UUID) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.User, int64, error)
	GrantPermission(ctx context.Context, userID, permissionID uuid.UUID) error
	RevokePermission(ctx context.Context, userID, permissionID uuid.UUID) error
}

// PermissionRepository defines the interface for permission data operations
type PermissionRepository interface {
	Create(ctx context.Context, permission *entity.Permission) error
	GetBySlug(ctx context.Context, slug string) (*entity.Permission, error)
	List(ctx context.Context) ([]entity.Permission, error)
}

// ActivityLogRepository records the append-only user action trail
type ActivityLogRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error
	ListRecent(ctx context.Context, limit int) ([]entity.ActivityLog, error)
}
