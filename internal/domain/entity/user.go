package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// User is a system operator (cashier, manager, admin).
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Username     string         `gorm:"size:100;unique;not null" json:"username"`
	PasswordHash string         `gorm:"size:255;not null" json:"-"`
	FullName     *string        `gorm:"size:255" json:"full_name,omitempty"`
	Role         enum.UserRole  `gorm:"size:50;default:'cashier'" json:"role"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Permissions []Permission      `gorm:"many2many:user_permissions;foreignKey:ID;joinForeignKey:user_id;References:ID;joinReferences:permission_id" json:"permissions,omitempty"`
	Sessions    []DrawerSession   `gorm:"foreignKey:UserID" json:"-"`
	Sales       []Sale            `gorm:"foreignKey:UserID" json:"-"`
	Adjustments []StockAdjustment `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// HasPermission checks if the user has been granted a permission slug
func (u *User) HasPermission(slug string) bool {
	for _, p := range u.Permissions {
		if p.Slug == slug {
			return true
		}
	}
	return false
}

// PermissionSlugs returns the capability set granted to the user.
func (u *User) PermissionSlugs() []string {
	slugs := make([]string, 0, len(u.Permissions))
	for _, p := range u.Permissions {
		slugs = append(slugs, p.Slug)
	}
	return slugs
}

// Permission is a grantable capability identified by its slug
// (e.g. "sales.create", "stock.adjust").
type Permission struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Slug        string    `gorm:"size:100;unique;not null" json:"slug"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	ModuleGroup string    `gorm:"size:100" json:"module_group"`
	Description *string   `gorm:"size:255" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new permission
func (p *Permission) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Permission model
func (Permission) TableName() string {
	return "permissions"
}

// ActivityLog is an append-only audit trail of user actions.
type ActivityLog struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action    string     `gorm:"size:100;not null" json:"action"`
	Details   *string    `gorm:"type:text" json:"details,omitempty"`
	CreatedAt time.Time  `json:"created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new activity log entry
func (l *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ActivityLog model
func (ActivityLog) TableName() string {
	return "activity_logs"
}
