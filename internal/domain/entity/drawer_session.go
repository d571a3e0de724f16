package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DrawerSession is a cashier's open-to-close register period. Every sale and
// sales return must belong to an open session.
type DrawerSession struct {
	ID                uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID            uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	StartTime         time.Time          `gorm:"not null" json:"start_time"`
	EndTime           *time.Time         `json:"end_time,omitempty"`
	OpeningCash       decimal.Decimal    `gorm:"type:decimal(15,2);not null;default:0" json:"opening_cash"`
	ClosingCashSystem decimal.Decimal    `gorm:"type:decimal(15,2);not null;default:0" json:"closing_cash_system"`
	ClosingCashActual *decimal.Decimal   `gorm:"type:decimal(15,2)" json:"closing_cash_actual,omitempty"`
	Variance          *decimal.Decimal   `gorm:"type:decimal(15,2)" json:"variance,omitempty"`
	Status            enum.SessionStatus `gorm:"default:0" json:"status"`
	Remarks           *string            `gorm:"size:255" json:"remarks,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`

	// Relationships
	User      User             `gorm:"foreignKey:UserID" json:"-"`
	Sales     []Sale           `gorm:"foreignKey:SessionID" json:"-"`
	Returns   []SalesReturn    `gorm:"foreignKey:SessionID" json:"-"`
	CashFlows []DrawerCashFlow `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"cash_flows,omitempty"`
}

// BeforeCreate generates a UUID before creating a new drawer session
func (s *DrawerSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DrawerSession model
func (DrawerSession) TableName() string {
	return "drawer_sessions"
}

// IsOpen reports whether the session can still accept transactions.
func (s *DrawerSession) IsOpen() bool {
	return s.Status == enum.SessionStatusOpen
}

// DrawerCashFlow records drawer cash moving outside of a sale: safe drops,
// petty-cash pay outs and pay ins.
type DrawerCashFlow struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	SessionID uuid.UUID         `gorm:"type:uuid;not null;index" json:"session_id"`
	Amount    decimal.Decimal   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type      enum.CashFlowType `gorm:"size:20;not null" json:"type"`
	Reason    *string           `gorm:"size:255" json:"reason,omitempty"`
	CreatedAt time.Time         `json:"created_at"`

	// Relationships
	Session DrawerSession `gorm:"foreignKey:SessionID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new cash flow record
func (f *DrawerCashFlow) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DrawerCashFlow model
func (DrawerCashFlow) TableName() string {
	return "drawer_cash_flows"
}
