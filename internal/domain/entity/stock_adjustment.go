package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockAdjustment is a manual correction document produced by a stock take
// or similar count. It mutates the same inventory rows as sales and receipts
// but is independent of both flows.
type StockAdjustment struct {
	ID             uuid.UUID             `gorm:"type:uuid;primary_key" json:"id"`
	AdjustmentNo   string                `gorm:"size:100;unique;not null" json:"adjustment_no"`
	UserID         uuid.UUID             `gorm:"type:uuid;not null;index" json:"user_id"`
	AdjustmentDate time.Time             `gorm:"not null" json:"adjustment_date"`
	Reason         enum.AdjustmentReason `gorm:"size:50;not null" json:"reason"`
	Notes          *string               `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`

	// Relationships
	User  User             `gorm:"foreignKey:UserID" json:"-"`
	Items []AdjustmentItem `gorm:"foreignKey:AdjustmentID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new stock adjustment
func (a *StockAdjustment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockAdjustment model
func (StockAdjustment) TableName() string {
	return "stock_adjustments"
}

// AdjustmentItem captures the counted reality for one product:
// DifferenceQty = PhysicalQty - SystemQty, the signed delta applied to stock.
type AdjustmentItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AdjustmentID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"adjustment_id"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	SystemQty     decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"system_qty"`
	PhysicalQty   decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"physical_qty"`
	DifferenceQty decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"difference_qty"`
	CreatedAt     time.Time       `json:"created_at"`

	// Relationships
	Adjustment StockAdjustment `gorm:"foreignKey:AdjustmentID" json:"-"`
	Product    Product         `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new adjustment item
func (ai *AdjustmentItem) BeforeCreate(tx *gorm.DB) error {
	if ai.ID == uuid.Nil {
		ai.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AdjustmentItem model
func (AdjustmentItem) TableName() string {
	return "adjustment_items"
}
