package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SalesReturn is a compensating transaction against a committed sale.
type SalesReturn struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ReturnNo    string          `gorm:"size:100;unique;not null" json:"return_no"`
	SaleID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"sale_id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	SessionID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"session_id"`
	ReturnDate  time.Time       `gorm:"not null" json:"return_date"`
	TotalRefund decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"total_refund"`
	Reason      *string         `gorm:"size:255" json:"reason,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`

	// Relationships
	Sale    Sale              `gorm:"foreignKey:SaleID" json:"-"`
	User    User              `gorm:"foreignKey:UserID" json:"-"`
	Session DrawerSession     `gorm:"foreignKey:SessionID" json:"-"`
	Items   []SalesReturnItem `gorm:"foreignKey:ReturnID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sales return
func (r *SalesReturn) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalesReturn model
func (SalesReturn) TableName() string {
	return "sales_returns"
}

// SalesReturnItem is a returned line referencing the original sales item.
type SalesReturnItem struct {
	ID           uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	ReturnID     uuid.UUID            `gorm:"type:uuid;not null;index" json:"return_id"`
	SaleItemID   uuid.UUID            `gorm:"type:uuid;not null;index" json:"sale_item_id"`
	ProductID    uuid.UUID            `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity     decimal.Decimal      `gorm:"type:decimal(18,4);not null" json:"quantity"`
	RefundAmount decimal.Decimal      `gorm:"type:decimal(15,2);not null" json:"refund_amount"`
	Condition    enum.ReturnCondition `gorm:"size:20;default:'good'" json:"condition"`
	CreatedAt    time.Time            `json:"created_at"`

	// Relationships
	Return   SalesReturn `gorm:"foreignKey:ReturnID" json:"-"`
	SaleItem SalesItem   `gorm:"foreignKey:SaleItemID" json:"-"`
	Product  Product     `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sales return item
func (ri *SalesReturnItem) BeforeCreate(tx *gorm.DB) error {
	if ri.ID == uuid.Nil {
		ri.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalesReturnItem model
func (SalesReturnItem) TableName() string {
	return "sales_return_items"
}
