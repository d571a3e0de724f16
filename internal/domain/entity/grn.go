package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GRN is a goods receipt note: stock received from a supplier. Receiving a
// GRN increases inventory and recomputes the moving average cost.
type GRN struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	GRNNo        string          `gorm:"size:100;unique;not null" json:"grn_no"`
	SupplierID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"supplier_id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	ReferenceNo  *string         `gorm:"size:100" json:"reference_no,omitempty"`
	ReceivedDate time.Time       `gorm:"not null" json:"received_date"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"total_amount"`
	CreatedAt    time.Time       `json:"created_at"`

	// Relationships
	Supplier Supplier  `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Items    []GRNItem `gorm:"foreignKey:GRNID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new GRN
func (g *GRN) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the GRN model
func (GRN) TableName() string {
	return "grns"
}

// GRNItem is a received line. QuantityReturned tracks how much of the line
// has since gone back to the supplier as a purchase return.
type GRNItem struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	GRNID            uuid.UUID       `gorm:"type:uuid;not null;index" json:"grn_id"`
	ProductID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity         decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	UnitCost         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"unit_cost"`
	TotalCost        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_cost"`
	QuantityReturned decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"quantity_returned"`
	CreatedAt        time.Time       `json:"created_at"`

	// Relationships
	GRN     GRN     `gorm:"foreignKey:GRNID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new GRN item
func (gi *GRNItem) BeforeCreate(tx *gorm.DB) error {
	if gi.ID == uuid.Nil {
		gi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the GRNItem model
func (GRNItem) TableName() string {
	return "grn_items"
}

// ReturnableQuantity is how much of this received line can still go back
// to the supplier.
func (gi *GRNItem) ReturnableQuantity() decimal.Decimal {
	return gi.Quantity.Sub(gi.QuantityReturned)
}

// PurchaseReturn records goods sent back to a supplier against earlier GRNs.
type PurchaseReturn struct {
	ID          uuid.UUID                 `gorm:"type:uuid;primary_key" json:"id"`
	ReturnNo    string                    `gorm:"size:100;unique;not null" json:"return_no"`
	SupplierID  uuid.UUID                 `gorm:"type:uuid;not null;index" json:"supplier_id"`
	UserID      uuid.UUID                 `gorm:"type:uuid;not null;index" json:"user_id"`
	ReturnDate  time.Time                 `gorm:"not null" json:"return_date"`
	Status      enum.PurchaseReturnStatus `gorm:"default:0" json:"status"`
	TotalRefund decimal.Decimal           `gorm:"type:decimal(15,2);not null;default:0" json:"total_refund"`
	CreatedAt   time.Time                 `json:"created_at"`

	// Relationships
	Supplier Supplier             `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	User     User                 `gorm:"foreignKey:UserID" json:"-"`
	Items    []PurchaseReturnItem `gorm:"foreignKey:ReturnID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase return
func (pr *PurchaseReturn) BeforeCreate(tx *gorm.DB) error {
	if pr.ID == uuid.Nil {
		pr.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseReturn model
func (PurchaseReturn) TableName() string {
	return "purchase_returns"
}

// PurchaseReturnItem is a returned line referencing the original GRN item.
type PurchaseReturnItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ReturnID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"return_id"`
	GRNItemID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"grn_item_id"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity       decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	RefundUnitCost decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"refund_unit_cost"`
	TotalRefund    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_refund"`
	Reason         *string         `gorm:"size:255" json:"reason,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`

	// Relationships
	Return  PurchaseReturn `gorm:"foreignKey:ReturnID" json:"-"`
	GRNItem GRNItem        `gorm:"foreignKey:GRNItemID" json:"-"`
	Product Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase return item
func (pri *PurchaseReturnItem) BeforeCreate(tx *gorm.DB) error {
	if pri.ID == uuid.Nil {
		pri.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseReturnItem model
func (PurchaseReturnItem) TableName() string {
	return "purchase_return_items"
}
