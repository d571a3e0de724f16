package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale is a committed sales transaction. A sale and its items and payments
// are written atomically and are immutable afterwards, except for the
// QuantityReturned counter on each item.
type Sale struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo      string             `gorm:"size:100;unique;not null" json:"invoice_no"`
	CustomerID     *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	UserID         uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	SessionID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"session_id"`
	SaleDate       time.Time          `gorm:"not null" json:"sale_date"`
	SubTotal       decimal.Decimal    `gorm:"type:decimal(15,2);not null;default:0" json:"sub_total"`
	TaxAmount      decimal.Decimal    `gorm:"type:decimal(15,2);not null;default:0" json:"tax_amount"`
	DiscountAmount decimal.Decimal    `gorm:"type:decimal(15,2);not null;default:0" json:"discount_amount"`
	GrandTotal     decimal.Decimal    `gorm:"type:decimal(15,2);not null;default:0" json:"grand_total"`
	PaymentStatus  enum.PaymentStatus `gorm:"default:0" json:"payment_status"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`

	// Relationships
	Customer *Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	User     User          `gorm:"foreignKey:UserID" json:"-"`
	Session  DrawerSession `gorm:"foreignKey:SessionID" json:"-"`
	Items    []SalesItem   `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Payments []Payment     `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SalesItem is a single product line within a sale. TotalPrice is always
// recomputed as Quantity x UnitPrice when the line is written.
type SalesItem struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SaleID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity         decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	UnitPrice        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	TotalPrice       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_price"`
	QuantityReturned decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"quantity_returned"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	// Relationships
	Sale    Sale    `gorm:"foreignKey:SaleID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sales item
func (si *SalesItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalesItem model
func (SalesItem) TableName() string {
	return "sales_items"
}

// ReturnableQuantity is how much of this line can still be returned.
func (si *SalesItem) ReturnableQuantity() decimal.Decimal {
	return si.Quantity.Sub(si.QuantityReturned)
}

// Payment records money received against a sale
type Payment struct {
	ID       uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	SaleID   uuid.UUID          `gorm:"type:uuid;not null;index" json:"sale_id"`
	Amount   decimal.Decimal    `gorm:"type:decimal(15,2);not null" json:"amount"`
	Method   enum.PaymentMethod `gorm:"size:50;not null" json:"method"`
	PaidAt   time.Time          `gorm:"not null" json:"paid_at"`
	CreatedAt time.Time         `json:"created_at"`

	// Relationships
	Sale Sale `gorm:"foreignKey:SaleID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
