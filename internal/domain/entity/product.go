package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a sellable item in the catalog. Stock level and costing
// live on the product's Inventory record, not on the product itself.
type Product struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID  *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Barcode     *string        `gorm:"size:100;uniqueIndex" json:"barcode,omitempty"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	UnitMeasure string         `gorm:"size:50;default:'pcs'" json:"unit_measure"`
	AlertQty    decimal.Decimal `gorm:"type:decimal(18,4);default:0" json:"alert_qty"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category  *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Inventory *Inventory `gorm:"foreignKey:ProductID" json:"inventory,omitempty"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether on-hand quantity has fallen to the alert level.
// Requires Inventory to be loaded.
func (p *Product) IsLowStock() bool {
	return p.Inventory != nil && p.Inventory.Quantity.LessThanOrEqual(p.AlertQty)
}

// Inventory is the single source of truth for a product's stock level.
// Exactly one row exists per product; every stock-affecting operation
// mutates this row in place.
type Inventory struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"product_id"`
	Quantity     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"quantity"`
	AverageCost  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"average_cost"`
	SellingPrice decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"selling_price"`
	ExpiryDate   *time.Time      `json:"expiry_date,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new inventory record
func (i *Inventory) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Inventory model
func (Inventory) TableName() string {
	return "inventories"
}

// Category represents a product category
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
