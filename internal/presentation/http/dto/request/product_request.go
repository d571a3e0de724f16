package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name         string          `json:"name" binding:"required,min=2,max=255"`
	Barcode      *string         `json:"barcode" binding:"omitempty,max=100"`
	Description  *string         `json:"description"`
	CategoryID   *uuid.UUID      `json:"category_id"`
	UnitMeasure  string          `json:"unit_measure" binding:"omitempty,max=20"`
	AlertQty     decimal.Decimal `json:"alert_qty"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	ExpiryDate   *time.Time      `json:"expiry_date"`
}

// UpdateProductRequest represents a product update request. Nil fields are
// left unchanged.
type UpdateProductRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=2,max=255"`
	Barcode      *string          `json:"barcode" binding:"omitempty,max=100"`
	Description  *string          `json:"description"`
	CategoryID   *uuid.UUID       `json:"category_id"`
	UnitMeasure  *string          `json:"unit_measure" binding:"omitempty,max=20"`
	AlertQty     *decimal.Decimal `json:"alert_qty"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
	ExpiryDate   *time.Time       `json:"expiry_date"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	CategoryID string `form:"category_id"`
	ActiveOnly bool   `form:"active_only"`
	LowStock   bool   `form:"low_stock"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// CreateCategoryRequest represents a category creation request
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}
