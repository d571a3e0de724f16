package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItemRequest is one scanned line on a checkout request. UnitPrice
// overrides the catalog selling price when present.
type SaleItemRequest struct {
	ProductID uuid.UUID        `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal  `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest represents a checkout request
type CreateSaleRequest struct {
	CustomerID     *uuid.UUID        `json:"customer_id"`
	Items          []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	TaxAmount      decimal.Decimal   `json:"tax_amount"`
	DiscountAmount decimal.Decimal   `json:"discount_amount"`
	PaidAmount     decimal.Decimal   `json:"paid_amount"`
	PaymentMethod  string            `json:"payment_method" binding:"required"`
}

// SaleFilterRequest represents sale list filter parameters
type SaleFilterRequest struct {
	StartDate  string `form:"start_date"` // YYYY-MM-DD
	EndDate    string `form:"end_date"`   // YYYY-MM-DD
	CustomerID string `form:"customer_id"`
	UserID     string `form:"user_id"`
	SessionID  string `form:"session_id"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// ReturnItemRequest is one returned line against a sale item
type ReturnItemRequest struct {
	SaleItemID uuid.UUID       `json:"sale_item_id" binding:"required"`
	Quantity   decimal.Decimal `json:"quantity"`
	Condition  string          `json:"condition" binding:"required"`
}

// CreateReturnRequest represents a sales return request
type CreateReturnRequest struct {
	Reason *string             `json:"reason"`
	Items  []ReturnItemRequest `json:"items" binding:"required,min=1,dive"`
}
