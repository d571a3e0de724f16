package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GRNItemRequest is one received product line
type GRNItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// CreateGRNRequest represents a goods receipt request
type CreateGRNRequest struct {
	SupplierID  uuid.UUID        `json:"supplier_id" binding:"required"`
	ReferenceNo *string          `json:"reference_no"`
	Items       []GRNItemRequest `json:"items" binding:"required,min=1,dive"`
}

// GRNFilterRequest represents GRN list filter parameters
type GRNFilterRequest struct {
	SupplierID string `form:"supplier_id"`
	Search     string `form:"search"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// PurchaseReturnItemRequest is one line sent back against a GRN item
type PurchaseReturnItemRequest struct {
	GRNItemID uuid.UUID       `json:"grn_item_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    *string         `json:"reason"`
}

// CreatePurchaseReturnRequest represents a purchase return request
type CreatePurchaseReturnRequest struct {
	Items []PurchaseReturnItemRequest `json:"items" binding:"required,min=1,dive"`
}
