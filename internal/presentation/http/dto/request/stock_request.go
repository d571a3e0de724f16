package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdjustmentItemRequest is one counted product line in a stock take
type AdjustmentItemRequest struct {
	ProductID   uuid.UUID       `json:"product_id" binding:"required"`
	PhysicalQty decimal.Decimal `json:"physical_qty"`
}

// CreateAdjustmentRequest represents a manual stock correction request
type CreateAdjustmentRequest struct {
	Reason string                  `json:"reason" binding:"required"`
	Notes  *string                 `json:"notes"`
	Items  []AdjustmentItemRequest `json:"items" binding:"required,min=1,dive"`
}
