package request

import "github.com/shopspring/decimal"

// OpenSessionRequest represents a drawer session open request
type OpenSessionRequest struct {
	OpeningCash decimal.Decimal `json:"opening_cash"`
}

// CloseSessionRequest represents a drawer session close request. ActualCash
// is the counted drawer amount.
type CloseSessionRequest struct {
	ActualCash decimal.Decimal `json:"actual_cash"`
	Remarks    *string         `json:"remarks"`
}

// CashFlowRequest represents a drawer cash movement outside of a sale
type CashFlowRequest struct {
	Type   string          `json:"type" binding:"required,oneof=safe_drop pay_out pay_in"`
	Amount decimal.Decimal `json:"amount"`
	Reason *string         `json:"reason"`
}
