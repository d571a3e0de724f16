package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	"github.com/nexuspos/pos-api/internal/domain/enum"
	"github.com/nexuspos/pos-api/internal/domain/repository"
	"github.com/nexuspos/pos-api/pkg/apperror"
	"github.com/nexuspos/pos-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// ReturnService handles sales returns: refund calculation, conditional
// restocking and the per-line returned-quantity bookkeeping.
type ReturnService struct {
	txManager    repository.TxManager
	stockService *StockService
}

// NewReturnService creates a new return service
func NewReturnService(txManager repository.TxManager, stockService *StockService) *ReturnService {
	return &ReturnService{txManager: txManager, stockService: stockService}
}

// ReturnItemInput is one returned line referencing the original sale item.
type ReturnItemInput struct {
	SaleItemID uuid.UUID
	Quantity   decimal.Decimal
	Condition  enum.ReturnCondition
}

// ProcessReturnInput represents a sales return request.
type ProcessReturnInput struct {
	UserID uuid.UUID
	SaleID uuid.UUID
	Reason *string
	Items  []ReturnItemInput
}

// ReturnResult reports the outcome of a return attempt.
type ReturnResult struct {
	Success     bool
	Message     string
	Return      *entity.SalesReturn
	TotalRefund decimal.Decimal
	Err         *apperror.AppError
}

func failedReturn(err *apperror.AppError) (*ReturnResult, error) {
	return &ReturnResult{Success: false, Message: err.Message, Err: err}, nil
}

// ProcessReturn validates every returned line against the quantity still
// returnable on the original sale item, then writes the return document,
// bumps the returned counters and restocks items in good condition — all in
// one transaction. A quantity exceeding the returnable remainder rejects
// the whole request; it is never clamped down.
func (s *ReturnService) ProcessReturn(ctx context.Context, input *ProcessReturnInput) (*ReturnResult, error) {
	if len(input.Items) == 0 {
		return failedReturn(apperror.NewBadRequestError("Return requires at least one item"))
	}
	for _, item := range input.Items {
		if !item.Quantity.IsPositive() {
			return failedReturn(apperror.NewBadRequestError("Return quantity must be positive"))
		}
	}

	uow, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	session, err := uow.Sessions().GetOpenByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return failedReturn(apperror.ErrNoOpenSession)
	}

	sale, err := uow.Sales().GetByID(ctx, input.SaleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return failedReturn(apperror.NewNotFoundError("Sale"))
	}

	// First pass: resolve and validate every line before anything is
	// written, so an over-quantity line rejects the whole request.
	type resolvedLine struct {
		saleItem *entity.SalesItem
		quantity decimal.Decimal
		refund   decimal.Decimal
		cond     enum.ReturnCondition
	}
	lines := make([]resolvedLine, 0, len(input.Items))
	totalRefund := decimal.Zero
	requested := make(map[uuid.UUID]decimal.Decimal)
	saleItems := make(map[uuid.UUID]*entity.SalesItem)

	for _, in := range input.Items {
		saleItem, ok := saleItems[in.SaleItemID]
		if !ok {
			var err error
			saleItem, err = uow.Sales().GetItemByID(ctx, in.SaleItemID)
			if err != nil {
				return nil, err
			}
			if saleItem == nil || saleItem.SaleID != sale.ID {
				return failedReturn(apperror.NewNotFoundError("Sale item"))
			}
			saleItems[in.SaleItemID] = saleItem
		}

		// The same sale item may appear on several lines; the bound
		// applies to their sum.
		requested[saleItem.ID] = requested[saleItem.ID].Add(in.Quantity)
		if requested[saleItem.ID].GreaterThan(saleItem.ReturnableQuantity()) {
			return failedReturn(apperror.NewBadRequestError(
				"Return quantity exceeds the returnable quantity on the sale item"))
		}

		refund := saleItem.UnitPrice.Mul(in.Quantity).Round(2)
		totalRefund = totalRefund.Add(refund)
		lines = append(lines, resolvedLine{
			saleItem: saleItem,
			quantity: in.Quantity,
			refund:   refund,
			cond:     in.Condition,
		})
	}

	ret := &entity.SalesReturn{
		ReturnNo:    utils.NewDocumentNo("SRN"),
		SaleID:      sale.ID,
		UserID:      input.UserID,
		SessionID:   session.ID,
		ReturnDate:  time.Now(),
		TotalRefund: totalRefund,
		Reason:      input.Reason,
	}
	if err := uow.SalesReturns().Create(ctx, ret); err != nil {
		return nil, err
	}

	items := make([]entity.SalesReturnItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, entity.SalesReturnItem{
			ReturnID:     ret.ID,
			SaleItemID:   line.saleItem.ID,
			ProductID:    line.saleItem.ProductID,
			Quantity:     line.quantity,
			RefundAmount: line.refund,
			Condition:    line.cond,
		})

		line.saleItem.QuantityReturned = line.saleItem.QuantityReturned.Add(line.quantity)
		if err := uow.Sales().UpdateItem(ctx, line.saleItem); err != nil {
			return nil, err
		}

		// Damaged goods never go back on the shelf.
		if line.cond == enum.ReturnConditionGood {
			product, err := uow.Products().GetByID(ctx, line.saleItem.ProductID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				return failedReturn(apperror.NewNotFoundError("Product"))
			}
			if err := s.stockService.applyDelta(ctx, uow, product, line.quantity, nil); err != nil {
				return nil, err
			}
		}
	}

	if err := uow.SalesReturns().CreateItems(ctx, items); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	ret.Items = items
	return &ReturnResult{
		Success:     true,
		Message:     "Return processed",
		Return:      ret,
		TotalRefund: totalRefund,
	}, nil
}

// GetReturn loads a return document with its items.
func (s *ReturnService) GetReturn(ctx context.Context, id uuid.UUID) (*entity.SalesReturn, error) {
	uow, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	ret, err := uow.SalesReturns().GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, apperror.NewNotFoundError("Sales return")
	}
	return ret, nil
}

// ListReturnsBySale returns all return documents against one sale.
func (s *ReturnService) ListReturnsBySale(ctx context.Context, saleID uuid.UUID) ([]entity.SalesReturn, error) {
	uow, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	return uow.SalesReturns().ListBySale(ctx, saleID)
}
