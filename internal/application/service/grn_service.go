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

// GRNService handles goods receipts and returns to supplier. Receiving
// increases stock and folds the received cost into the moving average;
// returning decreases stock against the originally received lines.
type GRNService struct {
	txManager    repository.TxManager
	stockService *StockService
	supplierRepo repository.SupplierRepository
}

// NewGRNService creates a new goods receipt service
func NewGRNService(txManager repository.TxManager, stockService *StockService, supplierRepo repository.SupplierRepository) *GRNService {
	return &GRNService{
		txManager:    txManager,
		stockService: stockService,
		supplierRepo: supplierRepo,
	}
}

// GRNItemInput is one received product line.
type GRNItemInput struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
	UnitCost  decimal.Decimal
}

// ReceiveGoodsInput represents a goods receipt request.
type ReceiveGoodsInput struct {
	UserID      uuid.UUID
	SupplierID  uuid.UUID
	ReferenceNo *string
	Items       []GRNItemInput
}

// ReceiveGoods writes the GRN header and items and applies every stock
// increase with its moving-average recompute in one transaction.
func (s *GRNService) ReceiveGoods(ctx context.Context, input *ReceiveGoodsInput) (*entity.GRN, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Goods receipt requires at least one item")
	}
	for _, item := range input.Items {
		if !item.Quantity.IsPositive() {
			return nil, apperror.NewBadRequestError("Received quantity must be positive")
		}
		if item.UnitCost.IsNegative() {
			return nil, apperror.NewBadRequestError("Unit cost cannot be negative")
		}
	}

	supplier, err := s.supplierRepo.GetByID(ctx, input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	uow, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	grn := &entity.GRN{
		GRNNo:        utils.NewDocumentNo("GRN"),
		SupplierID:   input.SupplierID,
		UserID:       input.UserID,
		ReferenceNo:  input.ReferenceNo,
		ReceivedDate: time.Now(),
	}

	totalAmount := decimal.Zero
	items := make([]entity.GRNItem, 0, len(input.Items))
	for _, in := range input.Items {
		totalCost := in.UnitCost.Mul(in.Quantity).Round(2)
		totalAmount = totalAmount.Add(totalCost)
		items = append(items, entity.GRNItem{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			UnitCost:  in.UnitCost,
			TotalCost: totalCost,
		})
	}
	grn.TotalAmount = totalAmount

	if err := uow.GRNs().Create(ctx, grn); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].GRNID = grn.ID
	}
	if err := uow.GRNs().CreateItems(ctx, items); err != nil {
		return nil, err
	}

	for _, in := range input.Items {
		product, err := uow.Products().GetByID(ctx, in.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, apperror.NewNotFoundError("Product")
		}
		unitCost := in.UnitCost
		if err := s.stockService.applyDelta(ctx, uow, product, in.Quantity, &unitCost); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	grn.Items = items
	return grn, nil
}

// PurchaseReturnItemInput is one line going back to the supplier.
type PurchaseReturnItemInput struct {
	GRNItemID uuid.UUID
	Quantity  decimal.Decimal
	Reason    *string
}

// ReturnToSupplierInput represents a purchase return request against a GRN.
type ReturnToSupplierInput struct {
	UserID uuid.UUID
	GRNID  uuid.UUID
	Items  []PurchaseReturnItemInput
}

// ReturnToSupplier sends previously received goods back. Each line is
// bounded by the quantity still returnable on the GRN item, and stock is
// decremented under the usual non-negativity policy.
func (s *GRNService) ReturnToSupplier(ctx context.Context, input *ReturnToSupplierInput) (*entity.PurchaseReturn, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Purchase return requires at least one item")
	}
	for _, item := range input.Items {
		if !item.Quantity.IsPositive() {
			return nil, apperror.NewBadRequestError("Return quantity must be positive")
		}
	}

	uow, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	grn, err := uow.GRNs().GetByID(ctx, input.GRNID)
	if err != nil {
		return nil, err
	}
	if grn == nil {
		return nil, apperror.NewNotFoundError("Goods receipt")
	}

	type resolvedLine struct {
		grnItem *entity.GRNItem
		qty     decimal.Decimal
		refund  decimal.Decimal
		reason  *string
	}
	lines := make([]resolvedLine, 0, len(input.Items))
	grnItems := make(map[uuid.UUID]*entity.GRNItem)
	requested := make(map[uuid.UUID]decimal.Decimal)
	totalRefund := decimal.Zero

	for _, in := range input.Items {
		grnItem, ok := grnItems[in.GRNItemID]
		if !ok {
			var err error
			grnItem, err = uow.GRNs().GetItemByID(ctx, in.GRNItemID)
			if err != nil {
				return nil, err
			}
			if grnItem == nil || grnItem.GRNID != grn.ID {
				return nil, apperror.NewNotFoundError("Goods receipt item")
			}
			grnItems[in.GRNItemID] = grnItem
		}

		requested[grnItem.ID] = requested[grnItem.ID].Add(in.Quantity)
		if requested[grnItem.ID].GreaterThan(grnItem.ReturnableQuantity()) {
			return nil, apperror.NewBadRequestError(
				"Return quantity exceeds the returnable quantity on the receipt item")
		}

		refund := grnItem.UnitCost.Mul(in.Quantity).Round(2)
		totalRefund = totalRefund.Add(refund)
		lines = append(lines, resolvedLine{
			grnItem: grnItem,
			qty:     in.Quantity,
			refund:  refund,
			reason:  in.Reason,
		})
	}

	ret := &entity.PurchaseReturn{
		ReturnNo:    utils.NewDocumentNo("PRN"),
		SupplierID:  grn.SupplierID,
		UserID:      input.UserID,
		ReturnDate:  time.Now(),
		Status:      enum.PurchaseReturnStatusCompleted,
		TotalRefund: totalRefund,
	}
	if err := uow.PurchaseReturns().Create(ctx, ret); err != nil {
		return nil, err
	}

	items := make([]entity.PurchaseReturnItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, entity.PurchaseReturnItem{
			ReturnID:       ret.ID,
			GRNItemID:      line.grnItem.ID,
			ProductID:      line.grnItem.ProductID,
			Quantity:       line.qty,
			RefundUnitCost: line.grnItem.UnitCost,
			TotalRefund:    line.refund,
			Reason:         line.reason,
		})

		line.grnItem.QuantityReturned = line.grnItem.QuantityReturned.Add(line.qty)
		if err := uow.GRNs().UpdateItem(ctx, line.grnItem); err != nil {
			return nil, err
		}

		product, err := uow.Products().GetByID(ctx, line.grnItem.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, apperror.NewNotFoundError("Product")
		}
		if err := s.stockService.applyDelta(ctx, uow, product, line.qty.Neg(), nil); err != nil {
			return nil, err
		}
	}

	if err := uow.PurchaseReturns().CreateItems(ctx, items); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	ret.Items = items
	return ret, nil
}

// GetGRN loads a goods receipt with its items and supplier.
func (s *GRNService) GetGRN(ctx context.Context, id uuid.UUID) (*entity.GRN, error) {
	uow, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	grn, err := uow.GRNs().GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if grn == nil {
		return nil, apperror.NewNotFoundError("Goods receipt")
	}
	return grn, nil
}

// ListGRNs returns goods receipts matching the filter, newest first.
func (s *GRNService) ListGRNs(ctx context.Context, params *repository.GRNFilterParams) ([]entity.GRN, int64, error) {
	uow, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer uow.Rollback()

	return uow.GRNs().List(ctx, params)
}

// GetPurchaseReturn loads a purchase return with its items.
func (s *GRNService) GetPurchaseReturn(ctx context.Context, id uuid.UUID) (*entity.PurchaseReturn, error) {
	uow, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	ret, err := uow.PurchaseReturns().GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, apperror.NewNotFoundError("Purchase return")
	}
	return ret, nil
}
