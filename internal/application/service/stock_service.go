package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/config"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	"github.com/nexuspos/pos-api/internal/domain/enum"
	"github.com/nexuspos/pos-api/internal/domain/repository"
	"github.com/nexuspos/pos-api/pkg/apperror"
	"github.com/nexuspos/pos-api/pkg/pagination"
	"github.com/nexuspos/pos-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// StockService owns every mutation of inventory quantities. Sales, returns,
// receipts and adjustments all funnel through applyDelta so the
// non-negativity policy and moving-average costing live in exactly one place.
type StockService struct {
	txManager repository.TxManager
	cfg       config.StockConfig
}

// NewStockService creates a new stock service
func NewStockService(txManager repository.TxManager, cfg config.StockConfig) *StockService {
	return &StockService{txManager: txManager, cfg: cfg}
}

// applyDelta applies a signed stock movement for one product inside an open
// unit of work. A positive delta with a unit cost recomputes the moving
// average cost; a negative delta is checked against the non-negativity
// policy. A missing inventory row is created on first receipt.
func (s *StockService) applyDelta(ctx context.Context, uow repository.UnitOfWork, product *entity.Product, delta decimal.Decimal, unitCost *decimal.Decimal) error {
	inventories := uow.Inventories()

	// Strict sells take the guarded-decrement path: the WHERE clause
	// enforces sufficiency in the same statement as the subtraction.
	if delta.IsNegative() && !s.cfg.AllowBackorder {
		ok, err := inventories.DecrementStock(ctx, product.ID, delta.Neg())
		if err != nil {
			return err
		}
		if !ok {
			return apperror.NewInsufficientStockError(product.Name)
		}
		return nil
	}

	inv, err := inventories.GetByProductIDForUpdate(ctx, product.ID)
	if err != nil {
		return err
	}

	if inv == nil {
		// First movement for this product creates the row.
		cost := decimal.Zero
		if unitCost != nil {
			cost = *unitCost
		}
		return inventories.Create(ctx, &entity.Inventory{
			ProductID:   product.ID,
			Quantity:    delta,
			AverageCost: cost,
		})
	}

	newQty := inv.Quantity.Add(delta)

	if delta.IsPositive() && unitCost != nil {
		inv.AverageCost = movingAverage(inv.Quantity, inv.AverageCost, delta, *unitCost)
	}

	inv.Quantity = newQty
	return inventories.Update(ctx, inv)
}

// movingAverage recomputes the weighted average cost after receiving qty
// units at unitCost on top of oldQty units carried at oldAvg. When the
// resulting quantity is not positive (stock was negative or zero) the new
// unit cost wins outright.
func movingAverage(oldQty, oldAvg, qty, unitCost decimal.Decimal) decimal.Decimal {
	newQty := oldQty.Add(qty)
	if !newQty.IsPositive() || !oldQty.IsPositive() {
		return unitCost
	}
	totalValue := oldAvg.Mul(oldQty).Add(unitCost.Mul(qty))
	return totalValue.Div(newQty).Round(2)
}

// AdjustmentItemInput is one counted product in a stock take.
type AdjustmentItemInput struct {
	ProductID   uuid.UUID
	PhysicalQty decimal.Decimal
}

// AdjustStockInput represents a manual stock correction request.
type AdjustStockInput struct {
	UserID uuid.UUID
	Reason enum.AdjustmentReason
	Notes  *string
	Items  []AdjustmentItemInput
}

// AdjustStock records a stock adjustment document and moves every counted
// product to its physical quantity. The whole document commits or rolls
// back as one unit.
func (s *StockService) AdjustStock(ctx context.Context, input *AdjustStockInput) (*entity.StockAdjustment, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Adjustment requires at least one item")
	}
	for _, item := range input.Items {
		if item.PhysicalQty.IsNegative() {
			return nil, apperror.NewBadRequestError("Physical quantity cannot be negative")
		}
	}

	uow, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	adjustment := &entity.StockAdjustment{
		AdjustmentNo:   utils.NewDocumentNo("ADJ"),
		UserID:         input.UserID,
		AdjustmentDate: time.Now(),
		Reason:         input.Reason,
		Notes:          input.Notes,
	}
	if err := uow.StockAdjustments().Create(ctx, adjustment); err != nil {
		return nil, err
	}

	items := make([]entity.AdjustmentItem, 0, len(input.Items))
	for _, in := range input.Items {
		product, err := uow.Products().GetByID(ctx, in.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, apperror.NewNotFoundError("Product")
		}

		systemQty := decimal.Zero
		inv, err := uow.Inventories().GetByProductIDForUpdate(ctx, in.ProductID)
		if err != nil {
			return nil, err
		}
		if inv != nil {
			systemQty = inv.Quantity
		}

		diff := in.PhysicalQty.Sub(systemQty)
		items = append(items, entity.AdjustmentItem{
			AdjustmentID:  adjustment.ID,
			ProductID:     in.ProductID,
			SystemQty:     systemQty,
			PhysicalQty:   in.PhysicalQty,
			DifferenceQty: diff,
		})

		if !diff.IsZero() {
			if err := s.applyDelta(ctx, uow, product, diff, nil); err != nil {
				return nil, err
			}
		}
	}

	if err := uow.StockAdjustments().CreateItems(ctx, items); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	adjustment.Items = items
	return adjustment, nil
}

// GetAdjustment loads an adjustment document with its items.
func (s *StockService) GetAdjustment(ctx context.Context, id uuid.UUID) (*entity.StockAdjustment, error) {
	uow, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	adjustment, err := uow.StockAdjustments().GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if adjustment == nil {
		return nil, apperror.NewNotFoundError("Stock adjustment")
	}
	return adjustment, nil
}

// ListAdjustments returns adjustment documents, newest first.
func (s *StockService) ListAdjustments(ctx context.Context, params *pagination.PaginationParams) ([]entity.StockAdjustment, int64, error) {
	uow, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer uow.Rollback()

	return uow.StockAdjustments().List(ctx, params)
}
