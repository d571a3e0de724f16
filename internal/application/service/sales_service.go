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

// SalesService handles the checkout flow: stock validation, sale creation,
// payment capture and inventory decrements in one atomic unit.
type SalesService struct {
	txManager    repository.TxManager
	stockService *StockService
	customerRepo repository.CustomerRepository
}

// NewSalesService creates a new sales service
func NewSalesService(txManager repository.TxManager, stockService *StockService, customerRepo repository.CustomerRepository) *SalesService {
	return &SalesService{
		txManager:    txManager,
		stockService: stockService,
		customerRepo: customerRepo,
	}
}

// SaleItemInput is one product line scanned at the till. UnitPrice overrides
// the inventory selling price when set.
type SaleItemInput struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
	UnitPrice *decimal.Decimal
}

// CreateSaleInput represents the checkout request.
type CreateSaleInput struct {
	UserID         uuid.UUID
	CustomerID     *uuid.UUID
	Items          []SaleItemInput
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	PaidAmount     decimal.Decimal
	PaymentMethod  enum.PaymentMethod
}

// SaleResult reports the outcome of a checkout attempt. Success is false
// for any business rejection; Err carries the typed error in that case and
// the sale is guaranteed not to have been persisted.
type SaleResult struct {
	Success bool
	Message string
	Sale    *entity.Sale
	Change  decimal.Decimal
	Err     *apperror.AppError
}

func failedSale(err *apperror.AppError) (*SaleResult, error) {
	return &SaleResult{Success: false, Message: err.Message, Err: err}, nil
}

// CreateSale validates stock for every line before mutating anything, then
// writes the sale header, its items, the payment and the inventory
// decrements inside one transaction. Any failure rolls the whole sale back;
// no partial state is ever visible.
func (s *SalesService) CreateSale(ctx context.Context, input *CreateSaleInput) (*SaleResult, error) {
	if len(input.Items) == 0 {
		return failedSale(apperror.NewBadRequestError("Sale requires at least one item"))
	}
	for _, item := range input.Items {
		if !item.Quantity.IsPositive() {
			return failedSale(apperror.NewBadRequestError("Item quantity must be positive"))
		}
		if item.UnitPrice != nil && item.UnitPrice.IsNegative() {
			return failedSale(apperror.NewBadRequestError("Item unit price cannot be negative"))
		}
	}
	if input.PaidAmount.IsNegative() {
		return failedSale(apperror.NewBadRequestError("Paid amount cannot be negative"))
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return failedSale(apperror.NewNotFoundError("Customer"))
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
		return failedSale(apperror.ErrNoOpenSession)
	}

	// First pass: resolve every line and verify stock under row locks
	// before any mutation. A failing line aborts the sale with nothing
	// written.
	type resolvedLine struct {
		product   *entity.Product
		quantity  decimal.Decimal
		unitPrice decimal.Decimal
	}
	lines := make([]resolvedLine, 0, len(input.Items))

	for _, item := range input.Items {
		product, err := uow.Products().GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return failedSale(apperror.NewNotFoundError("Product"))
		}
		if !product.IsActive {
			return failedSale(apperror.NewBadRequestError("Product " + product.Name + " is inactive"))
		}

		inv, err := uow.Inventories().GetByProductIDForUpdate(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if !s.stockService.cfg.AllowBackorder {
			if inv == nil || inv.Quantity.LessThan(item.Quantity) {
				return failedSale(apperror.NewInsufficientStockError(product.Name))
			}
		}

		unitPrice := decimal.Zero
		if inv != nil {
			unitPrice = inv.SellingPrice
		}
		if item.UnitPrice != nil {
			unitPrice = *item.UnitPrice
		}

		lines = append(lines, resolvedLine{
			product:   product,
			quantity:  item.Quantity,
			unitPrice: unitPrice,
		})
	}

	subTotal := decimal.Zero
	for _, line := range lines {
		subTotal = subTotal.Add(line.unitPrice.Mul(line.quantity).Round(2))
	}
	grandTotal := subTotal.Add(input.TaxAmount).Sub(input.DiscountAmount)

	status := enum.PaymentStatusPending
	switch {
	case input.PaidAmount.GreaterThanOrEqual(grandTotal):
		status = enum.PaymentStatusPaid
	case input.PaidAmount.IsPositive():
		status = enum.PaymentStatusPartial
	}

	sale := &entity.Sale{
		InvoiceNo:      utils.NewDocumentNo("INV"),
		CustomerID:     input.CustomerID,
		UserID:         input.UserID,
		SessionID:      session.ID,
		SaleDate:       time.Now(),
		SubTotal:       subTotal,
		TaxAmount:      input.TaxAmount,
		DiscountAmount: input.DiscountAmount,
		GrandTotal:     grandTotal,
		PaymentStatus:  status,
	}
	if err := uow.Sales().Create(ctx, sale); err != nil {
		return nil, err
	}

	items := make([]entity.SalesItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, entity.SalesItem{
			SaleID:     sale.ID,
			ProductID:  line.product.ID,
			Quantity:   line.quantity,
			UnitPrice:  line.unitPrice,
			TotalPrice: line.unitPrice.Mul(line.quantity).Round(2),
		})
	}
	if err := uow.Sales().CreateItems(ctx, items); err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err := s.stockService.applyDelta(ctx, uow, line.product, line.quantity.Neg(), nil); err != nil {
			appErr := apperror.GetAppError(err)
			if appErr.Code < 500 {
				return failedSale(appErr)
			}
			return nil, err
		}
	}

	// The payment records what the sale keeps. Anything tendered above the
	// grand total goes back as change and never settles on the sale.
	applied := input.PaidAmount
	if applied.GreaterThan(grandTotal) {
		applied = grandTotal
	}
	payment := &entity.Payment{
		SaleID: sale.ID,
		Amount: applied,
		Method: input.PaymentMethod,
		PaidAt: time.Now(),
	}
	if err := uow.Sales().CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	sale.Items = items
	sale.Payments = []entity.Payment{*payment}

	// Change may be negative for partial payments; the till shows it as
	// an outstanding balance.
	return &SaleResult{
		Success: true,
		Message: "Sale completed",
		Sale:    sale,
		Change:  input.PaidAmount.Sub(grandTotal),
	}, nil
}

// GetSale loads a sale with its items, payments and customer.
func (s *SalesService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	uow, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	sale, err := uow.Sales().GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales returns sales matching the filter, newest first.
func (s *SalesService) ListSales(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	uow, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer uow.Rollback()

	return uow.Sales().ListByDateRange(ctx, params)
}

// DailySummary is the day's headline numbers for the dashboard.
type DailySummary struct {
	Date       time.Time       `json:"date"`
	TotalSales decimal.Decimal `json:"total_sales"`
	SaleCount  int64           `json:"sale_count"`
}

// GetDailySummary returns the total takings and sale count for one day.
func (s *SalesService) GetDailySummary(ctx context.Context, day time.Time) (*DailySummary, error) {
	uow, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	total, count, err := uow.Sales().DailyTotal(ctx, day)
	if err != nil {
		return nil, err
	}
	return &DailySummary{Date: day, TotalSales: total, SaleCount: count}, nil
}
