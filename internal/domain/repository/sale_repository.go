package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	"github.com/nexuspos/pos-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// SaleRepository defines the interface for sale data operations.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	CreateItems(ctx context.Context, items []entity.SalesItem) error
	CreatePayment(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	// GetWithDetails loads a sale with its items, payments and customer
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Sale, error)
	GetItemByID(ctx context.Context, id uuid.UUID) (*entity.SalesItem, error)
	// UpdateItem persists the quantity-returned counter on a sales item
	UpdateItem(ctx context.Context, item *entity.SalesItem) error
	ListByDateRange(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	// ListBySession loads every sale of a drawer session with its payments,
	// for close-of-session cash reconciliation.
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.Sale, error)
	// DailyTotal returns the summed grand total and sale count for the
	// calendar day containing the given time.
	DailyTotal(ctx context.Context, day time.Time) (decimal.Decimal, int64, error)
}

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	StartDate  *time.Time
	EndDate    *time.Time
	CustomerID *uuid.UUID
	UserID     *uuid.UUID
	SessionID  *uuid.UUID
}
