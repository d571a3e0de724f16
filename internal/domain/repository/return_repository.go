package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
)

// SalesReturnRepository defines the interface for sales return data operations.
type SalesReturnRepository interface {
	Create(ctx context.Context, ret *entity.SalesReturn) error
	CreateItems(ctx context.Context, items []entity.SalesReturnItem) error
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.SalesReturn, error)
	ListBySale(ctx context.Context, saleID uuid.UUID) ([]entity.SalesReturn, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.SalesReturn, error)
}

// PurchaseReturnRepository defines the interface for purchase return
// (return-to-supplier) data operations.
type PurchaseReturnRepository interface {
	Create(ctx context.Context, ret *entity.PurchaseReturn) error
	CreateItems(ctx context.Context, items []entity.PurchaseReturnItem) error
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.PurchaseReturn, error)
}
