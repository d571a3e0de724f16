package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// InventoryRepository defines the interface for stock-level data operations.
// Stock-check-then-mutate sequences must run inside a UnitOfWork using the
// ForUpdate read or the guarded decrement so that concurrent callers are
// serialized per product.
type InventoryRepository interface {
	Create(ctx context.Context, inv *entity.Inventory) error
	GetByProductID(ctx context.Context, productID uuid.UUID) (*entity.Inventory, error)
	// GetByProductIDForUpdate reads the inventory row with a row-level lock,
	// blocking concurrent writers until the enclosing transaction settles.
	GetByProductIDForUpdate(ctx context.Context, productID uuid.UUID) (*entity.Inventory, error)
	Update(ctx context.Context, inv *entity.Inventory) error
	// DecrementStock atomically subtracts qty only when sufficient stock
	// exists. Returns (false, nil) when the guard fails.
	DecrementStock(ctx context.Context, productID uuid.UUID, qty decimal.Decimal) (bool, error)
	// IncrementStock atomically adds qty to the product's on-hand quantity.
	IncrementStock(ctx context.Context, productID uuid.UUID, qty decimal.Decimal) error
}
