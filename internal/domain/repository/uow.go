package repository

import "context"

// UnitOfWork groups repository writes into one atomic commit/rollback
// boundary. All repositories obtained from a UnitOfWork share the same
// underlying transaction; nothing is durable until Commit returns nil.
//
// A UnitOfWork is single-shot: after Commit or Rollback it must not be
// reused. Rollback after a settled transaction is a no-op, so callers can
// safely `defer uow.Rollback()` right after Begin. Nested transactions are
// not supported; compose by issuing every repository call before the single
// Commit.
type UnitOfWork interface {
	Products() ProductRepository
	Inventories() InventoryRepository
	Sales() SaleRepository
	SalesReturns() SalesReturnRepository
	GRNs() GRNRepository
	PurchaseReturns() PurchaseReturnRepository
	StockAdjustments() StockAdjustmentRepository
	Sessions() DrawerSessionRepository

	// Commit flushes all staged writes and finalizes the transaction.
	// On a flush error the transaction is rolled back before the error
	// is returned.
	Commit() error
	// Rollback discards all staged writes. Safe to call after Commit.
	Rollback() error
}

// TxManager opens transaction boundaries. Each Begin returns a fresh
// UnitOfWork.
type TxManager interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}
