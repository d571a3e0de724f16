package repository

import (
	"context"

	domainRepo "github.com/nexuspos/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

// gormUnitOfWork binds every repository to one *gorm.DB transaction. It is
// single-shot: after Commit or Rollback the settled flag short-circuits any
// further settle call, so `defer uow.Rollback()` is safe after Commit.
type gormUnitOfWork struct {
	tx      *gorm.DB
	settled bool
}

type gormTxManager struct {
	db *gorm.DB
}

// NewTxManager creates a transaction manager over the given database handle.
func NewTxManager(db *gorm.DB) domainRepo.TxManager {
	return &gormTxManager{db: db}
}

func (m *gormTxManager) Begin(ctx context.Context) (domainRepo.UnitOfWork, error) {
	tx := m.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &gormUnitOfWork{tx: tx}, nil
}

func (u *gormUnitOfWork) Products() domainRepo.ProductRepository {
	return NewProductRepository(u.tx)
}

func (u *gormUnitOfWork) Inventories() domainRepo.InventoryRepository {
	return NewInventoryRepository(u.tx)
}

func (u *gormUnitOfWork) Sales() domainRepo.SaleRepository {
	return NewSaleRepository(u.tx)
}

func (u *gormUnitOfWork) SalesReturns() domainRepo.SalesReturnRepository {
	return NewSalesReturnRepository(u.tx)
}

func (u *gormUnitOfWork) GRNs() domainRepo.GRNRepository {
	return NewGRNRepository(u.tx)
}

func (u *gormUnitOfWork) PurchaseReturns() domainRepo.PurchaseReturnRepository {
	return NewPurchaseReturnRepository(u.tx)
}

func (u *gormUnitOfWork) StockAdjustments() domainRepo.StockAdjustmentRepository {
	return NewStockAdjustmentRepository(u.tx)
}

func (u *gormUnitOfWork) Sessions() domainRepo.DrawerSessionRepository {
	return NewDrawerSessionRepository(u.tx)
}

func (u *gormUnitOfWork) Commit() error {
	if u.settled {
		return nil
	}
	u.settled = true
	if err := u.tx.Commit().Error; err != nil {
		u.tx.Rollback()
		return err
	}
	return nil
}

func (u *gormUnitOfWork) Rollback() error {
	if u.settled {
		return nil
	}
	u.settled = true
	return u.tx.Rollback().Error
}
