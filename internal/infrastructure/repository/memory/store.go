// Package memory provides an in-memory TxManager implementation used by
// service tests. Begin locks the whole store and hands out a working copy
// of the state; Commit installs the copy, Rollback discards it. Every
// transaction therefore runs serialized, which gives the same isolation
// the SQL implementation gets from row locks.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	domainRepo "github.com/nexuspos/pos-api/internal/domain/repository"
)

// Store is an in-memory database. The zero value is not usable; create
// with NewStore.
type Store struct {
	mu    sync.Mutex
	state *state
}

type state struct {
	products        map[uuid.UUID]entity.Product
	inventories     map[uuid.UUID]entity.Inventory // keyed by product ID
	sales           map[uuid.UUID]entity.Sale
	salesItems      map[uuid.UUID]entity.SalesItem
	payments        map[uuid.UUID]entity.Payment
	salesReturns    map[uuid.UUID]entity.SalesReturn
	salesRetItems   map[uuid.UUID]entity.SalesReturnItem
	grns            map[uuid.UUID]entity.GRN
	grnItems        map[uuid.UUID]entity.GRNItem
	purchaseReturns map[uuid.UUID]entity.PurchaseReturn
	purchaseRetItems map[uuid.UUID]entity.PurchaseReturnItem
	adjustments     map[uuid.UUID]entity.StockAdjustment
	adjustmentItems map[uuid.UUID]entity.AdjustmentItem
	sessions        map[uuid.UUID]entity.DrawerSession
	cashFlows       map[uuid.UUID]entity.DrawerCashFlow
	customers       map[uuid.UUID]entity.Customer
	suppliers       map[uuid.UUID]entity.Supplier
}

func newState() *state {
	return &state{
		products:         make(map[uuid.UUID]entity.Product),
		inventories:      make(map[uuid.UUID]entity.Inventory),
		sales:            make(map[uuid.UUID]entity.Sale),
		salesItems:       make(map[uuid.UUID]entity.SalesItem),
		payments:         make(map[uuid.UUID]entity.Payment),
		salesReturns:     make(map[uuid.UUID]entity.SalesReturn),
		salesRetItems:    make(map[uuid.UUID]entity.SalesReturnItem),
		grns:             make(map[uuid.UUID]entity.GRN),
		grnItems:         make(map[uuid.UUID]entity.GRNItem),
		purchaseReturns:  make(map[uuid.UUID]entity.PurchaseReturn),
		purchaseRetItems: make(map[uuid.UUID]entity.PurchaseReturnItem),
		adjustments:      make(map[uuid.UUID]entity.StockAdjustment),
		adjustmentItems:  make(map[uuid.UUID]entity.AdjustmentItem),
		sessions:         make(map[uuid.UUID]entity.DrawerSession),
		cashFlows:        make(map[uuid.UUID]entity.DrawerCashFlow),
		customers:        make(map[uuid.UUID]entity.Customer),
		suppliers:        make(map[uuid.UUID]entity.Supplier),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.inventories {
		c.inventories[k] = v
	}
	for k, v := range s.sales {
		c.sales[k] = v
	}
	for k, v := range s.salesItems {
		c.salesItems[k] = v
	}
	for k, v := range s.payments {
		c.payments[k] = v
	}
	for k, v := range s.salesReturns {
		c.salesReturns[k] = v
	}
	for k, v := range s.salesRetItems {
		c.salesRetItems[k] = v
	}
	for k, v := range s.grns {
		c.grns[k] = v
	}
	for k, v := range s.grnItems {
		c.grnItems[k] = v
	}
	for k, v := range s.purchaseReturns {
		c.purchaseReturns[k] = v
	}
	for k, v := range s.purchaseRetItems {
		c.purchaseRetItems[k] = v
	}
	for k, v := range s.adjustments {
		c.adjustments[k] = v
	}
	for k, v := range s.adjustmentItems {
		c.adjustmentItems[k] = v
	}
	for k, v := range s.sessions {
		c.sessions[k] = v
	}
	for k, v := range s.cashFlows {
		c.cashFlows[k] = v
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.suppliers {
		c.suppliers[k] = v
	}
	return c
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{state: newState()}
}

// Begin locks the store and returns a UnitOfWork over a working copy of
// the current state.
func (s *Store) Begin(ctx context.Context) (domainRepo.UnitOfWork, error) {
	s.mu.Lock()
	return &unitOfWork{store: s, work: s.state.clone()}, nil
}

type unitOfWork struct {
	store   *Store
	work    *state
	settled bool
}

func (u *unitOfWork) Products() domainRepo.ProductRepository {
	return &productRepo{s: u.work}
}

func (u *unitOfWork) Inventories() domainRepo.InventoryRepository {
	return &inventoryRepo{s: u.work}
}

func (u *unitOfWork) Sales() domainRepo.SaleRepository {
	return &saleRepo{s: u.work}
}

func (u *unitOfWork) SalesReturns() domainRepo.SalesReturnRepository {
	return &salesReturnRepo{s: u.work}
}

func (u *unitOfWork) GRNs() domainRepo.GRNRepository {
	return &grnRepo{s: u.work}
}

func (u *unitOfWork) PurchaseReturns() domainRepo.PurchaseReturnRepository {
	return &purchaseReturnRepo{s: u.work}
}

func (u *unitOfWork) StockAdjustments() domainRepo.StockAdjustmentRepository {
	return &adjustmentRepo{s: u.work}
}

func (u *unitOfWork) Sessions() domainRepo.DrawerSessionRepository {
	return &sessionRepo{s: u.work}
}

func (u *unitOfWork) Commit() error {
	if u.settled {
		return nil
	}
	u.settled = true
	u.store.state = u.work
	u.store.mu.Unlock()
	return nil
}

func (u *unitOfWork) Rollback() error {
	if u.settled {
		return nil
	}
	u.settled = true
	u.store.mu.Unlock()
	return nil
}
