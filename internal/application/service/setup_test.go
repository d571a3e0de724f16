package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/config"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	"github.com/nexuspos/pos-api/internal/infrastructure/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fixture struct {
	store    *memory.Store
	stock    *StockService
	sales    *SalesService
	returns  *ReturnService
	grns     *GRNService
	sessions *SessionService
	userID   uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithConfig(t, config.StockConfig{})
}

func newFixtureWithConfig(t *testing.T, cfg config.StockConfig) *fixture {
	t.Helper()
	store := memory.NewStore()
	stock := NewStockService(store, cfg)
	return &fixture{
		store:    store,
		stock:    stock,
		sales:    NewSalesService(store, stock, store.Customers()),
		returns:  NewReturnService(store, stock),
		grns:     NewGRNService(store, stock, store.Suppliers()),
		sessions: NewSessionService(store),
		userID:   uuid.New(),
	}
}

// openSession opens a drawer session for the fixture user.
func (f *fixture) openSession(t *testing.T) *entity.DrawerSession {
	t.Helper()
	session, err := f.sessions.OpenSession(context.Background(), f.userID, dec("100.00"))
	require.NoError(t, err)
	return session
}

// seedProduct creates an active product with an inventory row.
func (f *fixture) seedProduct(t *testing.T, name, qty, avgCost, price string) *entity.Product {
	t.Helper()
	ctx := context.Background()

	uow, err := f.store.Begin(ctx)
	require.NoError(t, err)
	defer uow.Rollback()

	product := &entity.Product{Name: name, IsActive: true}
	require.NoError(t, uow.Products().Create(ctx, product))
	require.NoError(t, uow.Inventories().Create(ctx, &entity.Inventory{
		ProductID:    product.ID,
		Quantity:     dec(qty),
		AverageCost:  dec(avgCost),
		SellingPrice: dec(price),
	}))
	require.NoError(t, uow.Commit())
	return product
}

// seedSupplier creates a supplier record.
func (f *fixture) seedSupplier(t *testing.T, name string) *entity.Supplier {
	t.Helper()
	supplier := &entity.Supplier{Name: name, IsActive: true}
	require.NoError(t, f.store.Suppliers().Create(context.Background(), supplier))
	return supplier
}

// stockOf reads the committed on-hand quantity for a product.
func (f *fixture) stockOf(t *testing.T, productID uuid.UUID) decimal.Decimal {
	t.Helper()
	inv := f.inventoryOf(t, productID)
	if inv == nil {
		return decimal.Zero
	}
	return inv.Quantity
}

func (f *fixture) inventoryOf(t *testing.T, productID uuid.UUID) *entity.Inventory {
	t.Helper()
	ctx := context.Background()

	uow, err := f.store.Begin(ctx)
	require.NoError(t, err)
	defer uow.Rollback()

	inv, err := uow.Inventories().GetByProductID(ctx, productID)
	require.NoError(t, err)
	return inv
}
