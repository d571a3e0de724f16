package memory

import (
	"context"
	"testing"

	"github.com/nexuspos/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RollbackDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	uow, err := store.Begin(ctx)
	require.NoError(t, err)

	product := &entity.Product{Name: "Soda", IsActive: true}
	require.NoError(t, uow.Products().Create(ctx, product))
	require.NoError(t, uow.Rollback())

	check, err := store.Begin(ctx)
	require.NoError(t, err)
	defer check.Rollback()

	got, err := check.Products().GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_CommitPublishesWrites(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	uow, err := store.Begin(ctx)
	require.NoError(t, err)

	product := &entity.Product{Name: "Soda", IsActive: true}
	require.NoError(t, uow.Products().Create(ctx, product))
	require.NoError(t, uow.Inventories().Create(ctx, &entity.Inventory{
		ProductID: product.ID,
		Quantity:  decimal.NewFromInt(5),
	}))
	require.NoError(t, uow.Commit())

	check, err := store.Begin(ctx)
	require.NoError(t, err)
	defer check.Rollback()

	got, err := check.Products().GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Soda", got.Name)

	inv, err := check.Inventories().GetByProductID(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.True(t, inv.Quantity.Equal(decimal.NewFromInt(5)))
}

func TestStore_RollbackAfterCommitIsHarmless(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	uow, err := store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, uow.Products().Create(ctx, &entity.Product{Name: "Gum", IsActive: true}))
	require.NoError(t, uow.Commit())
	require.NoError(t, uow.Rollback())

	next, err := store.Begin(ctx)
	require.NoError(t, err)
	defer next.Rollback()
}
