package service

import (
	"context"
	"testing"

	"github.com/nexuspos/pos-api/internal/domain/entity"
	"github.com/nexuspos/pos-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiveGoods_MovingAverageCost(t *testing.T) {
	f := newFixture(t)
	supplier := f.seedSupplier(t, "Acme Wholesale")
	product := f.seedProduct(t, "Flour 1kg", "10", "5.00", "8.00")

	grn, err := f.grns.ReceiveGoods(context.Background(), &ReceiveGoodsInput{
		UserID:     f.userID,
		SupplierID: supplier.ID,
		Items: []GRNItemInput{
			{ProductID: product.ID, Quantity: dec("10"), UnitCost: dec("7.00")},
		},
	})
	require.NoError(t, err)
	require.Len(t, grn.Items, 1)
	assert.True(t, grn.TotalAmount.Equal(dec("70.00")))

	inv := f.inventoryOf(t, product.ID)
	require.NotNil(t, inv)
	assert.True(t, inv.Quantity.Equal(dec("20")))
	// (10*5 + 10*7) / 20 = 6.00
	assert.True(t, inv.AverageCost.Equal(dec("6.00")))
}

func TestReceiveGoods_FirstReceiptCreatesInventoryRow(t *testing.T) {
	f := newFixture(t)
	supplier := f.seedSupplier(t, "Acme Wholesale")

	// Product without an inventory row.
	ctx := context.Background()
	uow, err := f.store.Begin(ctx)
	require.NoError(t, err)
	product := &entity.Product{Name: "New Sauce", IsActive: true}
	require.NoError(t, uow.Products().Create(ctx, product))
	require.NoError(t, uow.Commit())

	_, err = f.grns.ReceiveGoods(ctx, &ReceiveGoodsInput{
		UserID:     f.userID,
		SupplierID: supplier.ID,
		Items: []GRNItemInput{
			{ProductID: product.ID, Quantity: dec("12"), UnitCost: dec("2.50")},
		},
	})
	require.NoError(t, err)

	inv := f.inventoryOf(t, product.ID)
	require.NotNil(t, inv)
	assert.True(t, inv.Quantity.Equal(dec("12")))
	assert.True(t, inv.AverageCost.Equal(dec("2.50")))
	assert.True(t, inv.SellingPrice.IsZero())
}

func TestReceiveGoods_UnknownSupplierRejected(t *testing.T) {
	f := newFixture(t)
	product := f.seedProduct(t, "Sugar", "5", "1.00", "2.00")

	_, err := f.grns.ReceiveGoods(context.Background(), &ReceiveGoodsInput{
		UserID:     f.userID,
		SupplierID: product.ID, // not a supplier
		Items: []GRNItemInput{
			{ProductID: product.ID, Quantity: dec("5"), UnitCost: dec("1.00")},
		},
	})
	require.Error(t, err)
	assert.True(t, f.stockOf(t, product.ID).Equal(dec("5")))
}

func TestReturnToSupplier_DecrementsStockAndBoundsQuantity(t *testing.T) {
	f := newFixture(t)
	supplier := f.seedSupplier(t, "Acme Wholesale")
	product := f.seedProduct(t, "Salt", "0", "0.00", "1.50")

	grn, err := f.grns.ReceiveGoods(context.Background(), &ReceiveGoodsInput{
		UserID:     f.userID,
		SupplierID: supplier.ID,
		Items: []GRNItemInput{
			{ProductID: product.ID, Quantity: dec("10"), UnitCost: dec("0.80")},
		},
	})
	require.NoError(t, err)

	ret, err := f.grns.ReturnToSupplier(context.Background(), &ReturnToSupplierInput{
		UserID: f.userID,
		GRNID:  grn.ID,
		Items: []PurchaseReturnItemInput{
			{GRNItemID: grn.Items[0].ID, Quantity: dec("4")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, enum.PurchaseReturnStatusCompleted, ret.Status)
	assert.True(t, ret.TotalRefund.Equal(dec("3.20")))
	assert.True(t, f.stockOf(t, product.ID).Equal(dec("6")))

	// 6 remain returnable on the receipt line; 7 must be rejected.
	_, err = f.grns.ReturnToSupplier(context.Background(), &ReturnToSupplierInput{
		UserID: f.userID,
		GRNID:  grn.ID,
		Items: []PurchaseReturnItemInput{
			{GRNItemID: grn.Items[0].ID, Quantity: dec("7")},
		},
	})
	require.Error(t, err)
	assert.True(t, f.stockOf(t, product.ID).Equal(dec("6")))
}

func TestReturnToSupplier_CannotDriveStockNegative(t *testing.T) {
	f := newFixture(t)
	f.openSession(t)
	supplier := f.seedSupplier(t, "Acme Wholesale")
	product := f.seedProduct(t, "Honey", "0", "0.00", "6.00")

	grn, err := f.grns.ReceiveGoods(context.Background(), &ReceiveGoodsInput{
		UserID:     f.userID,
		SupplierID: supplier.ID,
		Items: []GRNItemInput{
			{ProductID: product.ID, Quantity: dec("5"), UnitCost: dec("3.00")},
		},
	})
	require.NoError(t, err)

	// Sell most of the received stock.
	sellProduct(t, f, product, "4")

	// Only 1 left on hand; returning 3 would go negative.
	_, err = f.grns.ReturnToSupplier(context.Background(), &ReturnToSupplierInput{
		UserID: f.userID,
		GRNID:  grn.ID,
		Items: []PurchaseReturnItemInput{
			{GRNItemID: grn.Items[0].ID, Quantity: dec("3")},
		},
	})
	require.Error(t, err)
	assert.True(t, f.stockOf(t, product.ID).Equal(dec("1")))
}

func TestMovingAverage(t *testing.T) {
	// Standard weighted average.
	assert.True(t, movingAverage(dec("10"), dec("5.00"), dec("10"), dec("7.00")).Equal(dec("6.00")))
	// Empty stock takes the incoming cost outright.
	assert.True(t, movingAverage(dec("0"), dec("4.00"), dec("5"), dec("9.00")).Equal(dec("9.00")))
	// Negative stock (backorder) also resets to the incoming cost.
	assert.True(t, movingAverage(dec("-3"), dec("4.00"), dec("3"), dec("9.00")).Equal(dec("9.00")))
}
