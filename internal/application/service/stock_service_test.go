package service

import (
	"context"
	"testing"

	"github.com/nexuspos/pos-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustStock_MovesStockToPhysicalCount(t *testing.T) {
	f := newFixture(t)
	short := f.seedProduct(t, "Chocolate Bar", "50", "0.60", "1.50")
	over := f.seedProduct(t, "Chewing Gum", "20", "0.20", "0.60")

	notes := "monthly stock take"
	adjustment, err := f.stock.AdjustStock(context.Background(), &AdjustStockInput{
		UserID: f.userID,
		Reason: enum.AdjustmentReasonStockTake,
		Notes:  &notes,
		Items: []AdjustmentItemInput{
			{ProductID: short.ID, PhysicalQty: dec("47")},
			{ProductID: over.ID, PhysicalQty: dec("22")},
		},
	})
	require.NoError(t, err)
	require.Len(t, adjustment.Items, 2)

	assert.True(t, adjustment.Items[0].SystemQty.Equal(dec("50")))
	assert.True(t, adjustment.Items[0].DifferenceQty.Equal(dec("-3")))
	assert.True(t, adjustment.Items[1].DifferenceQty.Equal(dec("2")))

	assert.True(t, f.stockOf(t, short.ID).Equal(dec("47")))
	assert.True(t, f.stockOf(t, over.ID).Equal(dec("22")))
}

func TestAdjustStock_AdjustmentDoesNotTouchAverageCost(t *testing.T) {
	f := newFixture(t)
	product := f.seedProduct(t, "Tea", "30", "2.40", "5.00")

	_, err := f.stock.AdjustStock(context.Background(), &AdjustStockInput{
		UserID: f.userID,
		Reason: enum.AdjustmentReasonDamage,
		Items: []AdjustmentItemInput{
			{ProductID: product.ID, PhysicalQty: dec("25")},
		},
	})
	require.NoError(t, err)

	inv := f.inventoryOf(t, product.ID)
	assert.True(t, inv.Quantity.Equal(dec("25")))
	assert.True(t, inv.AverageCost.Equal(dec("2.40")))
}

func TestAdjustStock_RejectsNegativePhysicalCount(t *testing.T) {
	f := newFixture(t)
	product := f.seedProduct(t, "Juice", "10", "1.10", "2.50")

	_, err := f.stock.AdjustStock(context.Background(), &AdjustStockInput{
		UserID: f.userID,
		Reason: enum.AdjustmentReasonDataError,
		Items: []AdjustmentItemInput{
			{ProductID: product.ID, PhysicalQty: dec("-1")},
		},
	})
	require.Error(t, err)
	assert.True(t, f.stockOf(t, product.ID).Equal(dec("10")))
}

func TestStockConservationAcrossMixedOperations(t *testing.T) {
	f := newFixture(t)
	f.openSession(t)
	supplier := f.seedSupplier(t, "Acme Wholesale")
	product := f.seedProduct(t, "Pasta", "10", "1.00", "3.00")

	// Receive 10 more.
	_, err := f.grns.ReceiveGoods(context.Background(), &ReceiveGoodsInput{
		UserID:     f.userID,
		SupplierID: supplier.ID,
		Items:      []GRNItemInput{{ProductID: product.ID, Quantity: dec("10"), UnitCost: dec("1.20")}},
	})
	require.NoError(t, err)

	// Sell 6.
	sale := sellProduct(t, f, product, "6")

	// A failed oversell changes nothing.
	failed, err := f.sales.CreateSale(context.Background(), &CreateSaleInput{
		UserID:        f.userID,
		Items:         []SaleItemInput{{ProductID: product.ID, Quantity: dec("100")}},
		PaidAmount:    dec("300.00"),
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)
	require.False(t, failed.Success)

	// Return 2 in good condition.
	ret, err := f.returns.ProcessReturn(context.Background(), &ProcessReturnInput{
		UserID: f.userID,
		SaleID: sale.ID,
		Items: []ReturnItemInput{
			{SaleItemID: sale.Items[0].ID, Quantity: dec("2"), Condition: enum.ReturnConditionGood},
		},
	})
	require.NoError(t, err)
	require.True(t, ret.Success)

	// 10 + 10 - 6 + 2 = 16.
	assert.True(t, f.stockOf(t, product.ID).Equal(dec("16")))
}
