package service

import (
	"context"
	"testing"

	"github.com/nexuspos/pos-api/internal/domain/entity"
	"github.com/nexuspos/pos-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sellProduct commits a sale of qty units and returns the persisted sale
// with its items.
func sellProduct(t *testing.T, f *fixture, product *entity.Product, qty string) *entity.Sale {
	t.Helper()
	result, err := f.sales.CreateSale(context.Background(), &CreateSaleInput{
		UserID:        f.userID,
		Items:         []SaleItemInput{{ProductID: product.ID, Quantity: dec(qty)}},
		PaidAmount:    dec("1000.00"),
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)
	require.True(t, result.Success, result.Message)
	return result.Sale
}

func TestProcessReturn_GoodConditionRestocks(t *testing.T) {
	f := newFixture(t)
	f.openSession(t)
	product := f.seedProduct(t, "Kettle", "10", "12.00", "30.00")
	sale := sellProduct(t, f, product, "4")

	result, err := f.returns.ProcessReturn(context.Background(), &ProcessReturnInput{
		UserID: f.userID,
		SaleID: sale.ID,
		Items: []ReturnItemInput{
			{SaleItemID: sale.Items[0].ID, Quantity: dec("2"), Condition: enum.ReturnConditionGood},
		},
	})
	require.NoError(t, err)
	require.True(t, result.Success, result.Message)

	assert.True(t, result.TotalRefund.Equal(dec("60.00")))
	// 10 - 4 sold + 2 returned.
	assert.True(t, f.stockOf(t, product.ID).Equal(dec("8")))
}

func TestProcessReturn_DamagedNeverRestocks(t *testing.T) {
	f := newFixture(t)
	f.openSession(t)
	product := f.seedProduct(t, "Toaster", "10", "8.00", "20.00")
	sale := sellProduct(t, f, product, "3")

	result, err := f.returns.ProcessReturn(context.Background(), &ProcessReturnInput{
		UserID: f.userID,
		SaleID: sale.ID,
		Items: []ReturnItemInput{
			{SaleItemID: sale.Items[0].ID, Quantity: dec("2"), Condition: enum.ReturnConditionDamaged},
		},
	})
	require.NoError(t, err)
	require.True(t, result.Success)

	assert.True(t, result.TotalRefund.Equal(dec("40.00")))
	// Still 10 - 3: damaged goods stay out of stock.
	assert.True(t, f.stockOf(t, product.ID).Equal(dec("7")))
}

func TestProcessReturn_RejectsOverQuantity(t *testing.T) {
	f := newFixture(t)
	f.openSession(t)
	product := f.seedProduct(t, "Blender", "10", "15.00", "45.00")
	sale := sellProduct(t, f, product, "2")

	result, err := f.returns.ProcessReturn(context.Background(), &ProcessReturnInput{
		UserID: f.userID,
		SaleID: sale.ID,
		Items: []ReturnItemInput{
			{SaleItemID: sale.Items[0].ID, Quantity: dec("3"), Condition: enum.ReturnConditionGood},
		},
	})
	require.NoError(t, err)
	require.False(t, result.Success)
	assert.Contains(t, result.Message, "exceeds the returnable quantity")

	// Nothing changed.
	assert.True(t, f.stockOf(t, product.ID).Equal(dec("8")))
	returns, err := f.returns.ListReturnsBySale(context.Background(), sale.ID)
	require.NoError(t, err)
	assert.Empty(t, returns)
}

func TestProcessReturn_BoundCoversRepeatedReturns(t *testing.T) {
	f := newFixture(t)
	f.openSession(t)
	product := f.seedProduct(t, "Iron", "10", "9.00", "25.00")
	sale := sellProduct(t, f, product, "3")

	first, err := f.returns.ProcessReturn(context.Background(), &ProcessReturnInput{
		UserID: f.userID,
		SaleID: sale.ID,
		Items: []ReturnItemInput{
			{SaleItemID: sale.Items[0].ID, Quantity: dec("2"), Condition: enum.ReturnConditionGood},
		},
	})
	require.NoError(t, err)
	require.True(t, first.Success)

	// Only one unit remains returnable; asking for two must fail.
	second, err := f.returns.ProcessReturn(context.Background(), &ProcessReturnInput{
		UserID: f.userID,
		SaleID: sale.ID,
		Items: []ReturnItemInput{
			{SaleItemID: sale.Items[0].ID, Quantity: dec("2"), Condition: enum.ReturnConditionGood},
		},
	})
	require.NoError(t, err)
	require.False(t, second.Success)

	third, err := f.returns.ProcessReturn(context.Background(), &ProcessReturnInput{
		UserID: f.userID,
		SaleID: sale.ID,
		Items: []ReturnItemInput{
			{SaleItemID: sale.Items[0].ID, Quantity: dec("1"), Condition: enum.ReturnConditionGood},
		},
	})
	require.NoError(t, err)
	require.True(t, third.Success)
}

func TestProcessReturn_DuplicateLinesShareTheBound(t *testing.T) {
	f := newFixture(t)
	f.openSession(t)
	product := f.seedProduct(t, "Lamp", "10", "4.00", "12.00")
	sale := sellProduct(t, f, product, "3")

	result, err := f.returns.ProcessReturn(context.Background(), &ProcessReturnInput{
		UserID: f.userID,
		SaleID: sale.ID,
		Items: []ReturnItemInput{
			{SaleItemID: sale.Items[0].ID, Quantity: dec("2"), Condition: enum.ReturnConditionGood},
			{SaleItemID: sale.Items[0].ID, Quantity: dec("2"), Condition: enum.ReturnConditionGood},
		},
	})
	require.NoError(t, err)
	require.False(t, result.Success)
	assert.True(t, f.stockOf(t, product.ID).Equal(dec("7")))
}

func TestProcessReturn_RequiresOpenSession(t *testing.T) {
	f := newFixture(t)
	f.openSession(t)
	product := f.seedProduct(t, "Fan", "10", "11.00", "28.00")
	sale := sellProduct(t, f, product, "1")

	_, err := f.sessions.CloseSession(context.Background(), f.userID, dec("1000.00"), nil)
	require.NoError(t, err)

	result, err := f.returns.ProcessReturn(context.Background(), &ProcessReturnInput{
		UserID: f.userID,
		SaleID: sale.ID,
		Items: []ReturnItemInput{
			{SaleItemID: sale.Items[0].ID, Quantity: dec("1"), Condition: enum.ReturnConditionGood},
		},
	})
	require.NoError(t, err)
	require.False(t, result.Success)
	assert.Equal(t, "No open drawer session for user", result.Message)
}
