package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/nexuspos/pos-api/internal/config"
	"github.com/nexuspos/pos-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSale_Success(t *testing.T) {
	f := newFixture(t)
	f.openSession(t)
	product := f.seedProduct(t, "Milk 1L", "10", "2.00", "4.00")

	result, err := f.sales.CreateSale(context.Background(), &CreateSaleInput{
		UserID:        f.userID,
		Items:         []SaleItemInput{{ProductID: product.ID, Quantity: dec("3")}},
		PaidAmount:    dec("32.00"),
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)
	require.True(t, result.Success, result.Message)

	assert.True(t, result.Sale.SubTotal.Equal(dec("12.00")))
	assert.True(t, result.Sale.GrandTotal.Equal(dec("12.00")))
	assert.True(t, result.Change.Equal(dec("20.00")))
	assert.Equal(t, enum.PaymentStatusPaid, result.Sale.PaymentStatus)
	require.Len(t, result.Sale.Items, 1)
	assert.True(t, result.Sale.Items[0].TotalPrice.Equal(dec("12.00")))

	// 10 on hand minus 3 sold.
	assert.True(t, f.stockOf(t, product.ID).Equal(dec("7")))
}

func TestCreateSale_InsufficientStockLeavesStockUntouched(t *testing.T) {
	f := newFixture(t)
	f.openSession(t)
	product := f.seedProduct(t, "Batteries AA", "2", "1.00", "3.00")

	result, err := f.sales.CreateSale(context.Background(), &CreateSaleInput{
		UserID:        f.userID,
		Items:         []SaleItemInput{{ProductID: product.ID, Quantity: dec("5")}},
		PaidAmount:    dec("15.00"),
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)
	require.False(t, result.Success)
	assert.Contains(t, result.Message, "Insufficient stock")
	assert.Contains(t, result.Message, "Batteries AA")

	assert.True(t, f.stockOf(t, product.ID).Equal(dec("2")))
}

func TestCreateSale_OneBadLineFailsWholeSale(t *testing.T) {
	f := newFixture(t)
	f.openSession(t)
	plenty := f.seedProduct(t, "Bread", "50", "0.50", "1.50")
	scarce := f.seedProduct(t, "Caviar", "1", "40.00", "90.00")

	result, err := f.sales.CreateSale(context.Background(), &CreateSaleInput{
		UserID: f.userID,
		Items: []SaleItemInput{
			{ProductID: plenty.ID, Quantity: dec("2")},
			{ProductID: scarce.ID, Quantity: dec("3")},
		},
		PaidAmount:    dec("300.00"),
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)
	require.False(t, result.Success)

	// Neither line may have moved stock.
	assert.True(t, f.stockOf(t, plenty.ID).Equal(dec("50")))
	assert.True(t, f.stockOf(t, scarce.ID).Equal(dec("1")))
}

func TestCreateSale_RequiresOpenSession(t *testing.T) {
	f := newFixture(t)
	product := f.seedProduct(t, "Gum", "10", "0.20", "0.50")

	result, err := f.sales.CreateSale(context.Background(), &CreateSaleInput{
		UserID:        f.userID,
		Items:         []SaleItemInput{{ProductID: product.ID, Quantity: dec("1")}},
		PaidAmount:    dec("0.50"),
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)
	require.False(t, result.Success)
	assert.Equal(t, "No open drawer session for user", result.Message)
	assert.True(t, f.stockOf(t, product.ID).Equal(dec("10")))
}

func TestCreateSale_PartialPaymentNegativeChange(t *testing.T) {
	f := newFixture(t)
	f.openSession(t)
	product := f.seedProduct(t, "Rice 5kg", "20", "6.00", "10.00")

	result, err := f.sales.CreateSale(context.Background(), &CreateSaleInput{
		UserID:        f.userID,
		Items:         []SaleItemInput{{ProductID: product.ID, Quantity: dec("2")}},
		PaidAmount:    dec("15.00"),
		PaymentMethod: enum.PaymentMethodCredit,
	})
	require.NoError(t, err)
	require.True(t, result.Success)

	assert.Equal(t, enum.PaymentStatusPartial, result.Sale.PaymentStatus)
	assert.True(t, result.Change.Equal(dec("-5.00")))
}

func TestCreateSale_LinePriceOverrideAndCharges(t *testing.T) {
	f := newFixture(t)
	f.openSession(t)
	product := f.seedProduct(t, "Olive Oil", "8", "5.00", "9.00")

	override := dec("8.00")
	result, err := f.sales.CreateSale(context.Background(), &CreateSaleInput{
		UserID:         f.userID,
		Items:          []SaleItemInput{{ProductID: product.ID, Quantity: dec("2"), UnitPrice: &override}},
		TaxAmount:      dec("1.60"),
		DiscountAmount: dec("2.00"),
		PaidAmount:     dec("20.00"),
		PaymentMethod:  enum.PaymentMethodCard,
	})
	require.NoError(t, err)
	require.True(t, result.Success)

	assert.True(t, result.Sale.SubTotal.Equal(dec("16.00")))
	assert.True(t, result.Sale.GrandTotal.Equal(dec("15.60")))
	assert.True(t, result.Change.Equal(dec("4.40")))
}

func TestCreateSale_ConcurrentNoOversell(t *testing.T) {
	f := newFixture(t)
	f.openSession(t)
	product := f.seedProduct(t, "Limited Edition", "5", "10.00", "25.00")

	input := func() *CreateSaleInput {
		return &CreateSaleInput{
			UserID:        f.userID,
			Items:         []SaleItemInput{{ProductID: product.ID, Quantity: dec("5")}},
			PaidAmount:    dec("125.00"),
			PaymentMethod: enum.PaymentMethodCash,
		}
	}

	results := make([]*SaleResult, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := f.sales.CreateSale(context.Background(), input())
			require.NoError(t, err)
			results[i] = result
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, r := range results {
		if r.Success {
			successes++
		}
	}
	assert.Equal(t, 1, successes, "exactly one of the competing sales may win")
	assert.True(t, f.stockOf(t, product.ID).Equal(dec("0")))
}

func TestCreateSale_BackorderAllowed(t *testing.T) {
	f := newFixtureWithConfig(t, config.StockConfig{AllowBackorder: true})
	f.openSession(t)
	product := f.seedProduct(t, "Preorder Console", "1", "200.00", "350.00")

	result, err := f.sales.CreateSale(context.Background(), &CreateSaleInput{
		UserID:        f.userID,
		Items:         []SaleItemInput{{ProductID: product.ID, Quantity: dec("3")}},
		PaidAmount:    dec("1050.00"),
		PaymentMethod: enum.PaymentMethodCard,
	})
	require.NoError(t, err)
	require.True(t, result.Success, result.Message)

	assert.True(t, f.stockOf(t, product.ID).Equal(dec("-2")))
}

func TestCreateSale_RejectsEmptyAndInvalidInput(t *testing.T) {
	f := newFixture(t)
	f.openSession(t)
	product := f.seedProduct(t, "Soap", "10", "0.80", "2.00")

	result, err := f.sales.CreateSale(context.Background(), &CreateSaleInput{
		UserID:        f.userID,
		PaidAmount:    dec("5.00"),
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)
	assert.False(t, result.Success)

	result, err = f.sales.CreateSale(context.Background(), &CreateSaleInput{
		UserID:        f.userID,
		Items:         []SaleItemInput{{ProductID: product.ID, Quantity: dec("0")}},
		PaidAmount:    dec("5.00"),
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)
	assert.False(t, result.Success)

	assert.True(t, f.stockOf(t, product.ID).Equal(dec("10")))
}

func TestGetDailySummary(t *testing.T) {
	f := newFixture(t)
	f.openSession(t)
	product := f.seedProduct(t, "Coffee", "30", "3.00", "7.00")

	for i := 0; i < 3; i++ {
		result, err := f.sales.CreateSale(context.Background(), &CreateSaleInput{
			UserID:        f.userID,
			Items:         []SaleItemInput{{ProductID: product.ID, Quantity: dec("1")}},
			PaidAmount:    dec("7.00"),
			PaymentMethod: enum.PaymentMethodCash,
		})
		require.NoError(t, err)
		require.True(t, result.Success)
	}

	summary, err := f.sales.GetDailySummary(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.SaleCount)
	assert.True(t, summary.TotalSales.Equal(dec("21.00")))
}
