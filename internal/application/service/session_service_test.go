package service

import (
	"context"
	"testing"

	"github.com/nexuspos/pos-api/internal/domain/enum"
	"github.com/nexuspos/pos-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSession_SecondOpenRejected(t *testing.T) {
	f := newFixture(t)

	session, err := f.sessions.OpenSession(context.Background(), f.userID, dec("100.00"))
	require.NoError(t, err)
	assert.Equal(t, enum.SessionStatusOpen, session.Status)
	assert.True(t, session.OpeningCash.Equal(dec("100.00")))

	_, err = f.sessions.OpenSession(context.Background(), f.userID, dec("50.00"))
	assert.ErrorIs(t, err, apperror.ErrSessionAlreadyOpen)
}

func TestOpenSession_RejectsNegativeFloat(t *testing.T) {
	f := newFixture(t)

	_, err := f.sessions.OpenSession(context.Background(), f.userID, dec("-1.00"))
	require.Error(t, err)
}

func TestCloseSession_ReconcilesCashAndVariance(t *testing.T) {
	f := newFixture(t)
	f.openSession(t)
	product := f.seedProduct(t, "Bread", "50", "0.80", "2.00")

	// Two cash sales: 3 x 2.00 and 2 x 2.00.
	sale := sellProduct(t, f, product, "3")
	sellProduct(t, f, product, "2")

	// Refund one unit in good condition: -2.00.
	ret, err := f.returns.ProcessReturn(context.Background(), &ProcessReturnInput{
		UserID: f.userID,
		SaleID: sale.ID,
		Items: []ReturnItemInput{
			{SaleItemID: sale.Items[0].ID, Quantity: dec("1"), Condition: enum.ReturnConditionGood},
		},
	})
	require.NoError(t, err)
	require.True(t, ret.Success)

	// Drawer flows: drop 20.00 to the safe, pay in 5.00, pay out 3.00.
	_, err = f.sessions.RecordCashFlow(context.Background(), f.userID, enum.CashFlowTypeSafeDrop, dec("20.00"), nil)
	require.NoError(t, err)
	_, err = f.sessions.RecordCashFlow(context.Background(), f.userID, enum.CashFlowTypePayIn, dec("5.00"), nil)
	require.NoError(t, err)
	_, err = f.sessions.RecordCashFlow(context.Background(), f.userID, enum.CashFlowTypePayOut, dec("3.00"), nil)
	require.NoError(t, err)

	// Expected: 100 + 6 + 4 - 2 - 20 + 5 - 3 = 90.00. Counted: 88.50.
	closed, err := f.sessions.CloseSession(context.Background(), f.userID, dec("88.50"), nil)
	require.NoError(t, err)

	assert.Equal(t, enum.SessionStatusClosed, closed.Status)
	require.NotNil(t, closed.EndTime)
	assert.True(t, closed.ClosingCashSystem.Equal(dec("90.00")))
	require.NotNil(t, closed.Variance)
	assert.True(t, closed.Variance.Equal(dec("-1.50")))
}

func TestCloseSession_IgnoresNonCashPayments(t *testing.T) {
	f := newFixture(t)
	f.openSession(t)
	product := f.seedProduct(t, "Milk", "10", "0.50", "1.50")

	result, err := f.sales.CreateSale(context.Background(), &CreateSaleInput{
		UserID:        f.userID,
		Items:         []SaleItemInput{{ProductID: product.ID, Quantity: dec("2")}},
		PaidAmount:    dec("3.00"),
		PaymentMethod: enum.PaymentMethodCard,
	})
	require.NoError(t, err)
	require.True(t, result.Success)

	closed, err := f.sessions.CloseSession(context.Background(), f.userID, dec("100.00"), nil)
	require.NoError(t, err)

	// Card takings never hit the drawer.
	assert.True(t, closed.ClosingCashSystem.Equal(dec("100.00")))
	assert.True(t, closed.Variance.Equal(dec("0.00")))
}

func TestCloseSession_NoOpenSession(t *testing.T) {
	f := newFixture(t)

	_, err := f.sessions.CloseSession(context.Background(), f.userID, dec("100.00"), nil)
	assert.ErrorIs(t, err, apperror.ErrNoOpenSession)
}

func TestRecordCashFlow_RequiresOpenSessionAndPositiveAmount(t *testing.T) {
	f := newFixture(t)

	_, err := f.sessions.RecordCashFlow(context.Background(), f.userID, enum.CashFlowTypeSafeDrop, dec("10.00"), nil)
	assert.ErrorIs(t, err, apperror.ErrNoOpenSession)

	f.openSession(t)
	_, err = f.sessions.RecordCashFlow(context.Background(), f.userID, enum.CashFlowTypePayIn, dec("0"), nil)
	require.Error(t, err)

	reason := "petty cash top-up"
	flow, err := f.sessions.RecordCashFlow(context.Background(), f.userID, enum.CashFlowTypePayIn, dec("15.00"), &reason)
	require.NoError(t, err)
	assert.Equal(t, enum.CashFlowTypePayIn, flow.Type)

	session, err := f.sessions.GetOpenSession(context.Background(), f.userID)
	require.NoError(t, err)
	full, err := f.sessions.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	require.Len(t, full.CashFlows, 1)
	assert.True(t, full.CashFlows[0].Amount.Equal(dec("15.00")))
}
