package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	"github.com/nexuspos/pos-api/internal/domain/enum"
	"github.com/nexuspos/pos-api/internal/domain/repository"
	"github.com/nexuspos/pos-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// SessionService handles the cash-drawer session lifecycle. A user has at
// most one open session, and sales and returns require one.
type SessionService struct {
	txManager repository.TxManager
}

// NewSessionService creates a new drawer session service
func NewSessionService(txManager repository.TxManager) *SessionService {
	return &SessionService{txManager: txManager}
}

// OpenSession starts a drawer session with the counted opening float.
func (s *SessionService) OpenSession(ctx context.Context, userID uuid.UUID, openingCash decimal.Decimal) (*entity.DrawerSession, error) {
	if openingCash.IsNegative() {
		return nil, apperror.NewBadRequestError("Opening cash cannot be negative")
	}

	uow, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	existing, err := uow.Sessions().GetOpenByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrSessionAlreadyOpen
	}

	session := &entity.DrawerSession{
		UserID:      userID,
		StartTime:   time.Now(),
		OpeningCash: openingCash,
		Status:      enum.SessionStatusOpen,
	}
	if err := uow.Sessions().Create(ctx, session); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return session, nil
}

// CloseSession ends the user's open session. The expected drawer cash is
// reconstructed from the session's cash payments, cash refunds and drawer
// cash flows; variance is the counted amount minus that expectation.
func (s *SessionService) CloseSession(ctx context.Context, userID uuid.UUID, actualCash decimal.Decimal, remarks *string) (*entity.DrawerSession, error) {
	if actualCash.IsNegative() {
		return nil, apperror.NewBadRequestError("Counted cash cannot be negative")
	}

	uow, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	session, err := uow.Sessions().GetOpenByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.ErrNoOpenSession
	}

	systemCash, err := s.expectedDrawerCash(ctx, uow, session)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	variance := actualCash.Sub(systemCash)
	session.EndTime = &now
	session.ClosingCashSystem = systemCash
	session.ClosingCashActual = &actualCash
	session.Variance = &variance
	session.Status = enum.SessionStatusClosed
	session.Remarks = remarks

	if err := uow.Sessions().Update(ctx, session); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) expectedDrawerCash(ctx context.Context, uow repository.UnitOfWork, session *entity.DrawerSession) (decimal.Decimal, error) {
	cash := session.OpeningCash

	// Cash payments received on the session's sales.
	sales, err := uow.Sales().ListBySession(ctx, session.ID)
	if err != nil {
		return decimal.Zero, err
	}
	for _, sale := range sales {
		for _, p := range sale.Payments {
			if p.Method == enum.PaymentMethodCash {
				cash = cash.Add(p.Amount)
			}
		}
	}

	// Refunds handed out for the session's sales returns.
	returns, err := uow.SalesReturns().ListBySession(ctx, session.ID)
	if err != nil {
		return decimal.Zero, err
	}
	for _, ret := range returns {
		cash = cash.Sub(ret.TotalRefund)
	}

	// Drawer cash flows.
	flows, err := uow.Sessions().ListCashFlows(ctx, session.ID)
	if err != nil {
		return decimal.Zero, err
	}
	for _, flow := range flows {
		switch flow.Type {
		case enum.CashFlowTypePayIn:
			cash = cash.Add(flow.Amount)
		case enum.CashFlowTypeSafeDrop, enum.CashFlowTypePayOut:
			cash = cash.Sub(flow.Amount)
		}
	}

	return cash, nil
}

// RecordCashFlow records cash moving in or out of the open drawer outside
// of a sale.
func (s *SessionService) RecordCashFlow(ctx context.Context, userID uuid.UUID, flowType enum.CashFlowType, amount decimal.Decimal, reason *string) (*entity.DrawerCashFlow, error) {
	if !amount.IsPositive() {
		return nil, apperror.NewBadRequestError("Cash flow amount must be positive")
	}

	uow, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	session, err := uow.Sessions().GetOpenByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.ErrNoOpenSession
	}

	flow := &entity.DrawerCashFlow{
		SessionID: session.ID,
		Amount:    amount,
		Type:      flowType,
		Reason:    reason,
	}
	if err := uow.Sessions().CreateCashFlow(ctx, flow); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return flow, nil
}

// GetOpenSession returns the user's open session, or a not-found error.
func (s *SessionService) GetOpenSession(ctx context.Context, userID uuid.UUID) (*entity.DrawerSession, error) {
	uow, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	session, err := uow.Sessions().GetOpenByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.ErrNoOpenSession
	}
	return session, nil
}

// GetSession loads a session by ID, with its cash flows.
func (s *SessionService) GetSession(ctx context.Context, id uuid.UUID) (*entity.DrawerSession, error) {
	uow, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	session, err := uow.Sessions().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFoundError("Drawer session")
	}
	flows, err := uow.Sessions().ListCashFlows(ctx, id)
	if err != nil {
		return nil, err
	}
	session.CashFlows = flows
	return session, nil
}
