package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
)

// DrawerSessionRepository defines the interface for cash-drawer session
// data operations.
type DrawerSessionRepository interface {
	Create(ctx context.Context, session *entity.DrawerSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DrawerSession, error)
	// GetOpenByUser returns the user's currently open session, if any
	GetOpenByUser(ctx context.Context, userID uuid.UUID) (*entity.DrawerSession, error)
	Update(ctx context.Context, session *entity.DrawerSession) error
	CreateCashFlow(ctx context.Context, flow *entity.DrawerCashFlow) error
	ListCashFlows(ctx context.Context, sessionID uuid.UUID) ([]entity.DrawerCashFlow, error)
}
