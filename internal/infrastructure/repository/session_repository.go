package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	"github.com/nexuspos/pos-api/internal/domain/enum"
	domainRepo "github.com/nexuspos/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type drawerSessionRepository struct {
	db *gorm.DB
}

// NewDrawerSessionRepository creates a new drawer session repository
func NewDrawerSessionRepository(db *gorm.DB) domainRepo.DrawerSessionRepository {
	return &drawerSessionRepository{db: db}
}

func (r *drawerSessionRepository) Create(ctx context.Context, session *entity.DrawerSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *drawerSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DrawerSession, error) {
	var session entity.DrawerSession
	err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &session, err
}

func (r *drawerSessionRepository) GetOpenByUser(ctx context.Context, userID uuid.UUID) (*entity.DrawerSession, error) {
	var session entity.DrawerSession
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, enum.SessionStatusOpen).
		Order("start_time DESC").
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &session, err
}

func (r *drawerSessionRepository) Update(ctx context.Context, session *entity.DrawerSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *drawerSessionRepository) CreateCashFlow(ctx context.Context, flow *entity.DrawerCashFlow) error {
	return r.db.WithContext(ctx).Create(flow).Error
}

func (r *drawerSessionRepository) ListCashFlows(ctx context.Context, sessionID uuid.UUID) ([]entity.DrawerCashFlow, error) {
	var flows []entity.DrawerCashFlow
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&flows).Error
	return flows, err
}
