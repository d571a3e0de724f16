package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	"github.com/nexuspos/pos-api/internal/domain/enum"
)

type sessionRepo struct {
	s *state
}

func (r *sessionRepo) Create(ctx context.Context, session *entity.DrawerSession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	session.CreatedAt = time.Now()
	session.UpdatedAt = session.CreatedAt
	r.s.sessions[session.ID] = *session
	return nil
}

func (r *sessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.DrawerSession, error) {
	session, ok := r.s.sessions[id]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (r *sessionRepo) GetOpenByUser(ctx context.Context, userID uuid.UUID) (*entity.DrawerSession, error) {
	var latest *entity.DrawerSession
	for id := range r.s.sessions {
		session := r.s.sessions[id]
		if session.UserID != userID || session.Status != enum.SessionStatusOpen {
			continue
		}
		if latest == nil || session.StartTime.After(latest.StartTime) {
			s := session
			latest = &s
		}
	}
	return latest, nil
}

func (r *sessionRepo) Update(ctx context.Context, session *entity.DrawerSession) error {
	session.UpdatedAt = time.Now()
	r.s.sessions[session.ID] = *session
	return nil
}

func (r *sessionRepo) CreateCashFlow(ctx context.Context, flow *entity.DrawerCashFlow) error {
	if flow.ID == uuid.Nil {
		flow.ID = uuid.New()
	}
	flow.CreatedAt = time.Now()
	r.s.cashFlows[flow.ID] = *flow
	return nil
}

func (r *sessionRepo) ListCashFlows(ctx context.Context, sessionID uuid.UUID) ([]entity.DrawerCashFlow, error) {
	var flows []entity.DrawerCashFlow
	for _, flow := range r.s.cashFlows {
		if flow.SessionID == sessionID {
			flows = append(flows, flow)
		}
	}
	sort.Slice(flows, func(i, j int) bool { return flows[i].CreatedAt.Before(flows[j].CreatedAt) })
	return flows, nil
}
