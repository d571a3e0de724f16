package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	"github.com/nexuspos/pos-api/internal/domain/repository"
)

// ActivityService writes the append-only user action trail.
type ActivityService struct {
	activityRepo repository.ActivityLogRepository
}

// NewActivityService creates a new activity service
func NewActivityService(activityRepo repository.ActivityLogRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

// Record appends an activity entry. Failures are logged and swallowed; the
// audit trail never fails the operation it describes.
func (s *ActivityService) Record(ctx context.Context, userID *uuid.UUID, action string, details *string) {
	entry := &entity.ActivityLog{
		UserID:  userID,
		Action:  action,
		Details: details,
	}
	if err := s.activityRepo.Create(ctx, entry); err != nil {
		log.Printf("Warning: failed to record activity %s: %v", action, err)
	}
}

// Recent returns the newest activity entries.
func (s *ActivityService) Recent(ctx context.Context, limit int) ([]entity.ActivityLog, error) {
	return s.activityRepo.ListRecent(ctx, limit)
}
