package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	"github.com/nexuspos/pos-api/pkg/pagination"
)

// StockAdjustmentRepository defines the interface for manual stock
// correction documents.
type StockAdjustmentRepository interface {
	Create(ctx context.Context, adj *entity.StockAdjustment) error
	CreateItems(ctx context.Context, items []entity.AdjustmentItem) error
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.StockAdjustment, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.StockAdjustment, int64, error)
}
