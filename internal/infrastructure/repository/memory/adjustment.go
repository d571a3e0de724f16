package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	"github.com/nexuspos/pos-api/pkg/pagination"
)

type adjustmentRepo struct {
	s *state
}

func (r *adjustmentRepo) Create(ctx context.Context, adj *entity.StockAdjustment) error {
	if adj.ID == uuid.Nil {
		adj.ID = uuid.New()
	}
	adj.CreatedAt = time.Now()
	stored := *adj
	stored.Items = nil
	r.s.adjustments[adj.ID] = stored
	return nil
}

func (r *adjustmentRepo) CreateItems(ctx context.Context, items []entity.AdjustmentItem) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].CreatedAt = time.Now()
		r.s.adjustmentItems[items[i].ID] = items[i]
	}
	return nil
}

func (r *adjustmentRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.StockAdjustment, error) {
	adj, ok := r.s.adjustments[id]
	if !ok {
		return nil, nil
	}
	for _, item := range r.s.adjustmentItems {
		if item.AdjustmentID == id {
			adj.Items = append(adj.Items, item)
		}
	}
	return &adj, nil
}

func (r *adjustmentRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.StockAdjustment, int64, error) {
	var matched []entity.StockAdjustment
	for _, adj := range r.s.adjustments {
		matched = append(matched, adj)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].AdjustmentDate.After(matched[j].AdjustmentDate)
	})

	total := int64(len(matched))
	params.Validate()
	start := params.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + params.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}
