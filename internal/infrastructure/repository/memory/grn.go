package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	domainRepo "github.com/nexuspos/pos-api/internal/domain/repository"
)

type grnRepo struct {
	s *state
}

func (r *grnRepo) Create(ctx context.Context, grn *entity.GRN) error {
	if grn.ID == uuid.Nil {
		grn.ID = uuid.New()
	}
	grn.CreatedAt = time.Now()
	stored := *grn
	stored.Items = nil
	r.s.grns[grn.ID] = stored
	return nil
}

func (r *grnRepo) CreateItems(ctx context.Context, items []entity.GRNItem) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].CreatedAt = time.Now()
		r.s.grnItems[items[i].ID] = items[i]
	}
	return nil
}

func (r *grnRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.GRN, error) {
	grn, ok := r.s.grns[id]
	if !ok {
		return nil, nil
	}
	return &grn, nil
}

func (r *grnRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.GRN, error) {
	grn, ok := r.s.grns[id]
	if !ok {
		return nil, nil
	}
	for _, item := range r.s.grnItems {
		if item.GRNID == id {
			grn.Items = append(grn.Items, item)
		}
	}
	sort.Slice(grn.Items, func(i, j int) bool {
		return grn.Items[i].CreatedAt.Before(grn.Items[j].CreatedAt)
	})
	return &grn, nil
}

func (r *grnRepo) GetItemByID(ctx context.Context, id uuid.UUID) (*entity.GRNItem, error) {
	item, ok := r.s.grnItems[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r *grnRepo) UpdateItem(ctx context.Context, item *entity.GRNItem) error {
	r.s.grnItems[item.ID] = *item
	return nil
}

func (r *grnRepo) List(ctx context.Context, params *domainRepo.GRNFilterParams) ([]entity.GRN, int64, error) {
	var matched []entity.GRN
	for _, grn := range r.s.grns {
		if params.SupplierID != nil && grn.SupplierID != *params.SupplierID {
			continue
		}
		if params.Search != "" {
			needle := strings.ToLower(params.Search)
			ref := ""
			if grn.ReferenceNo != nil {
				ref = strings.ToLower(*grn.ReferenceNo)
			}
			if !strings.Contains(strings.ToLower(grn.GRNNo), needle) && !strings.Contains(ref, needle) {
				continue
			}
		}
		matched = append(matched, grn)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ReceivedDate.After(matched[j].ReceivedDate) })

	total := int64(len(matched))
	params.Pagination.Validate()
	start := params.Pagination.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + params.Pagination.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}
