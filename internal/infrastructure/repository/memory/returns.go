package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
)

type salesReturnRepo struct {
	s *state
}

func (r *salesReturnRepo) Create(ctx context.Context, ret *entity.SalesReturn) error {
	if ret.ID == uuid.Nil {
		ret.ID = uuid.New()
	}
	ret.CreatedAt = time.Now()
	stored := *ret
	stored.Items = nil
	r.s.salesReturns[ret.ID] = stored
	return nil
}

func (r *salesReturnRepo) CreateItems(ctx context.Context, items []entity.SalesReturnItem) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].CreatedAt = time.Now()
		r.s.salesRetItems[items[i].ID] = items[i]
	}
	return nil
}

func (r *salesReturnRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.SalesReturn, error) {
	ret, ok := r.s.salesReturns[id]
	if !ok {
		return nil, nil
	}
	for _, item := range r.s.salesRetItems {
		if item.ReturnID == id {
			ret.Items = append(ret.Items, item)
		}
	}
	return &ret, nil
}

func (r *salesReturnRepo) ListBySale(ctx context.Context, saleID uuid.UUID) ([]entity.SalesReturn, error) {
	var returns []entity.SalesReturn
	for _, ret := range r.s.salesReturns {
		if ret.SaleID != saleID {
			continue
		}
		for _, item := range r.s.salesRetItems {
			if item.ReturnID == ret.ID {
				ret.Items = append(ret.Items, item)
			}
		}
		returns = append(returns, ret)
	}
	sort.Slice(returns, func(i, j int) bool { return returns[i].ReturnDate.After(returns[j].ReturnDate) })
	return returns, nil
}

func (r *salesReturnRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.SalesReturn, error) {
	var returns []entity.SalesReturn
	for _, ret := range r.s.salesReturns {
		if ret.SessionID == sessionID {
			returns = append(returns, ret)
		}
	}
	sort.Slice(returns, func(i, j int) bool { return returns[i].ReturnDate.After(returns[j].ReturnDate) })
	return returns, nil
}

type purchaseReturnRepo struct {
	s *state
}

func (r *purchaseReturnRepo) Create(ctx context.Context, ret *entity.PurchaseReturn) error {
	if ret.ID == uuid.Nil {
		ret.ID = uuid.New()
	}
	ret.CreatedAt = time.Now()
	stored := *ret
	stored.Items = nil
	r.s.purchaseReturns[ret.ID] = stored
	return nil
}

func (r *purchaseReturnRepo) CreateItems(ctx context.Context, items []entity.PurchaseReturnItem) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].CreatedAt = time.Now()
		r.s.purchaseRetItems[items[i].ID] = items[i]
	}
	return nil
}

func (r *purchaseReturnRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.PurchaseReturn, error) {
	ret, ok := r.s.purchaseReturns[id]
	if !ok {
		return nil, nil
	}
	for _, item := range r.s.purchaseRetItems {
		if item.ReturnID == id {
			ret.Items = append(ret.Items, item)
		}
	}
	return &ret, nil
}
