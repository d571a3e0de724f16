package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	domainRepo "github.com/nexuspos/pos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

type saleRepo struct {
	s *state
}

func (r *saleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	sale.CreatedAt = time.Now()
	sale.UpdatedAt = sale.CreatedAt
	stored := *sale
	stored.Items = nil
	stored.Payments = nil
	r.s.sales[sale.ID] = stored
	return nil
}

func (r *saleRepo) CreateItems(ctx context.Context, items []entity.SalesItem) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].CreatedAt = time.Now()
		r.s.salesItems[items[i].ID] = items[i]
	}
	return nil
}

func (r *saleRepo) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	payment.CreatedAt = time.Now()
	r.s.payments[payment.ID] = *payment
	return nil
}

func (r *saleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	return &sale, nil
}

func (r *saleRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	for _, item := range r.s.salesItems {
		if item.SaleID == id {
			sale.Items = append(sale.Items, item)
		}
	}
	sort.Slice(sale.Items, func(i, j int) bool {
		return sale.Items[i].CreatedAt.Before(sale.Items[j].CreatedAt)
	})
	for _, p := range r.s.payments {
		if p.SaleID == id {
			sale.Payments = append(sale.Payments, p)
		}
	}
	return &sale, nil
}

func (r *saleRepo) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Sale, error) {
	for _, sale := range r.s.sales {
		if sale.InvoiceNo == invoiceNo {
			return &sale, nil
		}
	}
	return nil, nil
}

func (r *saleRepo) GetItemByID(ctx context.Context, id uuid.UUID) (*entity.SalesItem, error) {
	item, ok := r.s.salesItems[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r *saleRepo) UpdateItem(ctx context.Context, item *entity.SalesItem) error {
	item.UpdatedAt = time.Now()
	r.s.salesItems[item.ID] = *item
	return nil
}

func (r *saleRepo) ListByDateRange(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var matched []entity.Sale
	for _, sale := range r.s.sales {
		if params.StartDate != nil && sale.SaleDate.Before(*params.StartDate) {
			continue
		}
		if params.EndDate != nil && sale.SaleDate.After(*params.EndDate) {
			continue
		}
		if params.CustomerID != nil && (sale.CustomerID == nil || *sale.CustomerID != *params.CustomerID) {
			continue
		}
		if params.UserID != nil && sale.UserID != *params.UserID {
			continue
		}
		if params.SessionID != nil && sale.SessionID != *params.SessionID {
			continue
		}
		matched = append(matched, sale)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].SaleDate.After(matched[j].SaleDate) })

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

func (r *saleRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.Sale, error) {
	var sales []entity.Sale
	for _, sale := range r.s.sales {
		if sale.SessionID != sessionID {
			continue
		}
		for _, p := range r.s.payments {
			if p.SaleID == sale.ID {
				sale.Payments = append(sale.Payments, p)
			}
		}
		sales = append(sales, sale)
	}
	sort.Slice(sales, func(i, j int) bool { return sales[i].SaleDate.Before(sales[j].SaleDate) })
	return sales, nil
}

func (r *saleRepo) DailyTotal(ctx context.Context, day time.Time) (decimal.Decimal, int64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	total := decimal.Zero
	var count int64
	for _, sale := range r.s.sales {
		if sale.SaleDate.Before(start) || !sale.SaleDate.Before(end) {
			continue
		}
		total = total.Add(sale.GrandTotal)
		count++
	}
	return total, count, nil
}
