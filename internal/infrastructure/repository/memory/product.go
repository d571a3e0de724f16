package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	domainRepo "github.com/nexuspos/pos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

type productRepo struct {
	s *state
}

func (r *productRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	r.s.products[product.ID] = *product
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *productRepo) GetWithInventory(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	if inv, ok := r.s.inventories[id]; ok {
		p.Inventory = &inv
	}
	return &p, nil
}

func (r *productRepo) GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.Barcode != nil && *p.Barcode == barcode {
			if inv, ok := r.s.inventories[p.ID]; ok {
				p.Inventory = &inv
			}
			return &p, nil
		}
	}
	return nil, nil
}

func (r *productRepo) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()
	r.s.products[product.ID] = *product
	return nil
}

func (r *productRepo) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	var matched []entity.Product
	for _, p := range r.s.products {
		if params.Search != "" {
			needle := strings.ToLower(params.Search)
			barcode := ""
			if p.Barcode != nil {
				barcode = strings.ToLower(*p.Barcode)
			}
			if !strings.Contains(strings.ToLower(p.Name), needle) && !strings.Contains(barcode, needle) {
				continue
			}
		}
		if params.ActiveOnly && !p.IsActive {
			continue
		}
		if params.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *params.CategoryID) {
			continue
		}
		if params.LowStock && !r.isLowStock(p) {
			continue
		}
		if inv, ok := r.s.inventories[p.ID]; ok {
			p.Inventory = &inv
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })

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

func (r *productRepo) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	for _, p := range r.s.products {
		if !p.IsActive || !r.isLowStock(p) {
			continue
		}
		if inv, ok := r.s.inventories[p.ID]; ok {
			p.Inventory = &inv
		}
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return products, nil
}

func (r *productRepo) isLowStock(p entity.Product) bool {
	inv, ok := r.s.inventories[p.ID]
	if !ok {
		return false
	}
	return inv.Quantity.LessThanOrEqual(p.AlertQty)
}

type inventoryRepo struct {
	s *state
}

func (r *inventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	inv.CreatedAt = time.Now()
	inv.UpdatedAt = inv.CreatedAt
	r.s.inventories[inv.ProductID] = *inv
	return nil
}

func (r *inventoryRepo) GetByProductID(ctx context.Context, productID uuid.UUID) (*entity.Inventory, error) {
	inv, ok := r.s.inventories[productID]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

// GetByProductIDForUpdate is identical to GetByProductID: the store-wide
// lock held by the enclosing unit of work already serializes writers.
func (r *inventoryRepo) GetByProductIDForUpdate(ctx context.Context, productID uuid.UUID) (*entity.Inventory, error) {
	return r.GetByProductID(ctx, productID)
}

func (r *inventoryRepo) Update(ctx context.Context, inv *entity.Inventory) error {
	inv.UpdatedAt = time.Now()
	r.s.inventories[inv.ProductID] = *inv
	return nil
}

func (r *inventoryRepo) DecrementStock(ctx context.Context, productID uuid.UUID, qty decimal.Decimal) (bool, error) {
	inv, ok := r.s.inventories[productID]
	if !ok || inv.Quantity.LessThan(qty) {
		return false, nil
	}
	inv.Quantity = inv.Quantity.Sub(qty)
	inv.UpdatedAt = time.Now()
	r.s.inventories[productID] = inv
	return true, nil
}

func (r *inventoryRepo) IncrementStock(ctx context.Context, productID uuid.UUID, qty decimal.Decimal) error {
	inv, ok := r.s.inventories[productID]
	if !ok {
		return nil
	}
	inv.Quantity = inv.Quantity.Add(qty)
	inv.UpdatedAt = time.Now()
	r.s.inventories[productID] = inv
	return nil
}
