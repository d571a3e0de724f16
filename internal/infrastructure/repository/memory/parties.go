package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	domainRepo "github.com/nexuspos/pos-api/internal/domain/repository"
	"github.com/nexuspos/pos-api/pkg/pagination"
)

// Customers returns a customer repository over the store. Unlike the unit
// of work repositories, it locks the store per call.
func (s *Store) Customers() domainRepo.CustomerRepository {
	return &customerRepo{store: s}
}

// Suppliers returns a supplier repository over the store.
func (s *Store) Suppliers() domainRepo.SupplierRepository {
	return &supplierRepo{store: s}
}

type customerRepo struct {
	store *Store
}

func (r *customerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = customer.CreatedAt
	r.store.state.customers[customer.ID] = *customer
	return nil
}

func (r *customerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	customer, ok := r.store.state.customers[id]
	if !ok {
		return nil, nil
	}
	return &customer, nil
}

func (r *customerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	customer.UpdatedAt = time.Now()
	r.store.state.customers[customer.ID] = *customer
	return nil
}

func (r *customerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.state.customers, id)
	return nil
}

func (r *customerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var matched []entity.Customer
	needle := strings.ToLower(search)
	for _, c := range r.store.state.customers {
		if search != "" && !strings.Contains(strings.ToLower(c.Name), needle) {
			continue
		}
		matched = append(matched, c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	return paginate(matched, params)
}

type supplierRepo struct {
	store *Store
}

func (r *supplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if supplier.ID == uuid.Nil {
		supplier.ID = uuid.New()
	}
	supplier.CreatedAt = time.Now()
	supplier.UpdatedAt = supplier.CreatedAt
	r.store.state.suppliers[supplier.ID] = *supplier
	return nil
}

func (r *supplierRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	supplier, ok := r.store.state.suppliers[id]
	if !ok {
		return nil, nil
	}
	return &supplier, nil
}

func (r *supplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	supplier.UpdatedAt = time.Now()
	r.store.state.suppliers[supplier.ID] = *supplier
	return nil
}

func (r *supplierRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var matched []entity.Supplier
	needle := strings.ToLower(search)
	for _, s := range r.store.state.suppliers {
		if search != "" && !strings.Contains(strings.ToLower(s.Name), needle) {
			continue
		}
		matched = append(matched, s)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	return paginate(matched, params)
}

func paginate[T any](items []T, params *pagination.PaginationParams) ([]T, int64, error) {
	total := int64(len(items))
	params.Validate()
	start := params.Offset()
	if start > len(items) {
		start = len(items)
	}
	end := start + params.PerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total, nil
}
