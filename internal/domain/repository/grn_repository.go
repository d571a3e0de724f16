package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	"github.com/nexuspos/pos-api/pkg/pagination"
)

// GRNRepository defines the interface for goods receipt data operations.
type GRNRepository interface {
	Create(ctx context.Context, grn *entity.GRN) error
	CreateItems(ctx context.Context, items []entity.GRNItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.GRN, error)
	// GetWithDetails loads a GRN with its items and supplier
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.GRN, error)
	GetItemByID(ctx context.Context, id uuid.UUID) (*entity.GRNItem, error)
	// UpdateItem persists the quantity-returned counter on a GRN item
	UpdateItem(ctx context.Context, item *entity.GRNItem) error
	List(ctx context.Context, params *GRNFilterParams) ([]entity.GRN, int64, error)
}

// GRNFilterParams contains filtering parameters for GRN queries
type GRNFilterParams struct {
	Pagination *pagination.PaginationParams
	SupplierID *uuid.UUID
	Search     string
}
