package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	domainRepo "github.com/nexuspos/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type grnRepository struct {
	db *gorm.DB
}

// NewGRNRepository creates a new goods receipt repository
func NewGRNRepository(db *gorm.DB) domainRepo.GRNRepository {
	return &grnRepository{db: db}
}

func (r *grnRepository) Create(ctx context.Context, grn *entity.GRN) error {
	return r.db.WithContext(ctx).Omit("Items").Create(grn).Error
}

func (r *grnRepository) CreateItems(ctx context.Context, items []entity.GRNItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *grnRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.GRN, error) {
	var grn entity.GRN
	err := r.db.WithContext(ctx).First(&grn, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &grn, err
}

func (r *grnRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.GRN, error) {
	var grn entity.GRN
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Items").Preload("Items.Product").
		First(&grn, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &grn, err
}

func (r *grnRepository) GetItemByID(ctx context.Context, id uuid.UUID) (*entity.GRNItem, error) {
	var item entity.GRNItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *grnRepository) UpdateItem(ctx context.Context, item *entity.GRNItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *grnRepository) List(ctx context.Context, params *domainRepo.GRNFilterParams) ([]entity.GRN, int64, error) {
	var grns []entity.GRN
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.GRN{})

	if params.SupplierID != nil {
		query = query.Where("supplier_id = ?", *params.SupplierID)
	}
	if params.Search != "" {
		query = query.Where("grn_no ILIKE ? OR reference_no ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Supplier").
		Order("received_date DESC").
		Find(&grns).Error

	return grns, total, err
}
