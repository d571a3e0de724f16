package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	domainRepo "github.com/nexuspos/pos-api/internal/domain/repository"
	"github.com/nexuspos/pos-api/pkg/pagination"
	"gorm.io/gorm"
)

type stockAdjustmentRepository struct {
	db *gorm.DB
}

// NewStockAdjustmentRepository creates a new stock adjustment repository
func NewStockAdjustmentRepository(db *gorm.DB) domainRepo.StockAdjustmentRepository {
	return &stockAdjustmentRepository{db: db}
}

func (r *stockAdjustmentRepository) Create(ctx context.Context, adj *entity.StockAdjustment) error {
	return r.db.WithContext(ctx).Omit("Items").Create(adj).Error
}

func (r *stockAdjustmentRepository) CreateItems(ctx context.Context, items []entity.AdjustmentItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *stockAdjustmentRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.StockAdjustment, error) {
	var adj entity.StockAdjustment
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Items.Product").
		First(&adj, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &adj, err
}

func (r *stockAdjustmentRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.StockAdjustment, int64, error) {
	var adjustments []entity.StockAdjustment
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.StockAdjustment{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("adjustment_date DESC").
		Find(&adjustments).Error

	return adjustments, total, err
}
