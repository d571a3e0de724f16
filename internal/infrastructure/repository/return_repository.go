package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	domainRepo "github.com/nexuspos/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type salesReturnRepository struct {
	db *gorm.DB
}

// NewSalesReturnRepository creates a new sales return repository
func NewSalesReturnRepository(db *gorm.DB) domainRepo.SalesReturnRepository {
	return &salesReturnRepository{db: db}
}

func (r *salesReturnRepository) Create(ctx context.Context, ret *entity.SalesReturn) error {
	return r.db.WithContext(ctx).Omit("Items").Create(ret).Error
}

func (r *salesReturnRepository) CreateItems(ctx context.Context, items []entity.SalesReturnItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *salesReturnRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.SalesReturn, error) {
	var ret entity.SalesReturn
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Items.Product").
		First(&ret, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ret, err
}

func (r *salesReturnRepository) ListBySale(ctx context.Context, saleID uuid.UUID) ([]entity.SalesReturn, error) {
	var returns []entity.SalesReturn
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("sale_id = ?", saleID).
		Order("return_date DESC").
		Find(&returns).Error
	return returns, err
}

func (r *salesReturnRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.SalesReturn, error) {
	var returns []entity.SalesReturn
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("return_date DESC").
		Find(&returns).Error
	return returns, err
}

type purchaseReturnRepository struct {
	db *gorm.DB
}

// NewPurchaseReturnRepository creates a new purchase return repository
func NewPurchaseReturnRepository(db *gorm.DB) domainRepo.PurchaseReturnRepository {
	return &purchaseReturnRepository{db: db}
}

func (r *purchaseReturnRepository) Create(ctx context.Context, ret *entity.PurchaseReturn) error {
	return r.db.WithContext(ctx).Omit("Items").Create(ret).Error
}

func (r *purchaseReturnRepository) CreateItems(ctx context.Context, items []entity.PurchaseReturnItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *purchaseReturnRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.PurchaseReturn, error) {
	var ret entity.PurchaseReturn
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Items").Preload("Items.Product").
		First(&ret, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ret, err
}
