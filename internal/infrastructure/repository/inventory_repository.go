package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	domainRepo "github.com/nexuspos/pos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, inv *entity.Inventory) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *inventoryRepository) GetByProductID(ctx context.Context, productID uuid.UUID) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := r.db.WithContext(ctx).First(&inv, "product_id = ?", productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &inv, err
}

// GetByProductIDForUpdate acquires a row-level lock so concurrent stock
// movements on the same product serialize until the transaction settles.
func (r *inventoryRepository) GetByProductIDForUpdate(ctx context.Context, productID uuid.UUID) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&inv, "product_id = ?", productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &inv, err
}

func (r *inventoryRepository) Update(ctx context.Context, inv *entity.Inventory) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

// DecrementStock atomically decrements stock only if sufficient quantity exists.
// Uses: UPDATE inventories SET quantity = quantity - qty WHERE product_id = ? AND quantity >= qty
func (r *inventoryRepository) DecrementStock(ctx context.Context, productID uuid.UUID, qty decimal.Decimal) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entity.Inventory{}).
		Where("product_id = ? AND quantity >= ?", productID, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))

	if result.Error != nil {
		return false, result.Error
	}

	// If no rows were affected, insufficient stock
	return result.RowsAffected > 0, nil
}

func (r *inventoryRepository) IncrementStock(ctx context.Context, productID uuid.UUID, qty decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&entity.Inventory{}).
		Where("product_id = ?", productID).
		Update("quantity", gorm.Expr("quantity + ?", qty)).Error
}
