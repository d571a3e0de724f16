package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	"github.com/nexuspos/pos-api/internal/domain/repository"
	"github.com/nexuspos/pos-api/pkg/apperror"
	"github.com/nexuspos/pos-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// ProductService handles catalog operations. Products are deactivated, not
// deleted, so committed sales keep their references.
type ProductService struct {
	txManager    repository.TxManager
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new product service
func NewProductService(txManager repository.TxManager, productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		txManager:    txManager,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name         string
	Barcode      *string
	Description  *string
	CategoryID   *uuid.UUID
	UnitMeasure  string
	AlertQty     decimal.Decimal
	SellingPrice decimal.Decimal
	ExpiryDate   *time.Time
}

// CreateProduct creates a product together with its zero-quantity inventory
// row, atomically.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}
	if input.SellingPrice.IsNegative() {
		return nil, apperror.NewBadRequestError("Selling price cannot be negative")
	}

	if input.Barcode != nil && *input.Barcode != "" {
		existing, err := s.productRepo.GetByBarcode(ctx, *input.Barcode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("A product with this barcode already exists")
		}
	}

	unitMeasure := input.UnitMeasure
	if unitMeasure == "" {
		unitMeasure = "pcs"
	}

	uow, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	product := &entity.Product{
		Name:        input.Name,
		Barcode:     input.Barcode,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		UnitMeasure: unitMeasure,
		AlertQty:    input.AlertQty,
		IsActive:    true,
	}
	if err := uow.Products().Create(ctx, product); err != nil {
		return nil, err
	}

	inventory := &entity.Inventory{
		ProductID:    product.ID,
		Quantity:     decimal.Zero,
		SellingPrice: input.SellingPrice,
		ExpiryDate:   input.ExpiryDate,
	}
	if err := uow.Inventories().Create(ctx, inventory); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	product.Inventory = inventory
	return product, nil
}

// UpdateProductInput represents the update product input. Nil fields are
// left unchanged.
type UpdateProductInput struct {
	Name         *string
	Barcode      *string
	Description  *string
	CategoryID   *uuid.UUID
	UnitMeasure  *string
	AlertQty     *decimal.Decimal
	SellingPrice *decimal.Decimal
	ExpiryDate   *time.Time
}

// UpdateProduct updates catalog fields and the inventory selling price.
// Quantity and average cost are never touched here; those belong to the
// stock flows.
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	uow, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	product, err := uow.Products().GetWithInventory(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Barcode != nil {
		product.Barcode = input.Barcode
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
	}
	if input.UnitMeasure != nil {
		product.UnitMeasure = *input.UnitMeasure
	}
	if input.AlertQty != nil {
		product.AlertQty = *input.AlertQty
	}

	inventory := product.Inventory
	product.Inventory = nil
	if err := uow.Products().Update(ctx, product); err != nil {
		return nil, err
	}

	if inventory != nil && (input.SellingPrice != nil || input.ExpiryDate != nil) {
		if input.SellingPrice != nil {
			if input.SellingPrice.IsNegative() {
				return nil, apperror.NewBadRequestError("Selling price cannot be negative")
			}
			inventory.SellingPrice = *input.SellingPrice
		}
		if input.ExpiryDate != nil {
			inventory.ExpiryDate = input.ExpiryDate
		}
		if err := uow.Inventories().Update(ctx, inventory); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	product.Inventory = inventory
	return product, nil
}

// DeactivateProduct takes a product off sale without deleting it.
func (s *ProductService) DeactivateProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	product.IsActive = false
	return s.productRepo.Update(ctx, product)
}

// GetProduct loads a product with its inventory.
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetWithInventory(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// GetProductByBarcode is the scan-at-till lookup.
func (s *ProductService) GetProductByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	product, err := s.productRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts returns products matching the filter.
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return s.productRepo.List(ctx, params)
}

// GetLowStockProducts returns active products at or below their alert level.
func (s *ProductService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}

// CreateCategory creates a product category.
func (s *ProductService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	if name == "" {
		return nil, apperror.NewBadRequestError("Category name is required")
	}

	slug := utils.Slugify(name)
	existing, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Category already exists")
	}

	category := &entity.Category{Name: name, Slug: slug}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories returns all categories.
func (s *ProductService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}
