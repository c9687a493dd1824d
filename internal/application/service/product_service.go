package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/njorogedev/leathercraft-api/internal/domain/access"
	"github.com/njorogedev/leathercraft-api/internal/domain/entity"
	"github.com/njorogedev/leathercraft-api/internal/domain/repository"
	"github.com/njorogedev/leathercraft-api/pkg/apperror"
	"github.com/njorogedev/leathercraft-api/pkg/pagination"
)

// ProductService handles product catalog operations. Stock is read here but
// only mutated by the order lifecycle engine.
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name          string
	SKU           string
	Description   *string
	Price         decimal.Decimal
	CostPrice     decimal.Decimal
	StockQuantity int
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, scope access.Scope, input *CreateProductInput) (*entity.Product, error) {
	tenantID, ok := scope.TenantID()
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	if input.StockQuantity < 0 {
		return nil, apperror.NewBadRequestError("Stock quantity cannot be negative")
	}

	product := &entity.Product{
		TenantID:      tenantID,
		Name:          input.Name,
		SKU:           input.SKU,
		Description:   input.Description,
		Price:         input.Price,
		CostPrice:     input.CostPrice,
		StockQuantity: input.StockQuantity,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, translateDuplicate(err, "Product with this SKU already exists")
	}
	return product, nil
}

// Get returns a product under the caller's scope
func (s *ProductService) Get(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProductsInput represents product listing filters
type ListProductsInput struct {
	Pagination    *pagination.PaginationParams
	Search        string
	LowStockBelow *int
}

// List returns products under the caller's scope
func (s *ProductService) List(ctx context.Context, scope access.Scope, input *ListProductsInput) (*pagination.PaginatedResult[entity.Product], error) {
	params := &repository.ProductFilterParams{
		Pagination:    input.Pagination,
		Search:        input.Search,
		LowStockBelow: input.LowStockBelow,
	}
	products, total, err := s.productRepo.List(ctx, scope, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(products, pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)), nil
}

// UpdateProductInput represents the update product input. Stock quantity is
// deliberately absent; stock moves only through order lifecycle operations.
type UpdateProductInput struct {
	Name        *string
	SKU         *string
	Description *string
	Price       *decimal.Decimal
	CostPrice   *decimal.Decimal
}

// Update updates a product's catalog fields
func (s *ProductService) Update(ctx context.Context, scope access.Scope, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.SKU != nil {
		product.SKU = *input.SKU
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.CostPrice != nil {
		product.CostPrice = *input.CostPrice
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, translateDuplicate(err, "Product with this SKU already exists")
	}
	return product, nil
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error {
	if _, err := s.Get(ctx, scope, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, scope, id)
}
