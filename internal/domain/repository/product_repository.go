package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/njorogedev/leathercraft-api/internal/domain/access"
	"github.com/njorogedev/leathercraft-api/internal/domain/entity"
	"github.com/njorogedev/leathercraft-api/pkg/pagination"
)

// ProductRepository defines the interface for product data operations.
// Stock mutators are guarded single-statement updates so two concurrent
// lifecycle transitions cannot both pass a stale check.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.Product, error)
	GetBySKU(ctx context.Context, scope access.Scope, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error
	List(ctx context.Context, scope access.Scope, params *ProductFilterParams) ([]entity.Product, int64, error)
	// DeductStock atomically decrements stock only if sufficient quantity
	// exists. Returns (false, nil) when stock is insufficient.
	DeductStock(ctx context.Context, id uuid.UUID, quantity int) (bool, error)
	// AddStock atomically increments stock.
	AddStock(ctx context.Context, id uuid.UUID, quantity int) error
}

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	LowStockBelow *int
}
