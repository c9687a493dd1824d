package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/njorogedev/leathercraft-api/internal/domain/access"
	"github.com/njorogedev/leathercraft-api/internal/domain/entity"
	"github.com/njorogedev/leathercraft-api/pkg/pagination"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error
	List(ctx context.Context, scope access.Scope, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
}

// VendorRepository defines the interface for vendor data operations
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.Vendor, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error
	List(ctx context.Context, scope access.Scope, params *pagination.PaginationParams, search string) ([]entity.Vendor, int64, error)
}

// LeatherSupplierRepository defines the interface for leather supplier data operations
type LeatherSupplierRepository interface {
	Create(ctx context.Context, supplier *entity.LeatherSupplier) error
	GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.LeatherSupplier, error)
	Update(ctx context.Context, supplier *entity.LeatherSupplier) error
	Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error
	List(ctx context.Context, scope access.Scope, params *pagination.PaginationParams, search string) ([]entity.LeatherSupplier, int64, error)
}

// LeatherTypeRepository defines the interface for leather type data operations
type LeatherTypeRepository interface {
	Create(ctx context.Context, leatherType *entity.LeatherType) error
	GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.LeatherType, error)
	Update(ctx context.Context, leatherType *entity.LeatherType) error
	Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error
	List(ctx context.Context, scope access.Scope, params *pagination.PaginationParams, search string) ([]entity.LeatherType, int64, error)
}
