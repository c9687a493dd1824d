package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/njorogedev/leathercraft-api/internal/domain/access"
	"github.com/njorogedev/leathercraft-api/internal/domain/entity"
	"github.com/njorogedev/leathercraft-api/pkg/pagination"
)

// TenantRepository defines the interface for tenant data operations. It also
// acts as the tenant directory: GetUserTenant resolves a caller's scope.
type TenantRepository interface {
	Create(ctx context.Context, tenant *entity.Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error)
	GetByName(ctx context.Context, name string) (*entity.Tenant, error)
	Update(ctx context.Context, tenant *entity.Tenant) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns all tenants for elevated scopes, or just the caller's own.
	List(ctx context.Context, scope access.Scope, params *pagination.PaginationParams) ([]entity.Tenant, int64, error)
	AddUser(ctx context.Context, tenantUser *entity.TenantUser) error
	// GetUserTenant returns the tenant association for a user, or nil when the
	// user belongs to no tenant.
	GetUserTenant(ctx context.Context, userID uuid.UUID) (*entity.TenantUser, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
