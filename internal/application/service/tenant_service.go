package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/njorogedev/leathercraft-api/internal/domain/access"
	"github.com/njorogedev/leathercraft-api/internal/domain/entity"
	"github.com/njorogedev/leathercraft-api/internal/domain/repository"
	"github.com/njorogedev/leathercraft-api/pkg/apperror"
	"github.com/njorogedev/leathercraft-api/pkg/pagination"
)

// TenantService handles tenant management operations
type TenantService struct {
	tenantRepo repository.TenantRepository
	userRepo   repository.UserRepository
}

// NewTenantService creates a new tenant service
func NewTenantService(tenantRepo repository.TenantRepository, userRepo repository.UserRepository) *TenantService {
	return &TenantService{tenantRepo: tenantRepo, userRepo: userRepo}
}

// CreateTenantInput represents the create tenant input
type CreateTenantInput struct {
	Name    string
	Address *string
}

// Create creates a new tenant. Only elevated callers may create tenants
// outside of registration bootstrap.
func (s *TenantService) Create(ctx context.Context, scope access.Scope, input *CreateTenantInput) (*entity.Tenant, error) {
	if !scope.IsElevated() {
		return nil, apperror.ErrForbidden
	}

	tenant := &entity.Tenant{
		Name:    input.Name,
		Address: input.Address,
	}
	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, translateDuplicate(err, "Tenant with this name already exists")
	}
	return tenant, nil
}

// Get returns a tenant visible to the caller
func (s *TenantService) Get(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.Tenant, error) {
	if !scope.IsElevated() {
		tenantID, ok := scope.TenantID()
		if !ok || tenantID != id {
			return nil, apperror.NewNotFoundError("Tenant")
		}
	}

	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperror.NewNotFoundError("Tenant")
	}
	return tenant, nil
}

// List returns tenants visible to the caller
func (s *TenantService) List(ctx context.Context, scope access.Scope, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Tenant], error) {
	tenants, total, err := s.tenantRepo.List(ctx, scope, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(tenants, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdateTenantInput represents the update tenant input
type UpdateTenantInput struct {
	Name    *string
	Address *string
}

// Update updates a tenant's details
func (s *TenantService) Update(ctx context.Context, scope access.Scope, id uuid.UUID, input *UpdateTenantInput) (*entity.Tenant, error) {
	tenant, err := s.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		tenant.Name = *input.Name
	}
	if input.Address != nil {
		tenant.Address = input.Address
	}

	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, translateDuplicate(err, "Tenant with this name already exists")
	}
	return tenant, nil
}

// Delete removes a tenant. Elevated callers only.
func (s *TenantService) Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error {
	if !scope.IsElevated() {
		return apperror.ErrForbidden
	}

	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tenant == nil {
		return apperror.NewNotFoundError("Tenant")
	}
	return s.tenantRepo.Delete(ctx, id)
}

// AddUserInput represents the input for associating a user with a tenant
type AddUserInput struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
}

// AddUser associates a user with a tenant. A user belongs to at most one
// tenant.
func (s *TenantService) AddUser(ctx context.Context, scope access.Scope, input *AddUserInput) (*entity.TenantUser, error) {
	if !scope.IsElevated() {
		tenantID, ok := scope.TenantID()
		if !ok || tenantID != input.TenantID {
			return nil, apperror.ErrForbidden
		}
	}

	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	tenant, err := s.tenantRepo.GetByID(ctx, input.TenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperror.NewNotFoundError("Tenant")
	}

	association := &entity.TenantUser{UserID: input.UserID, TenantID: input.TenantID}
	if err := s.tenantRepo.AddUser(ctx, association); err != nil {
		return nil, translateDuplicate(err, "User is already associated with a tenant")
	}
	return association, nil
}
