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

// LeatherService handles leather suppliers and leather types
type LeatherService struct {
	supplierRepo repository.LeatherSupplierRepository
	typeRepo     repository.LeatherTypeRepository
}

// NewLeatherService creates a new leather service
func NewLeatherService(
	supplierRepo repository.LeatherSupplierRepository,
	typeRepo repository.LeatherTypeRepository,
) *LeatherService {
	return &LeatherService{supplierRepo: supplierRepo, typeRepo: typeRepo}
}

// SupplierInput represents leather supplier create fields
type SupplierInput struct {
	Name          string
	Email         *string
	Phone         *string
	Address       *string
	ContactPerson *string
}

// CreateSupplier creates a new leather supplier
func (s *LeatherService) CreateSupplier(ctx context.Context, scope access.Scope, input *SupplierInput) (*entity.LeatherSupplier, error) {
	tenantID, ok := scope.TenantID()
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	supplier := &entity.LeatherSupplier{
		TenantID:      tenantID,
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		ContactPerson: input.ContactPerson,
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, translateDuplicate(err, "Leather supplier with this name already exists")
	}
	return supplier, nil
}

// GetSupplier returns a leather supplier under the caller's scope
func (s *LeatherService) GetSupplier(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.LeatherSupplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Leather supplier")
	}
	return supplier, nil
}

// ListSuppliers returns leather suppliers under the caller's scope
func (s *LeatherService) ListSuppliers(ctx context.Context, scope access.Scope, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.LeatherSupplier], error) {
	suppliers, total, err := s.supplierRepo.List(ctx, scope, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(suppliers, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdateSupplierInput represents partial supplier updates
type UpdateSupplierInput struct {
	Name          *string
	Email         *string
	Phone         *string
	Address       *string
	ContactPerson *string
}

// UpdateSupplier updates a leather supplier's details
func (s *LeatherService) UpdateSupplier(ctx context.Context, scope access.Scope, id uuid.UUID, input *UpdateSupplierInput) (*entity.LeatherSupplier, error) {
	supplier, err := s.GetSupplier(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		supplier.Name = *input.Name
	}
	if input.Email != nil {
		supplier.Email = input.Email
	}
	if input.Phone != nil {
		supplier.Phone = input.Phone
	}
	if input.Address != nil {
		supplier.Address = input.Address
	}
	if input.ContactPerson != nil {
		supplier.ContactPerson = input.ContactPerson
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, translateDuplicate(err, "Leather supplier with this name already exists")
	}
	return supplier, nil
}

// DeleteSupplier removes a leather supplier
func (s *LeatherService) DeleteSupplier(ctx context.Context, scope access.Scope, id uuid.UUID) error {
	if _, err := s.GetSupplier(ctx, scope, id); err != nil {
		return err
	}
	return s.supplierRepo.Delete(ctx, scope, id)
}

// TypeInput represents leather type create fields
type TypeInput struct {
	Name        string
	Description *string
}

// CreateType creates a new leather type
func (s *LeatherService) CreateType(ctx context.Context, scope access.Scope, input *TypeInput) (*entity.LeatherType, error) {
	tenantID, ok := scope.TenantID()
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	leatherType := &entity.LeatherType{
		TenantID:    tenantID,
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.typeRepo.Create(ctx, leatherType); err != nil {
		return nil, translateDuplicate(err, "Leather type with this name already exists")
	}
	return leatherType, nil
}

// GetType returns a leather type under the caller's scope
func (s *LeatherService) GetType(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.LeatherType, error) {
	leatherType, err := s.typeRepo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if leatherType == nil {
		return nil, apperror.NewNotFoundError("Leather type")
	}
	return leatherType, nil
}

// ListTypes returns leather types under the caller's scope
func (s *LeatherService) ListTypes(ctx context.Context, scope access.Scope, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.LeatherType], error) {
	leatherTypes, total, err := s.typeRepo.List(ctx, scope, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(leatherTypes, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdateTypeInput represents partial leather type updates
type UpdateTypeInput struct {
	Name        *string
	Description *string
}

// UpdateType updates a leather type's details
func (s *LeatherService) UpdateType(ctx context.Context, scope access.Scope, id uuid.UUID, input *UpdateTypeInput) (*entity.LeatherType, error) {
	leatherType, err := s.GetType(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		leatherType.Name = *input.Name
	}
	if input.Description != nil {
		leatherType.Description = input.Description
	}

	if err := s.typeRepo.Update(ctx, leatherType); err != nil {
		return nil, translateDuplicate(err, "Leather type with this name already exists")
	}
	return leatherType, nil
}

// DeleteType removes a leather type
func (s *LeatherService) DeleteType(ctx context.Context, scope access.Scope, id uuid.UUID) error {
	if _, err := s.GetType(ctx, scope, id); err != nil {
		return err
	}
	return s.typeRepo.Delete(ctx, scope, id)
}
