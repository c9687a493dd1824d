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

// VendorService handles vendor management operations
type VendorService struct {
	vendorRepo repository.VendorRepository
}

// NewVendorService creates a new vendor service
func NewVendorService(vendorRepo repository.VendorRepository) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

// VendorInput represents vendor create fields
type VendorInput struct {
	Name          string
	Email         *string
	Phone         *string
	Address       *string
	ContactPerson *string
}

// Create creates a new vendor
func (s *VendorService) Create(ctx context.Context, scope access.Scope, input *VendorInput) (*entity.Vendor, error) {
	tenantID, ok := scope.TenantID()
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	vendor := &entity.Vendor{
		TenantID:      tenantID,
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		ContactPerson: input.ContactPerson,
	}
	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, translateDuplicate(err, "Vendor with this name already exists")
	}
	return vendor, nil
}

// Get returns a vendor under the caller's scope
func (s *VendorService) Get(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}
	return vendor, nil
}

// List returns vendors under the caller's scope
func (s *VendorService) List(ctx context.Context, scope access.Scope, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Vendor], error) {
	vendors, total, err := s.vendorRepo.List(ctx, scope, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(vendors, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdateVendorInput represents partial vendor updates
type UpdateVendorInput struct {
	Name          *string
	Email         *string
	Phone         *string
	Address       *string
	ContactPerson *string
}

// Update updates a vendor's details
func (s *VendorService) Update(ctx context.Context, scope access.Scope, id uuid.UUID, input *UpdateVendorInput) (*entity.Vendor, error) {
	vendor, err := s.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		vendor.Name = *input.Name
	}
	if input.Email != nil {
		vendor.Email = input.Email
	}
	if input.Phone != nil {
		vendor.Phone = input.Phone
	}
	if input.Address != nil {
		vendor.Address = input.Address
	}
	if input.ContactPerson != nil {
		vendor.ContactPerson = input.ContactPerson
	}

	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, translateDuplicate(err, "Vendor with this name already exists")
	}
	return vendor, nil
}

// Delete removes a vendor
func (s *VendorService) Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error {
	if _, err := s.Get(ctx, scope, id); err != nil {
		return err
	}
	return s.vendorRepo.Delete(ctx, scope, id)
}
