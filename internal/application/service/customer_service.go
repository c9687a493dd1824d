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

// CustomerService handles customer management operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CustomerInput represents customer create/update fields
type CustomerInput struct {
	Name    string
	Email   *string
	Phone   *string
	Address *string
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, scope access.Scope, input *CustomerInput) (*entity.Customer, error) {
	tenantID, ok := scope.TenantID()
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	customer := &entity.Customer{
		TenantID: tenantID,
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Address:  input.Address,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, translateDuplicate(err, "Customer with this name already exists")
	}
	return customer, nil
}

// Get returns a customer under the caller's scope
func (s *CustomerService) Get(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// List returns customers under the caller's scope
func (s *CustomerService) List(ctx context.Context, scope access.Scope, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, scope, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(customers, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdateCustomerInput represents partial customer updates
type UpdateCustomerInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// Update updates a customer's details
func (s *CustomerService) Update(ctx context.Context, scope access.Scope, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Address != nil {
		customer.Address = input.Address
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, translateDuplicate(err, "Customer with this name already exists")
	}
	return customer, nil
}

// Delete removes a customer
func (s *CustomerService) Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error {
	if _, err := s.Get(ctx, scope, id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, scope, id)
}
