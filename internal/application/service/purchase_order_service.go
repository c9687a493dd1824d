package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/njorogedev/leathercraft-api/internal/domain/access"
	"github.com/njorogedev/leathercraft-api/internal/domain/entity"
	"github.com/njorogedev/leathercraft-api/internal/domain/enum"
	"github.com/njorogedev/leathercraft-api/internal/domain/repository"
	"github.com/njorogedev/leathercraft-api/pkg/apperror"
	"github.com/njorogedev/leathercraft-api/pkg/pagination"
)

// PurchaseOrderService handles both purchase order variants and the receiving
// side of the order lifecycle engine. Standard orders restock products on
// receipt; raw leather orders only change status.
type PurchaseOrderService struct {
	orderRepo        repository.PurchaseOrderRepository
	leatherOrderRepo repository.LeatherPurchaseOrderRepository
	vendorRepo       repository.VendorRepository
	supplierRepo     repository.LeatherSupplierRepository
	productRepo      repository.ProductRepository
	leatherTypeRepo  repository.LeatherTypeRepository
	uow              repository.UnitOfWork
}

// NewPurchaseOrderService creates a new purchase order service
func NewPurchaseOrderService(
	orderRepo repository.PurchaseOrderRepository,
	leatherOrderRepo repository.LeatherPurchaseOrderRepository,
	vendorRepo repository.VendorRepository,
	supplierRepo repository.LeatherSupplierRepository,
	productRepo repository.ProductRepository,
	leatherTypeRepo repository.LeatherTypeRepository,
	uow repository.UnitOfWork,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		orderRepo:        orderRepo,
		leatherOrderRepo: leatherOrderRepo,
		vendorRepo:       vendorRepo,
		supplierRepo:     supplierRepo,
		productRepo:      productRepo,
		leatherTypeRepo:  leatherTypeRepo,
		uow:              uow,
	}
}

// PurchaseOrderLineInput represents a line on a standard purchase order.
// UnitPrice defaults to the product's cost price when omitted.
type PurchaseOrderLineInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice *decimal.Decimal
}

// CreatePurchaseOrderInput represents the create purchase order input.
// Status may be DRAFT or ORDERED; anything else is rejected.
type CreatePurchaseOrderInput struct {
	VendorID    uuid.UUID
	OrderNumber string
	Date        time.Time
	Status      enum.PurchaseOrderStatus
	Lines       []PurchaseOrderLineInput
}

// Create creates a new standard purchase order
func (s *PurchaseOrderService) Create(ctx context.Context, scope access.Scope, input *CreatePurchaseOrderInput) (*entity.PurchaseOrder, error) {
	tenantID, ok := scope.TenantID()
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	status, err := initialPurchaseStatus(input.Status)
	if err != nil {
		return nil, err
	}

	vendor, err := s.vendorRepo.GetByID(ctx, scope, input.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}

	lines := make([]entity.PurchaseOrderLine, 0, len(input.Lines))
	for _, li := range input.Lines {
		line, err := s.buildLine(ctx, scope, &li)
		if err != nil {
			return nil, err
		}
		lines = append(lines, *line)
	}

	order := &entity.PurchaseOrder{
		TenantID:    tenantID,
		VendorID:    input.VendorID,
		OrderNumber: input.OrderNumber,
		Date:        input.Date,
		Status:      status,
		Lines:       lines,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, translateDuplicate(err, "Purchase order with this order number already exists")
	}
	return s.Get(ctx, scope, order.ID)
}

func (s *PurchaseOrderService) buildLine(ctx context.Context, scope access.Scope, input *PurchaseOrderLineInput) (*entity.PurchaseOrderLine, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewBadRequestError("Line quantity must be positive")
	}

	product, err := s.productRepo.GetByID(ctx, scope, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	unitPrice := product.CostPrice
	if input.UnitPrice != nil {
		unitPrice = *input.UnitPrice
	}

	return &entity.PurchaseOrderLine{
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		UnitPrice: unitPrice,
	}, nil
}

// Get returns a standard purchase order with its vendor and lines
func (s *PurchaseOrderService) Get(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.PurchaseOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	return order, nil
}

// List returns standard purchase orders under the caller's scope
func (s *PurchaseOrderService) List(ctx context.Context, scope access.Scope, input *ListOrdersInput) (*pagination.PaginatedResult[entity.PurchaseOrder], error) {
	params := &repository.OrderFilterParams{
		Pagination: input.Pagination,
		Status:     input.Status,
		Search:     input.Search,
	}
	orders, total, err := s.orderRepo.List(ctx, scope, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(orders, pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)), nil
}

// UpdatePurchaseOrderInput represents partial order header updates
type UpdatePurchaseOrderInput struct {
	VendorID    *uuid.UUID
	OrderNumber *string
	Date        *time.Time
}

// Update updates a DRAFT purchase order's header fields
func (s *PurchaseOrderService) Update(ctx context.Context, scope access.Scope, id uuid.UUID, input *UpdatePurchaseOrderInput) (*entity.PurchaseOrder, error) {
	order, err := s.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if order.Status != enum.PurchaseOrderDraft {
		return nil, apperror.NewInvalidStateError("Only DRAFT orders can be edited")
	}

	if input.VendorID != nil {
		vendor, err := s.vendorRepo.GetByID(ctx, scope, *input.VendorID)
		if err != nil {
			return nil, err
		}
		if vendor == nil {
			return nil, apperror.NewNotFoundError("Vendor")
		}
		order.VendorID = *input.VendorID
	}
	if input.OrderNumber != nil {
		order.OrderNumber = *input.OrderNumber
	}
	if input.Date != nil {
		order.Date = *input.Date
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, translateDuplicate(err, "Purchase order with this order number already exists")
	}
	return s.Get(ctx, scope, id)
}

// Delete removes a DRAFT purchase order
func (s *PurchaseOrderService) Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error {
	order, err := s.Get(ctx, scope, id)
	if err != nil {
		return err
	}
	if order.Status != enum.PurchaseOrderDraft {
		return apperror.NewInvalidStateError("Only DRAFT orders can be deleted")
	}
	return s.orderRepo.Delete(ctx, scope, id)
}

// MarkOrdered places a DRAFT purchase order with the vendor
func (s *PurchaseOrderService) MarkOrdered(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.PurchaseOrder, error) {
	order, err := s.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if order.Status != enum.PurchaseOrderDraft {
		return nil, apperror.NewInvalidStateError(
			fmt.Sprintf("Only DRAFT orders can be placed, current status is %s", order.Status))
	}

	advanced, err := s.orderRepo.AdvanceStatus(ctx, id, enum.PurchaseOrderDraft, enum.PurchaseOrderOrdered)
	if err != nil {
		return nil, err
	}
	if !advanced {
		return nil, apperror.NewInvalidStateError("Purchase order is no longer in DRAFT status")
	}
	return s.Get(ctx, scope, id)
}

// Receive completes a standard purchase order: ORDERED -> RECEIVED with every
// line's product stock incremented, all in one transaction.
func (s *PurchaseOrderService) Receive(ctx context.Context, scope access.Scope, orderID uuid.UUID) (*entity.PurchaseOrder, error) {
	err := s.uow.Execute(ctx, func(tx repository.TxRepositories) error {
		order, err := tx.PurchaseOrders().GetByID(ctx, scope, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return apperror.NewNotFoundError("Purchase order")
		}

		return completeReceipt(order.Status,
			func() (bool, error) {
				return tx.PurchaseOrders().AdvanceStatus(ctx, orderID, enum.PurchaseOrderOrdered, enum.PurchaseOrderReceived)
			},
			func() error {
				for i := range order.Lines {
					line := &order.Lines[i]
					if err := tx.Products().AddStock(ctx, line.ProductID, line.Quantity); err != nil {
						return err
					}
				}
				return nil
			})
	})
	if err != nil {
		return nil, mapTxError(err)
	}

	logrus.WithField("order_id", orderID).Info("purchase order received")
	return s.Get(ctx, scope, orderID)
}

// completeReceipt is the shared ORDERED -> RECEIVED transition used by both
// purchase order variants. advance is the guarded status update; applyStock
// is the variant's stock effect, nil when receiving moves no stock.
func completeReceipt(status enum.PurchaseOrderStatus, advance func() (bool, error), applyStock func() error) error {
	if status != enum.PurchaseOrderOrdered {
		return apperror.NewInvalidStateError(
			fmt.Sprintf("Only ORDERED purchase orders can be received, current status is %s", status))
	}

	advanced, err := advance()
	if err != nil {
		return err
	}
	if !advanced {
		return apperror.NewInvalidStateError("Purchase order is no longer in ORDERED status")
	}

	if applyStock != nil {
		return applyStock()
	}
	return nil
}

func initialPurchaseStatus(status enum.PurchaseOrderStatus) (enum.PurchaseOrderStatus, error) {
	switch status {
	case "":
		return enum.PurchaseOrderDraft, nil
	case enum.PurchaseOrderDraft, enum.PurchaseOrderOrdered:
		return status, nil
	}
	return "", apperror.NewBadRequestError("Purchase orders can only be created as DRAFT or ORDERED")
}
