package service

import (
	"context"
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

// LeatherPurchaseOrderLineInput represents a line on a raw leather order.
// There is no unit-price default; raw leather has no catalog price.
type LeatherPurchaseOrderLineInput struct {
	LeatherTypeID uuid.UUID
	Quantity      int
	UnitPrice     decimal.Decimal
}

// CreateLeatherPurchaseOrderInput represents the create input for a raw
// leather purchase order
type CreateLeatherPurchaseOrderInput struct {
	SupplierID  uuid.UUID
	OrderNumber string
	Date        time.Time
	Status      enum.PurchaseOrderStatus
	Lines       []LeatherPurchaseOrderLineInput
}

// CreateLeatherOrder creates a new raw leather purchase order
func (s *PurchaseOrderService) CreateLeatherOrder(ctx context.Context, scope access.Scope, input *CreateLeatherPurchaseOrderInput) (*entity.LeatherPurchaseOrder, error) {
	tenantID, ok := scope.TenantID()
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	status, err := initialPurchaseStatus(input.Status)
	if err != nil {
		return nil, err
	}

	supplier, err := s.supplierRepo.GetByID(ctx, scope, input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Leather supplier")
	}

	lines := make([]entity.LeatherPurchaseOrderLine, 0, len(input.Lines))
	for _, li := range input.Lines {
		line, err := s.buildLeatherLine(ctx, scope, &li)
		if err != nil {
			return nil, err
		}
		lines = append(lines, *line)
	}

	order := &entity.LeatherPurchaseOrder{
		TenantID:    tenantID,
		SupplierID:  input.SupplierID,
		OrderNumber: input.OrderNumber,
		Date:        input.Date,
		Status:      status,
		Lines:       lines,
	}
	if err := s.leatherOrderRepo.Create(ctx, order); err != nil {
		return nil, translateDuplicate(err, "Leather purchase order with this order number already exists")
	}
	return s.GetLeatherOrder(ctx, scope, order.ID)
}

func (s *PurchaseOrderService) buildLeatherLine(ctx context.Context, scope access.Scope, input *LeatherPurchaseOrderLineInput) (*entity.LeatherPurchaseOrderLine, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewBadRequestError("Line quantity must be positive")
	}

	leatherType, err := s.leatherTypeRepo.GetByID(ctx, scope, input.LeatherTypeID)
	if err != nil {
		return nil, err
	}
	if leatherType == nil {
		return nil, apperror.NewNotFoundError("Leather type")
	}

	return &entity.LeatherPurchaseOrderLine{
		LeatherTypeID: input.LeatherTypeID,
		Quantity:      input.Quantity,
		UnitPrice:     input.UnitPrice,
	}, nil
}

// GetLeatherOrder returns a raw leather order with its supplier and lines
func (s *PurchaseOrderService) GetLeatherOrder(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.LeatherPurchaseOrder, error) {
	order, err := s.leatherOrderRepo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Leather purchase order")
	}
	return order, nil
}

// ListLeatherOrders returns raw leather orders under the caller's scope
func (s *PurchaseOrderService) ListLeatherOrders(ctx context.Context, scope access.Scope, input *ListOrdersInput) (*pagination.PaginatedResult[entity.LeatherPurchaseOrder], error) {
	params := &repository.OrderFilterParams{
		Pagination: input.Pagination,
		Status:     input.Status,
		Search:     input.Search,
	}
	orders, total, err := s.leatherOrderRepo.List(ctx, scope, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(orders, pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)), nil
}

// UpdateLeatherPurchaseOrderInput represents partial header updates
type UpdateLeatherPurchaseOrderInput struct {
	SupplierID  *uuid.UUID
	OrderNumber *string
	Date        *time.Time
}

// UpdateLeatherOrder updates a DRAFT raw leather order's header fields
func (s *PurchaseOrderService) UpdateLeatherOrder(ctx context.Context, scope access.Scope, id uuid.UUID, input *UpdateLeatherPurchaseOrderInput) (*entity.LeatherPurchaseOrder, error) {
	order, err := s.GetLeatherOrder(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if order.Status != enum.PurchaseOrderDraft {
		return nil, apperror.NewInvalidStateError("Only DRAFT orders can be edited")
	}

	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, scope, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Leather supplier")
		}
		order.SupplierID = *input.SupplierID
	}
	if input.OrderNumber != nil {
		order.OrderNumber = *input.OrderNumber
	}
	if input.Date != nil {
		order.Date = *input.Date
	}

	if err := s.leatherOrderRepo.Update(ctx, order); err != nil {
		return nil, translateDuplicate(err, "Leather purchase order with this order number already exists")
	}
	return s.GetLeatherOrder(ctx, scope, id)
}

// DeleteLeatherOrder removes a DRAFT raw leather order
func (s *PurchaseOrderService) DeleteLeatherOrder(ctx context.Context, scope access.Scope, id uuid.UUID) error {
	order, err := s.GetLeatherOrder(ctx, scope, id)
	if err != nil {
		return err
	}
	if order.Status != enum.PurchaseOrderDraft {
		return apperror.NewInvalidStateError("Only DRAFT orders can be deleted")
	}
	return s.leatherOrderRepo.Delete(ctx, scope, id)
}

// MarkLeatherOrdered places a DRAFT raw leather order with the supplier
func (s *PurchaseOrderService) MarkLeatherOrdered(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.LeatherPurchaseOrder, error) {
	order, err := s.GetLeatherOrder(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if order.Status != enum.PurchaseOrderDraft {
		return nil, apperror.NewInvalidStateError("Only DRAFT orders can be placed")
	}

	advanced, err := s.leatherOrderRepo.AdvanceStatus(ctx, id, enum.PurchaseOrderDraft, enum.PurchaseOrderOrdered)
	if err != nil {
		return nil, err
	}
	if !advanced {
		return nil, apperror.NewInvalidStateError("Leather purchase order is no longer in DRAFT status")
	}
	return s.GetLeatherOrder(ctx, scope, id)
}

// ReceiveLeatherOrder completes a raw leather order. Same guarded transition
// as the standard variant but with no stock effect; raw quantities live on
// the order lines.
func (s *PurchaseOrderService) ReceiveLeatherOrder(ctx context.Context, scope access.Scope, orderID uuid.UUID) (*entity.LeatherPurchaseOrder, error) {
	err := s.uow.Execute(ctx, func(tx repository.TxRepositories) error {
		order, err := tx.LeatherPurchaseOrders().GetByID(ctx, scope, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return apperror.NewNotFoundError("Leather purchase order")
		}

		return completeReceipt(order.Status,
			func() (bool, error) {
				return tx.LeatherPurchaseOrders().AdvanceStatus(ctx, orderID, enum.PurchaseOrderOrdered, enum.PurchaseOrderReceived)
			},
			nil)
	})
	if err != nil {
		return nil, mapTxError(err)
	}

	logrus.WithField("order_id", orderID).Info("leather purchase order received")
	return s.GetLeatherOrder(ctx, scope, orderID)
}
