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

// SalesOrderService handles sales orders and the confirmation side of the
// order lifecycle engine.
type SalesOrderService struct {
	orderRepo    repository.SalesOrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	uow          repository.UnitOfWork
}

// NewSalesOrderService creates a new sales order service
func NewSalesOrderService(
	orderRepo repository.SalesOrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	uow repository.UnitOfWork,
) *SalesOrderService {
	return &SalesOrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		uow:          uow,
	}
}

// SalesOrderLineInput represents a line on a sales order. UnitPrice defaults
// to the product's current price when omitted.
type SalesOrderLineInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice *decimal.Decimal
}

// CreateSalesOrderInput represents the create sales order input
type CreateSalesOrderInput struct {
	CustomerID  uuid.UUID
	OrderNumber string
	Date        time.Time
	Lines       []SalesOrderLineInput
}

// Create creates a new sales order in DRAFT status
func (s *SalesOrderService) Create(ctx context.Context, scope access.Scope, input *CreateSalesOrderInput) (*entity.SalesOrder, error) {
	tenantID, ok := scope.TenantID()
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	customer, err := s.customerRepo.GetByID(ctx, scope, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	lines := make([]entity.SalesOrderLine, 0, len(input.Lines))
	for _, li := range input.Lines {
		line, err := s.buildLine(ctx, scope, &li)
		if err != nil {
			return nil, err
		}
		lines = append(lines, *line)
	}

	order := &entity.SalesOrder{
		TenantID:    tenantID,
		CustomerID:  input.CustomerID,
		OrderNumber: input.OrderNumber,
		Date:        input.Date,
		Status:      enum.SalesOrderDraft,
		Lines:       lines,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, translateDuplicate(err, "Sales order with this order number already exists")
	}
	return s.Get(ctx, scope, order.ID)
}

func (s *SalesOrderService) buildLine(ctx context.Context, scope access.Scope, input *SalesOrderLineInput) (*entity.SalesOrderLine, error) {
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

	unitPrice := product.Price
	if input.UnitPrice != nil {
		unitPrice = *input.UnitPrice
	}

	return &entity.SalesOrderLine{
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		UnitPrice: unitPrice,
	}, nil
}

// Get returns a sales order with its customer and lines
func (s *SalesOrderService) Get(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.SalesOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Sales order")
	}
	return order, nil
}

// ListOrdersInput represents order listing filters
type ListOrdersInput struct {
	Pagination *pagination.PaginationParams
	Status     string
	Search     string
}

// List returns sales orders under the caller's scope
func (s *SalesOrderService) List(ctx context.Context, scope access.Scope, input *ListOrdersInput) (*pagination.PaginatedResult[entity.SalesOrder], error) {
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

// UpdateSalesOrderInput represents partial order header updates. Status is
// deliberately absent; it moves only through Confirm.
type UpdateSalesOrderInput struct {
	CustomerID  *uuid.UUID
	OrderNumber *string
	Date        *time.Time
}

// Update updates a DRAFT order's header fields
func (s *SalesOrderService) Update(ctx context.Context, scope access.Scope, id uuid.UUID, input *UpdateSalesOrderInput) (*entity.SalesOrder, error) {
	order, err := s.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if order.Status != enum.SalesOrderDraft {
		return nil, apperror.NewInvalidStateError("Only DRAFT orders can be edited")
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, scope, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		order.CustomerID = *input.CustomerID
	}
	if input.OrderNumber != nil {
		order.OrderNumber = *input.OrderNumber
	}
	if input.Date != nil {
		order.Date = *input.Date
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, translateDuplicate(err, "Sales order with this order number already exists")
	}
	return s.Get(ctx, scope, id)
}

// Delete removes a DRAFT order
func (s *SalesOrderService) Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error {
	order, err := s.Get(ctx, scope, id)
	if err != nil {
		return err
	}
	if order.Status != enum.SalesOrderDraft {
		return apperror.NewInvalidStateError("Only DRAFT orders can be deleted")
	}
	return s.orderRepo.Delete(ctx, scope, id)
}

// AddLine appends a line to a DRAFT order
func (s *SalesOrderService) AddLine(ctx context.Context, scope access.Scope, orderID uuid.UUID, input *SalesOrderLineInput) (*entity.SalesOrder, error) {
	order, err := s.Get(ctx, scope, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != enum.SalesOrderDraft {
		return nil, apperror.NewInvalidStateError("Only DRAFT orders can be edited")
	}

	line, err := s.buildLine(ctx, scope, input)
	if err != nil {
		return nil, err
	}
	line.OrderID = orderID

	if err := s.orderRepo.CreateLine(ctx, line); err != nil {
		return nil, err
	}
	return s.Get(ctx, scope, orderID)
}

// UpdateLineInput represents partial line updates
type UpdateLineInput struct {
	Quantity  *int
	UnitPrice *decimal.Decimal
}

// UpdateLine edits a line on a DRAFT order
func (s *SalesOrderService) UpdateLine(ctx context.Context, scope access.Scope, orderID, lineID uuid.UUID, input *UpdateLineInput) (*entity.SalesOrder, error) {
	order, err := s.Get(ctx, scope, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != enum.SalesOrderDraft {
		return nil, apperror.NewInvalidStateError("Only DRAFT orders can be edited")
	}

	line, err := s.orderRepo.GetLine(ctx, scope, orderID, lineID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, apperror.NewNotFoundError("Order line")
	}

	if input.Quantity != nil {
		if *input.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Line quantity must be positive")
		}
		line.Quantity = *input.Quantity
	}
	if input.UnitPrice != nil {
		line.UnitPrice = *input.UnitPrice
	}

	if err := s.orderRepo.UpdateLine(ctx, line); err != nil {
		return nil, err
	}
	return s.Get(ctx, scope, orderID)
}

// RemoveLine deletes a line from a DRAFT order
func (s *SalesOrderService) RemoveLine(ctx context.Context, scope access.Scope, orderID, lineID uuid.UUID) (*entity.SalesOrder, error) {
	order, err := s.Get(ctx, scope, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != enum.SalesOrderDraft {
		return nil, apperror.NewInvalidStateError("Only DRAFT orders can be edited")
	}

	line, err := s.orderRepo.GetLine(ctx, scope, orderID, lineID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, apperror.NewNotFoundError("Order line")
	}

	if err := s.orderRepo.DeleteLine(ctx, scope, orderID, lineID); err != nil {
		return nil, err
	}
	return s.Get(ctx, scope, orderID)
}

// Confirm transitions a DRAFT order to CONFIRMED, deducts stock for every
// line, and issues the invoice, all inside one transaction. Stock is checked
// twice: once against the loaded snapshot so the first failing product is
// reported before anything moves, then again by the guarded decrement, which
// is what actually defends against concurrent confirms.
func (s *SalesOrderService) Confirm(ctx context.Context, scope access.Scope, orderID uuid.UUID) (*entity.Invoice, error) {
	var invoice *entity.Invoice

	err := s.uow.Execute(ctx, func(tx repository.TxRepositories) error {
		order, err := tx.SalesOrders().GetByID(ctx, scope, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return apperror.NewNotFoundError("Sales order")
		}
		if order.Status != enum.SalesOrderDraft {
			return apperror.NewInvalidStateError(
				fmt.Sprintf("Only DRAFT orders can be confirmed, current status is %s", order.Status))
		}

		for i := range order.Lines {
			line := &order.Lines[i]
			if line.Product.StockQuantity < line.Quantity {
				return apperror.NewInsufficientStockError(line.Product.Name, line.Quantity, line.Product.StockQuantity)
			}
		}

		for i := range order.Lines {
			line := &order.Lines[i]
			deducted, err := tx.Products().DeductStock(ctx, line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			if !deducted {
				// Lost a race since the snapshot check; roll everything back.
				return apperror.NewInsufficientStockError(line.Product.Name, line.Quantity, line.Product.StockQuantity)
			}
		}

		advanced, err := tx.SalesOrders().AdvanceStatus(ctx, orderID, enum.SalesOrderDraft, enum.SalesOrderConfirmed)
		if err != nil {
			return err
		}
		if !advanced {
			return apperror.NewInvalidStateError("Sales order is no longer in DRAFT status")
		}

		now := time.Now()
		soID := order.ID
		invoice = &entity.Invoice{
			TenantID:      order.TenantID,
			CustomerID:    order.CustomerID,
			SalesOrderID:  &soID,
			InvoiceNumber: "INV-" + order.OrderNumber,
			Date:          now,
			DueDate:       now.AddDate(0, 0, 30),
			TotalAmount:   order.TotalAmount(),
			Status:        enum.InvoiceDraft,
		}
		return tx.Invoices().Create(ctx, invoice)
	})
	if err != nil {
		return nil, mapTxError(err)
	}

	logrus.WithFields(logrus.Fields{
		"order_id": orderID,
		"invoice":  invoice.InvoiceNumber,
	}).Info("sales order confirmed")

	return invoice, nil
}
