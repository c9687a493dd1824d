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

// InvoiceService handles invoices and the payment side of the financial
// reconciliation engine.
type InvoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	paymentRepo  repository.PaymentRepository
	customerRepo repository.CustomerRepository
	uow          repository.UnitOfWork
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	customerRepo repository.CustomerRepository,
	uow repository.UnitOfWork,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		paymentRepo:  paymentRepo,
		customerRepo: customerRepo,
		uow:          uow,
	}
}

// CreateInvoiceInput represents a manually raised invoice, not tied to a
// sales order
type CreateInvoiceInput struct {
	CustomerID    uuid.UUID
	InvoiceNumber string
	Date          time.Time
	DueDate       time.Time
	TotalAmount   decimal.Decimal
}

// Create creates a new invoice in DRAFT status
func (s *InvoiceService) Create(ctx context.Context, scope access.Scope, input *CreateInvoiceInput) (*entity.Invoice, error) {
	tenantID, ok := scope.TenantID()
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	if input.TotalAmount.IsNegative() {
		return nil, apperror.NewBadRequestError("Invoice total cannot be negative")
	}

	customer, err := s.customerRepo.GetByID(ctx, scope, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	invoice := &entity.Invoice{
		TenantID:      tenantID,
		CustomerID:    input.CustomerID,
		InvoiceNumber: input.InvoiceNumber,
		Date:          input.Date,
		DueDate:       input.DueDate,
		TotalAmount:   input.TotalAmount,
		Status:        enum.InvoiceDraft,
	}
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, translateDuplicate(err, "Invoice with this number already exists")
	}
	return s.Get(ctx, scope, invoice.ID)
}

// Get returns an invoice with its customer and payments
func (s *InvoiceService) Get(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoicesInput represents invoice listing filters
type ListInvoicesInput struct {
	Pagination *pagination.PaginationParams
	Status     string
	CustomerID *uuid.UUID
}

// List returns invoices under the caller's scope
func (s *InvoiceService) List(ctx context.Context, scope access.Scope, input *ListInvoicesInput) (*pagination.PaginatedResult[entity.Invoice], error) {
	params := &repository.InvoiceFilterParams{
		Pagination: input.Pagination,
		Status:     input.Status,
		CustomerID: input.CustomerID,
	}
	invoices, total, err := s.invoiceRepo.List(ctx, scope, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(invoices, pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)), nil
}

// UpdateInvoiceInput represents partial invoice updates. PAID and
// PARTIALLY_PAID are derived from the payment ledger and cannot be assigned
// here.
type UpdateInvoiceInput struct {
	Date    *time.Time
	DueDate *time.Time
	Status  *enum.InvoiceStatus
}

// Update updates an invoice's dates or manually assignable status
func (s *InvoiceService) Update(ctx context.Context, scope access.Scope, id uuid.UUID, input *UpdateInvoiceInput) (*entity.Invoice, error) {
	invoice, err := s.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		invoice.Date = *input.Date
	}
	if input.DueDate != nil {
		invoice.DueDate = *input.DueDate
	}
	if input.Status != nil {
		switch *input.Status {
		case enum.InvoiceDraft, enum.InvoiceSent, enum.InvoiceOverdue, enum.InvoiceCancelled:
			invoice.Status = *input.Status
		default:
			return nil, apperror.NewBadRequestError(
				fmt.Sprintf("Status %s cannot be assigned directly", *input.Status))
		}
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return s.Get(ctx, scope, id)
}

// Delete removes an invoice that has no payments against it
func (s *InvoiceService) Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error {
	invoice, err := s.Get(ctx, scope, id)
	if err != nil {
		return err
	}
	if len(invoice.Payments) > 0 {
		return apperror.NewInvalidStateError("Invoices with recorded payments cannot be deleted")
	}
	return s.invoiceRepo.Delete(ctx, scope, id)
}

// ListPayments returns the payment ledger for an invoice
func (s *InvoiceService) ListPayments(ctx context.Context, scope access.Scope, invoiceID uuid.UUID) ([]entity.Payment, error) {
	if _, err := s.Get(ctx, scope, invoiceID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListByInvoice(ctx, scope, invoiceID)
}

// RecordPaymentInput represents the record payment input
type RecordPaymentInput struct {
	Amount    decimal.Decimal
	Date      time.Time
	Method    enum.PaymentMethod
	Reference *string
}

// RecordPayment appends a payment to an invoice's ledger and re-derives the
// invoice status from the full ledger, in one transaction. Overpayment is
// accepted; amount_due simply goes negative.
func (s *InvoiceService) RecordPayment(ctx context.Context, scope access.Scope, invoiceID uuid.UUID, input *RecordPaymentInput) (*entity.Invoice, error) {
	if !input.Amount.IsPositive() {
		return nil, apperror.NewInvalidAmountError(input.Amount)
	}

	method := input.Method
	if method == "" {
		method = enum.PaymentMethodBank
	}
	if !method.Valid() {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Unknown payment method %s", method))
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	err := s.uow.Execute(ctx, func(tx repository.TxRepositories) error {
		invoice, err := tx.Invoices().GetByID(ctx, scope, invoiceID)
		if err != nil {
			return err
		}
		if invoice == nil {
			return apperror.NewNotFoundError("Invoice")
		}
		if !invoice.Status.AcceptsPayments() {
			return apperror.NewInvalidStateError(
				fmt.Sprintf("Payments cannot be recorded on a %s invoice", invoice.Status))
		}

		payment := &entity.Payment{
			TenantID:  invoice.TenantID,
			InvoiceID: invoice.ID,
			Amount:    input.Amount,
			Date:      date,
			Method:    method,
			Reference: input.Reference,
		}
		if err := tx.Payments().Create(ctx, payment); err != nil {
			return err
		}

		// Re-derive from the full ledger, not from the previous status.
		totalPaid, err := tx.Invoices().SumPayments(ctx, invoice.ID)
		if err != nil {
			return err
		}

		status := enum.InvoiceSent
		switch {
		case totalPaid.GreaterThanOrEqual(invoice.TotalAmount):
			status = enum.InvoicePaid
		case totalPaid.IsPositive():
			status = enum.InvoicePartiallyPaid
		}

		return tx.Invoices().UpdateStatus(ctx, invoice.ID, status)
	})
	if err != nil {
		return nil, mapTxError(err)
	}

	logrus.WithFields(logrus.Fields{
		"invoice_id": invoiceID,
		"amount":     input.Amount.StringFixed(2),
	}).Info("payment recorded")

	return s.Get(ctx, scope, invoiceID)
}
