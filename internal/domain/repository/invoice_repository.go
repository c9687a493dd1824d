package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/njorogedev/leathercraft-api/internal/domain/access"
	"github.com/njorogedev/leathercraft-api/internal/domain/entity"
	"github.com/njorogedev/leathercraft-api/internal/domain/enum"
	"github.com/njorogedev/leathercraft-api/pkg/pagination"
)

// InvoiceRepository defines the interface for invoice data operations.
// GetByID preloads the customer and all payments.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.Invoice, error)
	GetBySalesOrderID(ctx context.Context, scope access.Scope, orderID uuid.UUID) (*entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error
	List(ctx context.Context, scope access.Scope, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error
	// SumPayments returns the total paid against an invoice, computed in the
	// database so the figure reflects rows committed by the current
	// transaction.
	SumPayments(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error)
}

// PaymentRepository defines the interface for payment data operations.
// Payments are append-only.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	ListByInvoice(ctx context.Context, scope access.Scope, invoiceID uuid.UUID) ([]entity.Payment, error)
	List(ctx context.Context, scope access.Scope, params *pagination.PaginationParams) ([]entity.Payment, int64, error)
}

// InvoiceFilterParams contains filtering parameters for invoice queries
type InvoiceFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     string
	CustomerID *uuid.UUID
}
