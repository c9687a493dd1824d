package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/njorogedev/leathercraft-api/internal/domain/access"
	"github.com/njorogedev/leathercraft-api/internal/domain/entity"
	"github.com/njorogedev/leathercraft-api/internal/domain/enum"
	"github.com/njorogedev/leathercraft-api/pkg/pagination"
)

// SalesOrderRepository defines the interface for sales order data operations.
// GetByID preloads the customer and lines with their products.
type SalesOrderRepository interface {
	Create(ctx context.Context, order *entity.SalesOrder) error
	GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.SalesOrder, error)
	Update(ctx context.Context, order *entity.SalesOrder) error
	Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error
	List(ctx context.Context, scope access.Scope, params *OrderFilterParams) ([]entity.SalesOrder, int64, error)
	// AdvanceStatus transitions an order from one status to another in a
	// single guarded update. Returns (false, nil) when the order was not in
	// the expected status.
	AdvanceStatus(ctx context.Context, id uuid.UUID, from, to enum.SalesOrderStatus) (bool, error)
	CreateLine(ctx context.Context, line *entity.SalesOrderLine) error
	GetLine(ctx context.Context, scope access.Scope, orderID, lineID uuid.UUID) (*entity.SalesOrderLine, error)
	UpdateLine(ctx context.Context, line *entity.SalesOrderLine) error
	DeleteLine(ctx context.Context, scope access.Scope, orderID, lineID uuid.UUID) error
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     string
	Search     string
}
