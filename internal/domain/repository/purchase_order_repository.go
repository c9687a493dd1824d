package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/njorogedev/leathercraft-api/internal/domain/access"
	"github.com/njorogedev/leathercraft-api/internal/domain/entity"
	"github.com/njorogedev/leathercraft-api/internal/domain/enum"
)

// PurchaseOrderRepository defines the interface for product purchase order
// data operations
type PurchaseOrderRepository interface {
	Create(ctx context.Context, order *entity.PurchaseOrder) error
	GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.PurchaseOrder, error)
	Update(ctx context.Context, order *entity.PurchaseOrder) error
	Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error
	List(ctx context.Context, scope access.Scope, params *OrderFilterParams) ([]entity.PurchaseOrder, int64, error)
	// AdvanceStatus transitions an order from one status to another in a
	// single guarded update. Returns (false, nil) when the order was not in
	// the expected status.
	AdvanceStatus(ctx context.Context, id uuid.UUID, from, to enum.PurchaseOrderStatus) (bool, error)
	CreateLine(ctx context.Context, line *entity.PurchaseOrderLine) error
	GetLine(ctx context.Context, scope access.Scope, orderID, lineID uuid.UUID) (*entity.PurchaseOrderLine, error)
	UpdateLine(ctx context.Context, line *entity.PurchaseOrderLine) error
	DeleteLine(ctx context.Context, scope access.Scope, orderID, lineID uuid.UUID) error
}

// LeatherPurchaseOrderRepository defines the interface for raw leather
// purchase order data operations
type LeatherPurchaseOrderRepository interface {
	Create(ctx context.Context, order *entity.LeatherPurchaseOrder) error
	GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.LeatherPurchaseOrder, error)
	Update(ctx context.Context, order *entity.LeatherPurchaseOrder) error
	Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error
	List(ctx context.Context, scope access.Scope, params *OrderFilterParams) ([]entity.LeatherPurchaseOrder, int64, error)
	AdvanceStatus(ctx context.Context, id uuid.UUID, from, to enum.PurchaseOrderStatus) (bool, error)
	CreateLine(ctx context.Context, line *entity.LeatherPurchaseOrderLine) error
	GetLine(ctx context.Context, scope access.Scope, orderID, lineID uuid.UUID) (*entity.LeatherPurchaseOrderLine, error)
	UpdateLine(ctx context.Context, line *entity.LeatherPurchaseOrderLine) error
	DeleteLine(ctx context.Context, scope access.Scope, orderID, lineID uuid.UUID) error
}
