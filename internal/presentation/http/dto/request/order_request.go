package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesOrderLineRequest represents a single sales order line item
type SalesOrderLineRequest struct {
	ProductID uuid.UUID        `json:"product_id" binding:"required"`
	Quantity  int              `json:"quantity" binding:"required,min=1"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// CreateSalesOrderRequest represents a sales order creation request
type CreateSalesOrderRequest struct {
	CustomerID  uuid.UUID               `json:"customer_id" binding:"required"`
	OrderNumber string                  `json:"order_number" binding:"required,min=1,max=100"`
	Date        *time.Time              `json:"date"`
	Lines       []SalesOrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdateSalesOrderRequest represents a sales order header update request
type UpdateSalesOrderRequest struct {
	CustomerID  *uuid.UUID `json:"customer_id"`
	OrderNumber *string    `json:"order_number" binding:"omitempty,min=1,max=100"`
	Date        *time.Time `json:"date"`
}

// UpdateOrderLineRequest represents a line item update request
type UpdateOrderLineRequest struct {
	Quantity  *int             `json:"quantity" binding:"omitempty,min=1"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// OrderFilterRequest represents order list filter parameters
type OrderFilterRequest struct {
	Status  string `form:"status"`
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}

// PurchaseOrderLineRequest represents a single purchase order line item
type PurchaseOrderLineRequest struct {
	ProductID uuid.UUID        `json:"product_id" binding:"required"`
	Quantity  int              `json:"quantity" binding:"required,min=1"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// CreatePurchaseOrderRequest represents a purchase order creation request
type CreatePurchaseOrderRequest struct {
	VendorID    uuid.UUID                  `json:"vendor_id" binding:"required"`
	OrderNumber string                     `json:"order_number" binding:"required,min=1,max=100"`
	Date        *time.Time                 `json:"date"`
	Status      string                     `json:"status" binding:"omitempty,oneof=DRAFT ORDERED"`
	Lines       []PurchaseOrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdatePurchaseOrderRequest represents a purchase order header update request
type UpdatePurchaseOrderRequest struct {
	VendorID    *uuid.UUID `json:"vendor_id"`
	OrderNumber *string    `json:"order_number" binding:"omitempty,min=1,max=100"`
	Date        *time.Time `json:"date"`
}

// LeatherOrderLineRequest represents a single raw leather order line item.
// Leather has no catalog price so the unit price is required.
type LeatherOrderLineRequest struct {
	LeatherTypeID uuid.UUID       `json:"leather_type_id" binding:"required"`
	Quantity      int             `json:"quantity" binding:"required,min=1"`
	UnitPrice     decimal.Decimal `json:"unit_price" binding:"required"`
}

// CreateLeatherOrderRequest represents a raw leather purchase order creation request
type CreateLeatherOrderRequest struct {
	SupplierID  uuid.UUID                 `json:"supplier_id" binding:"required"`
	OrderNumber string                    `json:"order_number" binding:"required,min=1,max=100"`
	Date        *time.Time                `json:"date"`
	Status      string                    `json:"status" binding:"omitempty,oneof=DRAFT ORDERED"`
	Lines       []LeatherOrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdateLeatherOrderRequest represents a raw leather purchase order header update request
type UpdateLeatherOrderRequest struct {
	SupplierID  *uuid.UUID `json:"supplier_id"`
	OrderNumber *string    `json:"order_number" binding:"omitempty,min=1,max=100"`
	Date        *time.Time `json:"date"`
}
