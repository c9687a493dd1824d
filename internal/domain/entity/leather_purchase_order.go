package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/njorogedev/leathercraft-api/internal/domain/enum"
)

// LeatherPurchaseOrder represents an order for raw leather. It shares the
// purchase order state machine, but receiving it has no effect on the shared
// product catalog; raw quantities live on the order lines.
type LeatherPurchaseOrder struct {
	ID          uuid.UUID                `gorm:"type:uuid;primary_key" json:"id"`
	TenantID    uuid.UUID                `gorm:"type:uuid;not null;index;uniqueIndex:ux_leather_purchase_orders_tenant_number" json:"tenant_id"`
	SupplierID  uuid.UUID                `gorm:"type:uuid;not null;index" json:"supplier_id"`
	OrderNumber string                   `gorm:"size:50;not null;uniqueIndex:ux_leather_purchase_orders_tenant_number" json:"order_number"`
	Date        time.Time                `gorm:"type:date;not null" json:"date"`
	Status      enum.PurchaseOrderStatus `gorm:"size:20;default:'DRAFT'" json:"status"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
	DeletedAt   gorm.DeletedAt           `gorm:"index" json:"-"`

	// Relationships
	Tenant   Tenant                     `gorm:"foreignKey:TenantID" json:"-"`
	Supplier *LeatherSupplier           `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Lines    []LeatherPurchaseOrderLine `gorm:"foreignKey:OrderID" json:"lines,omitempty"`
}

// TotalAmount derives the order total from its loaded lines.
func (o *LeatherPurchaseOrder) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Lines {
		total = total.Add(o.Lines[i].TotalPrice())
	}
	return total
}

// MarshalJSON adds the derived total to API responses
func (o LeatherPurchaseOrder) MarshalJSON() ([]byte, error) {
	type Alias LeatherPurchaseOrder
	return json.Marshal(&struct {
		Alias
		TotalAmount decimal.Decimal `json:"total_amount"`
	}{
		Alias:       Alias(o),
		TotalAmount: o.TotalAmount(),
	})
}

// BeforeCreate generates a UUID before creating a new leather purchase order
func (o *LeatherPurchaseOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LeatherPurchaseOrder model
func (LeatherPurchaseOrder) TableName() string {
	return "leather_purchase_orders"
}

// LeatherPurchaseOrderLine represents a line item on a raw-leather purchase
// order. Unlike product lines there is no unit-price default; the price must
// be supplied.
type LeatherPurchaseOrderLine struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	LeatherTypeID uuid.UUID       `gorm:"type:uuid;not null;index" json:"leather_type_id"`
	Quantity      int             `gorm:"not null;default:1" json:"quantity"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Relationships
	Order       LeatherPurchaseOrder `gorm:"foreignKey:OrderID" json:"-"`
	LeatherType LeatherType          `gorm:"foreignKey:LeatherTypeID" json:"leather_type,omitempty"`
}

// TotalPrice is quantity times unit price.
func (l *LeatherPurchaseOrderLine) TotalPrice() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// MarshalJSON adds the derived line total to API responses
func (l LeatherPurchaseOrderLine) MarshalJSON() ([]byte, error) {
	type Alias LeatherPurchaseOrderLine
	return json.Marshal(&struct {
		Alias
		TotalPrice decimal.Decimal `json:"total_price"`
	}{
		Alias:      Alias(l),
		TotalPrice: l.TotalPrice(),
	})
}

// BeforeCreate generates a UUID before creating a new leather purchase order line
func (l *LeatherPurchaseOrderLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LeatherPurchaseOrderLine model
func (LeatherPurchaseOrderLine) TableName() string {
	return "leather_purchase_order_lines"
}
