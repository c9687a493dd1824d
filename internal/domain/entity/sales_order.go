package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/njorogedev/leathercraft-api/internal/domain/enum"
)

// SalesOrder represents a customer order. Its total is always derived from
// the loaded lines, never stored.
type SalesOrder struct {
	ID          uuid.UUID             `gorm:"type:uuid;primary_key" json:"id"`
	TenantID    uuid.UUID             `gorm:"type:uuid;not null;index;uniqueIndex:ux_sales_orders_tenant_number" json:"tenant_id"`
	CustomerID  uuid.UUID             `gorm:"type:uuid;not null;index" json:"customer_id"`
	OrderNumber string                `gorm:"size:50;not null;uniqueIndex:ux_sales_orders_tenant_number" json:"order_number"`
	Date        time.Time             `gorm:"type:date;not null" json:"date"`
	Status      enum.SalesOrderStatus `gorm:"size:20;default:'DRAFT'" json:"status"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
	DeletedAt   gorm.DeletedAt        `gorm:"index" json:"-"`

	// Relationships
	Tenant   Tenant           `gorm:"foreignKey:TenantID" json:"-"`
	Customer *Customer        `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Lines    []SalesOrderLine `gorm:"foreignKey:OrderID" json:"lines,omitempty"`
}

// TotalAmount derives the order total from its loaded lines.
func (o *SalesOrder) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Lines {
		total = total.Add(o.Lines[i].TotalPrice())
	}
	return total
}

// MarshalJSON adds the derived total to API responses
func (o SalesOrder) MarshalJSON() ([]byte, error) {
	type Alias SalesOrder
	return json.Marshal(&struct {
		Alias
		TotalAmount decimal.Decimal `json:"total_amount"`
	}{
		Alias:       Alias(o),
		TotalAmount: o.TotalAmount(),
	})
}

// BeforeCreate generates a UUID before creating a new sales order
func (o *SalesOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalesOrder model
func (SalesOrder) TableName() string {
	return "sales_orders"
}

// SalesOrderLine represents a line item on a sales order. UnitPrice is
// persisted at write time; it is not recalculated when the product's price
// later changes.
type SalesOrderLine struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// Relationships
	Order   SalesOrder `gorm:"foreignKey:OrderID" json:"-"`
	Product Product    `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TotalPrice is quantity times unit price.
func (l *SalesOrderLine) TotalPrice() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// MarshalJSON adds the derived line total to API responses
func (l SalesOrderLine) MarshalJSON() ([]byte, error) {
	type Alias SalesOrderLine
	return json.Marshal(&struct {
		Alias
		TotalPrice decimal.Decimal `json:"total_price"`
	}{
		Alias:      Alias(l),
		TotalPrice: l.TotalPrice(),
	})
}

// BeforeCreate generates a UUID before creating a new sales order line
func (l *SalesOrderLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalesOrderLine model
func (SalesOrderLine) TableName() string {
	return "sales_order_lines"
}
