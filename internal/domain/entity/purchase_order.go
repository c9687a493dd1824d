package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/njorogedev/leathercraft-api/internal/domain/enum"
)

// PurchaseOrder represents an order for finished goods from a vendor.
// Receiving it increments product stock.
type PurchaseOrder struct {
	ID          uuid.UUID                `gorm:"type:uuid;primary_key" json:"id"`
	TenantID    uuid.UUID                `gorm:"type:uuid;not null;index;uniqueIndex:ux_purchase_orders_tenant_number" json:"tenant_id"`
	VendorID    uuid.UUID                `gorm:"type:uuid;not null;index" json:"vendor_id"`
	OrderNumber string                   `gorm:"size:50;not null;uniqueIndex:ux_purchase_orders_tenant_number" json:"order_number"`
	Date        time.Time                `gorm:"type:date;not null" json:"date"`
	Status      enum.PurchaseOrderStatus `gorm:"size:20;default:'DRAFT'" json:"status"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
	DeletedAt   gorm.DeletedAt           `gorm:"index" json:"-"`

	// Relationships
	Tenant Tenant              `gorm:"foreignKey:TenantID" json:"-"`
	Vendor *Vendor             `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	Lines  []PurchaseOrderLine `gorm:"foreignKey:OrderID" json:"lines,omitempty"`
}

// TotalAmount derives the order total from its loaded lines.
func (o *PurchaseOrder) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Lines {
		total = total.Add(o.Lines[i].TotalPrice())
	}
	return total
}

// MarshalJSON adds the derived total to API responses
func (o PurchaseOrder) MarshalJSON() ([]byte, error) {
	type Alias PurchaseOrder
	return json.Marshal(&struct {
		Alias
		TotalAmount decimal.Decimal `json:"total_amount"`
	}{
		Alias:       Alias(o),
		TotalAmount: o.TotalAmount(),
	})
}

// BeforeCreate generates a UUID before creating a new purchase order
func (o *PurchaseOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrder model
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderLine represents a line item on a standard purchase order.
type PurchaseOrderLine struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// Relationships
	Order   PurchaseOrder `gorm:"foreignKey:OrderID" json:"-"`
	Product Product       `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TotalPrice is quantity times unit price.
func (l *PurchaseOrderLine) TotalPrice() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// MarshalJSON adds the derived line total to API responses
func (l PurchaseOrderLine) MarshalJSON() ([]byte, error) {
	type Alias PurchaseOrderLine
	return json.Marshal(&struct {
		Alias
		TotalPrice decimal.Decimal `json:"total_price"`
	}{
		Alias:      Alias(l),
		TotalPrice: l.TotalPrice(),
	})
}

// BeforeCreate generates a UUID before creating a new purchase order line
func (l *PurchaseOrderLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrderLine model
func (PurchaseOrderLine) TableName() string {
	return "purchase_order_lines"
}
