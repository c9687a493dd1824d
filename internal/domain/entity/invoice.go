package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/njorogedev/leathercraft-api/internal/domain/enum"
)

// Invoice represents a bill issued to a customer. TotalAmount is a snapshot
// set once at creation and never recalculated; AmountPaid and AmountDue are
// derived from the payment ledger at read time.
type Invoice struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	TenantID      uuid.UUID          `gorm:"type:uuid;not null;index;uniqueIndex:ux_invoices_tenant_number" json:"tenant_id"`
	CustomerID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	SalesOrderID  *uuid.UUID         `gorm:"type:uuid;index" json:"sales_order_id,omitempty"`
	InvoiceNumber string             `gorm:"size:50;not null;uniqueIndex:ux_invoices_tenant_number" json:"invoice_number"`
	Date          time.Time          `gorm:"type:date;not null" json:"date"`
	DueDate       time.Time          `gorm:"type:date;not null" json:"due_date"`
	TotalAmount   decimal.Decimal    `gorm:"type:decimal(12,2);default:0" json:"total_amount"`
	Status        enum.InvoiceStatus `gorm:"size:20;default:'DRAFT'" json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Tenant     Tenant      `gorm:"foreignKey:TenantID" json:"-"`
	Customer   *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	SalesOrder *SalesOrder `gorm:"foreignKey:SalesOrderID" json:"-"`
	Payments   []Payment   `gorm:"foreignKey:InvoiceID" json:"payments,omitempty"`
}

// AmountPaid sums the loaded payments.
func (i *Invoice) AmountPaid() decimal.Decimal {
	total := decimal.Zero
	for j := range i.Payments {
		total = total.Add(i.Payments[j].Amount)
	}
	return total
}

// AmountDue is the snapshot total minus payments. Overpayment drives it
// negative; it is not clamped.
func (i *Invoice) AmountDue() decimal.Decimal {
	return i.TotalAmount.Sub(i.AmountPaid())
}

// MarshalJSON adds the derived payment figures to API responses
func (i Invoice) MarshalJSON() ([]byte, error) {
	type Alias Invoice
	return json.Marshal(&struct {
		Alias
		AmountPaid decimal.Decimal `json:"amount_paid"`
		AmountDue  decimal.Decimal `json:"amount_due"`
	}{
		Alias:      Alias(i),
		AmountPaid: i.AmountPaid(),
		AmountDue:  i.AmountDue(),
	})
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}
