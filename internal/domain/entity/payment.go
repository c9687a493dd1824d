package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/njorogedev/leathercraft-api/internal/domain/enum"
)

// Payment represents money received against an invoice. Payments are
// append-only; they are never edited or deleted.
type Payment struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	TenantID  uuid.UUID          `gorm:"type:uuid;not null;index" json:"tenant_id"`
	InvoiceID uuid.UUID          `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Amount    decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"amount"`
	Date      time.Time          `gorm:"type:date;not null" json:"date"`
	Method    enum.PaymentMethod `gorm:"size:20;default:'BANK';column:payment_method" json:"payment_method"`
	Reference *string            `gorm:"size:100" json:"reference,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`

	// Relationships
	Tenant  Tenant  `gorm:"foreignKey:TenantID" json:"-"`
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
