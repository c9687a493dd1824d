package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a finished-goods product in the catalog. StockQuantity
// is mutated only by order lifecycle operations: sales confirmation
// decrements it, purchase receipt increments it, and it never goes negative.
type Product struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TenantID      uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:ux_products_tenant_sku" json:"tenant_id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	SKU           string          `gorm:"size:50;not null;uniqueIndex:ux_products_tenant_sku;column:sku" json:"sku"`
	Description   *string         `gorm:"type:text" json:"description,omitempty"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"price"`
	CostPrice     decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"cost_price"`
	StockQuantity int             `gorm:"default:0" json:"stock_quantity"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}
