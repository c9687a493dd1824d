package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeatherSupplier represents a supplier of raw leather. Name is unique within
// a tenant.
type LeatherSupplier struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID      uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:ux_leather_suppliers_tenant_name" json:"tenant_id"`
	Name          string         `gorm:"size:255;not null;uniqueIndex:ux_leather_suppliers_tenant_name" json:"name"`
	Email         *string        `gorm:"size:255" json:"email,omitempty"`
	Phone         *string        `gorm:"size:50" json:"phone,omitempty"`
	Address       *string        `gorm:"type:text" json:"address,omitempty"`
	ContactPerson *string        `gorm:"size:255" json:"contact_person,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new leather supplier
func (s *LeatherSupplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LeatherSupplier model
func (LeatherSupplier) TableName() string {
	return "leather_suppliers"
}

// LeatherType represents a kind of raw leather. Quantities of raw leather are
// tracked on purchase order lines, not against the shared product catalog.
type LeatherType struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID    uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:ux_leather_types_tenant_name" json:"tenant_id"`
	Name        string         `gorm:"size:255;not null;uniqueIndex:ux_leather_types_tenant_name" json:"name"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new leather type
func (t *LeatherType) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LeatherType model
func (LeatherType) TableName() string {
	return "leather_types"
}
