package repository

import (
	"gorm.io/gorm"

	"github.com/njorogedev/leathercraft-api/internal/domain/access"
)

// Scoped returns a GORM scope that filters rows by the caller's tenant.
// Elevated scopes pass through unfiltered. An invalid scope matches no rows
// rather than leaking cross-tenant data.
func Scoped(sc access.Scope) func(db *gorm.DB) *gorm.DB {
	return ScopedColumn(sc, "tenant_id")
}

// ScopedColumn is Scoped with an explicit column, for queries that join
// through a parent table.
func ScopedColumn(sc access.Scope, column string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if sc.IsElevated() {
			return db
		}
		tenantID, ok := sc.TenantID()
		if !ok {
			return db.Where("1 = 0")
		}
		return db.Where(column+" = ?", tenantID)
	}
}
