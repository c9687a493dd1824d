// Package access defines the tenant-scope capability passed explicitly into
// every core operation. The capability is decided once at the HTTP boundary
// and threaded through service and repository signatures; it is never carried
// as ambient request state.
package access

import "github.com/google/uuid"

// Scope is the caller's visibility over tenant-partitioned data: either
// scoped to a single tenant, or elevated (administrative override that
// bypasses tenant filtering). The zero value is an invalid scope that
// matches no rows.
type Scope struct {
	tenantID uuid.UUID
	elevated bool
}

// Tenant returns a scope restricted to a single tenant.
func Tenant(tenantID uuid.UUID) Scope {
	return Scope{tenantID: tenantID}
}

// Elevated returns the administrative scope that bypasses tenant filtering.
func Elevated() Scope {
	return Scope{elevated: true}
}

// IsElevated reports whether the scope bypasses tenant filtering.
func (s Scope) IsElevated() bool {
	return s.elevated
}

// TenantID returns the tenant the scope is restricted to. The second return
// is false for elevated or zero scopes.
func (s Scope) TenantID() (uuid.UUID, bool) {
	if s.elevated || s.tenantID == uuid.Nil {
		return uuid.Nil, false
	}
	return s.tenantID, true
}

// Valid reports whether the scope grants any visibility at all.
func (s Scope) Valid() bool {
	return s.elevated || s.tenantID != uuid.Nil
}
