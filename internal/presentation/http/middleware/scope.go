package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/njorogedev/leathercraft-api/internal/domain/access"
	"github.com/njorogedev/leathercraft-api/internal/domain/repository"
	"github.com/njorogedev/leathercraft-api/internal/presentation/http/dto/response"
	"github.com/njorogedev/leathercraft-api/pkg/apperror"
)

// ScopeKey is the gin context key holding the caller's access.Scope
const ScopeKey = "scope"

// ScopeMiddleware resolves the caller's tenant-scope capability once at the
// boundary. Super admins get the elevated scope; everyone else is scoped to
// the tenant of their TenantUser row. A caller with neither is rejected.
func ScopeMiddleware(tenantRepo repository.TenantRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			response.Unauthorized(c, "User not authenticated")
			c.Abort()
			return
		}
		userID, ok := userIDVal.(uuid.UUID)
		if !ok || userID == uuid.Nil {
			response.Unauthorized(c, "User not authenticated")
			c.Abort()
			return
		}

		if c.GetBool("super_admin") {
			c.Set(ScopeKey, access.Elevated())
			c.Next()
			return
		}

		association, err := tenantRepo.GetUserTenant(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if association == nil {
			response.Error(c, apperror.ErrUnscoped)
			c.Abort()
			return
		}

		c.Set(ScopeKey, access.Tenant(association.TenantID))
		// The per-tenant rate limiter keys off this.
		c.Set("tenant_id", association.TenantID)

		c.Next()
	}
}

// GetScope extracts the resolved scope from the gin context. The second
// return is false when no scope was resolved.
func GetScope(c *gin.Context) (access.Scope, bool) {
	val, exists := c.Get(ScopeKey)
	if !exists {
		return access.Scope{}, false
	}
	scope, ok := val.(access.Scope)
	return scope, ok
}

// GetTenantID retrieves the tenant ID from gin context, uuid.Nil for
// elevated or unresolved callers
func GetTenantID(c *gin.Context) uuid.UUID {
	tenantID, exists := c.Get("tenant_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := tenantID.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
