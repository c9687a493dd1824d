package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/njorogedev/leathercraft-api/internal/domain/access"
	"github.com/njorogedev/leathercraft-api/internal/presentation/http/middleware"
	"github.com/njorogedev/leathercraft-api/pkg/pagination"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// GetScope extracts the resolved access scope from the Gin context. The
// second return is false when the scope middleware did not run.
func GetScope(c *gin.Context) (access.Scope, bool) {
	return middleware.GetScope(c)
}

// IsSuperAdmin reports whether the authenticated user is a super admin
func IsSuperAdmin(c *gin.Context) bool {
	return c.GetBool("super_admin")
}

// ParseIDParam parses a UUID path parameter, false when the value is not a
// valid UUID
func ParseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// PaginationFromQuery builds pagination params from page/per_page query values
func PaginationFromQuery(page, perPage int) *pagination.PaginationParams {
	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	params.Validate()
	return params
}
