package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/njorogedev/leathercraft-api/internal/application/service"
	"github.com/njorogedev/leathercraft-api/internal/presentation/http/dto/request"
	"github.com/njorogedev/leathercraft-api/internal/presentation/http/dto/response"
)

// LeatherHandler handles leather supplier and leather type HTTP requests
type LeatherHandler struct {
	leatherService *service.LeatherService
}

// NewLeatherHandler creates a new leather handler
func NewLeatherHandler(leatherService *service.LeatherService) *LeatherHandler {
	return &LeatherHandler{leatherService: leatherService}
}

// CreateSupplier handles creating a leather supplier
func (h *LeatherHandler) CreateSupplier(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	supplier, err := h.leatherService.CreateSupplier(c.Request.Context(), scope, &service.SupplierInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Leather supplier created successfully", supplier)
}

// GetSupplier handles getting a single leather supplier
func (h *LeatherHandler) GetSupplier(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	supplier, err := h.leatherService.GetSupplier(c.Request.Context(), scope, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Leather supplier retrieved successfully", supplier)
}

// ListSuppliers handles listing leather suppliers
func (h *LeatherHandler) ListSuppliers(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var filter struct {
		Search  string `form:"search"`
		Page    int    `form:"page"`
		PerPage int    `form:"per_page"`
	}
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.leatherService.ListSuppliers(c.Request.Context(), scope, PaginationFromQuery(filter.Page, filter.PerPage), filter.Search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Leather suppliers retrieved successfully", result)
}

// UpdateSupplier handles updating a leather supplier
func (h *LeatherHandler) UpdateSupplier(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	var req request.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	supplier, err := h.leatherService.UpdateSupplier(c.Request.Context(), scope, id, &service.UpdateSupplierInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Leather supplier updated successfully", supplier)
}

// DeleteSupplier handles deleting a leather supplier
func (h *LeatherHandler) DeleteSupplier(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	if err := h.leatherService.DeleteSupplier(c.Request.Context(), scope, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// CreateType handles creating a leather type
func (h *LeatherHandler) CreateType(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateLeatherTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	leatherType, err := h.leatherService.CreateType(c.Request.Context(), scope, &service.TypeInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Leather type created successfully", leatherType)
}

// GetType handles getting a single leather type
func (h *LeatherHandler) GetType(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid leather type ID")
		return
	}

	leatherType, err := h.leatherService.GetType(c.Request.Context(), scope, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Leather type retrieved successfully", leatherType)
}

// ListTypes handles listing leather types
func (h *LeatherHandler) ListTypes(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var filter struct {
		Search  string `form:"search"`
		Page    int    `form:"page"`
		PerPage int    `form:"per_page"`
	}
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.leatherService.ListTypes(c.Request.Context(), scope, PaginationFromQuery(filter.Page, filter.PerPage), filter.Search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Leather types retrieved successfully", result)
}

// UpdateType handles updating a leather type
func (h *LeatherHandler) UpdateType(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid leather type ID")
		return
	}

	var req request.UpdateLeatherTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	leatherType, err := h.leatherService.UpdateType(c.Request.Context(), scope, id, &service.UpdateTypeInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Leather type updated successfully", leatherType)
}

// DeleteType handles deleting a leather type
func (h *LeatherHandler) DeleteType(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid leather type ID")
		return
	}

	if err := h.leatherService.DeleteType(c.Request.Context(), scope, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
