package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/njorogedev/leathercraft-api/internal/application/service"
	"github.com/njorogedev/leathercraft-api/internal/presentation/http/dto/request"
	"github.com/njorogedev/leathercraft-api/internal/presentation/http/dto/response"
)

// SalesOrderHandler handles sales order HTTP requests
type SalesOrderHandler struct {
	orderService *service.SalesOrderService
}

// NewSalesOrderHandler creates a new sales order handler
func NewSalesOrderHandler(orderService *service.SalesOrderService) *SalesOrderHandler {
	return &SalesOrderHandler{orderService: orderService}
}

// Create handles creating a sales order
func (h *SalesOrderHandler) Create(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	lines := make([]service.SalesOrderLineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, service.SalesOrderLineInput{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}

	order, err := h.orderService.Create(c.Request.Context(), scope, &service.CreateSalesOrderInput{
		CustomerID:  req.CustomerID,
		OrderNumber: req.OrderNumber,
		Date:        date,
		Lines:       lines,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sales order created successfully", order)
}

// Get handles getting a single sales order
func (h *SalesOrderHandler) Get(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sales order ID")
		return
	}

	order, err := h.orderService.Get(c.Request.Context(), scope, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales order retrieved successfully", order)
}

// List handles listing sales orders
func (h *SalesOrderHandler) List(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var filter request.OrderFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.orderService.List(c.Request.Context(), scope, &service.ListOrdersInput{
		Pagination: PaginationFromQuery(filter.Page, filter.PerPage),
		Status:     filter.Status,
		Search:     filter.Search,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales orders retrieved successfully", result)
}

// Update handles updating a sales order header
func (h *SalesOrderHandler) Update(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sales order ID")
		return
	}

	var req request.UpdateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.orderService.Update(c.Request.Context(), scope, id, &service.UpdateSalesOrderInput{
		CustomerID:  req.CustomerID,
		OrderNumber: req.OrderNumber,
		Date:        req.Date,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales order updated successfully", order)
}

// Delete handles deleting a sales order
func (h *SalesOrderHandler) Delete(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sales order ID")
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), scope, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// AddLine handles adding a line item to a sales order
func (h *SalesOrderHandler) AddLine(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	orderID, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sales order ID")
		return
	}

	var req request.SalesOrderLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.orderService.AddLine(c.Request.Context(), scope, orderID, &service.SalesOrderLineInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Line item added successfully", order)
}

// UpdateLine handles updating a sales order line item
func (h *SalesOrderHandler) UpdateLine(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	orderID, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sales order ID")
		return
	}

	lineID, ok := ParseIDParam(c, "lineId")
	if !ok {
		response.BadRequest(c, "Invalid line item ID")
		return
	}

	var req request.UpdateOrderLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.orderService.UpdateLine(c.Request.Context(), scope, orderID, lineID, &service.UpdateLineInput{
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line item updated successfully", order)
}

// RemoveLine handles removing a sales order line item
func (h *SalesOrderHandler) RemoveLine(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	orderID, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sales order ID")
		return
	}

	lineID, ok := ParseIDParam(c, "lineId")
	if !ok {
		response.BadRequest(c, "Invalid line item ID")
		return
	}

	order, err := h.orderService.RemoveLine(c.Request.Context(), scope, orderID, lineID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line item removed successfully", order)
}

// Confirm handles confirming a sales order, deducting stock and issuing the invoice
func (h *SalesOrderHandler) Confirm(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	orderID, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sales order ID")
		return
	}

	invoice, err := h.orderService.Confirm(c.Request.Context(), scope, orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales order confirmed successfully", invoice)
}
