package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/njorogedev/leathercraft-api/internal/application/service"
	"github.com/njorogedev/leathercraft-api/internal/domain/enum"
	"github.com/njorogedev/leathercraft-api/internal/presentation/http/dto/request"
	"github.com/njorogedev/leathercraft-api/internal/presentation/http/dto/response"
)

// PurchaseOrderHandler handles purchase order HTTP requests for both the
// standard product variant and the raw leather variant
type PurchaseOrderHandler struct {
	orderService *service.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new purchase order handler
func NewPurchaseOrderHandler(orderService *service.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{orderService: orderService}
}

// Create handles creating a purchase order
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	lines := make([]service.PurchaseOrderLineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, service.PurchaseOrderLineInput{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}

	order, err := h.orderService.Create(c.Request.Context(), scope, &service.CreatePurchaseOrderInput{
		VendorID:    req.VendorID,
		OrderNumber: req.OrderNumber,
		Date:        date,
		Status:      enum.PurchaseOrderStatus(req.Status),
		Lines:       lines,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase order created successfully", order)
}

// Get handles getting a single purchase order
func (h *PurchaseOrderHandler) Get(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	order, err := h.orderService.Get(c.Request.Context(), scope, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order retrieved successfully", order)
}

// List handles listing purchase orders
func (h *PurchaseOrderHandler) List(c *gin.Context) {
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

	response.SuccessWithPagination(c, 200, "Purchase orders retrieved successfully", result)
}

// Update handles updating a purchase order header
func (h *PurchaseOrderHandler) Update(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	var req request.UpdatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.orderService.Update(c.Request.Context(), scope, id, &service.UpdatePurchaseOrderInput{
		VendorID:    req.VendorID,
		OrderNumber: req.OrderNumber,
		Date:        req.Date,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order updated successfully", order)
}

// Delete handles deleting a purchase order
func (h *PurchaseOrderHandler) Delete(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), scope, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// MarkOrdered handles placing a draft purchase order with the vendor
func (h *PurchaseOrderHandler) MarkOrdered(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	order, err := h.orderService.MarkOrdered(c.Request.Context(), scope, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order placed successfully", order)
}

// Receive handles receiving a purchase order, adding stock for each line
func (h *PurchaseOrderHandler) Receive(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	order, err := h.orderService.Receive(c.Request.Context(), scope, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order received successfully", order)
}

// CreateLeatherOrder handles creating a raw leather purchase order
func (h *PurchaseOrderHandler) CreateLeatherOrder(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateLeatherOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	lines := make([]service.LeatherPurchaseOrderLineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, service.LeatherPurchaseOrderLineInput{
			LeatherTypeID: l.LeatherTypeID,
			Quantity:      l.Quantity,
			UnitPrice:     l.UnitPrice,
		})
	}

	order, err := h.orderService.CreateLeatherOrder(c.Request.Context(), scope, &service.CreateLeatherPurchaseOrderInput{
		SupplierID:  req.SupplierID,
		OrderNumber: req.OrderNumber,
		Date:        date,
		Status:      enum.PurchaseOrderStatus(req.Status),
		Lines:       lines,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Leather purchase order created successfully", order)
}

// GetLeatherOrder handles getting a single raw leather purchase order
func (h *PurchaseOrderHandler) GetLeatherOrder(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	order, err := h.orderService.GetLeatherOrder(c.Request.Context(), scope, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Leather purchase order retrieved successfully", order)
}

// ListLeatherOrders handles listing raw leather purchase orders
func (h *PurchaseOrderHandler) ListLeatherOrders(c *gin.Context) {
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

	result, err := h.orderService.ListLeatherOrders(c.Request.Context(), scope, &service.ListOrdersInput{
		Pagination: PaginationFromQuery(filter.Page, filter.PerPage),
		Status:     filter.Status,
		Search:     filter.Search,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Leather purchase orders retrieved successfully", result)
}

// UpdateLeatherOrder handles updating a raw leather purchase order header
func (h *PurchaseOrderHandler) UpdateLeatherOrder(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	var req request.UpdateLeatherOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.orderService.UpdateLeatherOrder(c.Request.Context(), scope, id, &service.UpdateLeatherPurchaseOrderInput{
		SupplierID:  req.SupplierID,
		OrderNumber: req.OrderNumber,
		Date:        req.Date,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Leather purchase order updated successfully", order)
}

// DeleteLeatherOrder handles deleting a raw leather purchase order
func (h *PurchaseOrderHandler) DeleteLeatherOrder(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	if err := h.orderService.DeleteLeatherOrder(c.Request.Context(), scope, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// MarkLeatherOrdered handles placing a draft raw leather order with the supplier
func (h *PurchaseOrderHandler) MarkLeatherOrdered(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	order, err := h.orderService.MarkLeatherOrdered(c.Request.Context(), scope, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Leather purchase order placed successfully", order)
}

// ReceiveLeatherOrder handles receiving a raw leather purchase order. Raw
// leather is not stocked as a product, so receipt only moves the status.
func (h *PurchaseOrderHandler) ReceiveLeatherOrder(c *gin.Context) {
	scope, ok := GetScope(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	order, err := h.orderService.ReceiveLeatherOrder(c.Request.Context(), scope, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Leather purchase order received successfully", order)
}
