package request

import "github.com/shopspring/decimal"

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name          string          `json:"name" binding:"required,min=2,max=255"`
	SKU           string          `json:"sku" binding:"required,min=1,max=100"`
	Description   *string         `json:"description"`
	Price         decimal.Decimal `json:"price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	StockQuantity int             `json:"stock_quantity" binding:"min=0"`
}

// UpdateProductRequest represents a product update request. Stock quantity is
// absent on purpose; stock moves only through order confirmation and receipt.
type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=2,max=255"`
	SKU         *string          `json:"sku" binding:"omitempty,min=1,max=100"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CostPrice   *decimal.Decimal `json:"cost_price"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search        string `form:"search"`
	LowStockBelow *int   `form:"low_stock_below"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
}
