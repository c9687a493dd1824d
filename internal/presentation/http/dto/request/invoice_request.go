package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest represents a manual invoice creation request
type CreateInvoiceRequest struct {
	CustomerID    uuid.UUID       `json:"customer_id" binding:"required"`
	InvoiceNumber string          `json:"invoice_number" binding:"required,min=1,max=100"`
	Date          *time.Time      `json:"date"`
	DueDate       *time.Time      `json:"due_date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// UpdateInvoiceRequest represents an invoice update request
type UpdateInvoiceRequest struct {
	Date    *time.Time `json:"date"`
	DueDate *time.Time `json:"due_date"`
	Status  *string    `json:"status"`
}

// InvoiceFilterRequest represents invoice list filter parameters
type InvoiceFilterRequest struct {
	Status     string `form:"status"`
	CustomerID string `form:"customer_id"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// RecordPaymentRequest represents a payment recording request
type RecordPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Date      *time.Time      `json:"date"`
	Method    string          `json:"method" binding:"omitempty,oneof=CASH BANK CREDIT_CARD OTHER"`
	Reference *string         `json:"reference" binding:"omitempty,max=255"`
}
