package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/njorogedev/leathercraft-api/internal/domain/access"
	"github.com/njorogedev/leathercraft-api/internal/domain/entity"
)

// StatusCount holds an order count grouped by status
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// MonthlySales holds the confirmed sales total for one calendar month
type MonthlySales struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// AnalyticsRepository defines aggregate queries backing the dashboard
type AnalyticsRepository interface {
	// RevenueCollected sums the total amount of PAID invoices.
	RevenueCollected(ctx context.Context, scope access.Scope) (decimal.Decimal, error)
	// CashCollected sums all recorded payments.
	CashCollected(ctx context.Context, scope access.Scope) (decimal.Decimal, error)
	// PendingIncome sums the total amount of invoices still awaiting payment.
	PendingIncome(ctx context.Context, scope access.Scope) (decimal.Decimal, error)
	ProductCount(ctx context.Context, scope access.Scope) (int64, error)
	CustomerCount(ctx context.Context, scope access.Scope) (int64, error)
	// LowStockProducts returns the products with stock below the threshold,
	// lowest first.
	LowStockProducts(ctx context.Context, scope access.Scope, threshold, limit int) ([]entity.Product, error)
	SalesOrderCountsByStatus(ctx context.Context, scope access.Scope) ([]StatusCount, error)
	// MonthlyConfirmedSales returns per-month totals of confirmed sales
	// orders for the trailing twelve months.
	MonthlyConfirmedSales(ctx context.Context, scope access.Scope) ([]MonthlySales, error)
}
