package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/njorogedev/leathercraft-api/internal/domain/access"
	"github.com/njorogedev/leathercraft-api/internal/domain/entity"
	"github.com/njorogedev/leathercraft-api/internal/domain/repository"
)

// Stock below this level shows up on the dashboard's low-stock list.
const lowStockThreshold = 5

const lowStockLimit = 5

// DashboardService aggregates read-only business metrics
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// DashboardSummary is the full dashboard payload
type DashboardSummary struct {
	TotalRevenue   decimal.Decimal           `json:"total_revenue"`
	CashCollected  decimal.Decimal           `json:"cash_collected"`
	PendingIncome  decimal.Decimal           `json:"pending_income"`
	ProductCount   int64                     `json:"product_count"`
	CustomerCount  int64                     `json:"customer_count"`
	LowStock       []entity.Product          `json:"low_stock"`
	OrdersByStatus []repository.StatusCount  `json:"orders_by_status"`
	MonthlySales   []repository.MonthlySales `json:"monthly_sales"`
}

// Summary assembles the dashboard for the caller's scope
func (s *DashboardService) Summary(ctx context.Context, scope access.Scope) (*DashboardSummary, error) {
	revenue, err := s.analyticsRepo.RevenueCollected(ctx, scope)
	if err != nil {
		return nil, err
	}

	cash, err := s.analyticsRepo.CashCollected(ctx, scope)
	if err != nil {
		return nil, err
	}

	pending, err := s.analyticsRepo.PendingIncome(ctx, scope)
	if err != nil {
		return nil, err
	}

	productCount, err := s.analyticsRepo.ProductCount(ctx, scope)
	if err != nil {
		return nil, err
	}

	customerCount, err := s.analyticsRepo.CustomerCount(ctx, scope)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.analyticsRepo.LowStockProducts(ctx, scope, lowStockThreshold, lowStockLimit)
	if err != nil {
		return nil, err
	}

	ordersByStatus, err := s.analyticsRepo.SalesOrderCountsByStatus(ctx, scope)
	if err != nil {
		return nil, err
	}

	monthlySales, err := s.analyticsRepo.MonthlyConfirmedSales(ctx, scope)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		TotalRevenue:   revenue,
		CashCollected:  cash,
		PendingIncome:  pending,
		ProductCount:   productCount,
		CustomerCount:  customerCount,
		LowStock:       lowStock,
		OrdersByStatus: ordersByStatus,
		MonthlySales:   monthlySales,
	}, nil
}
