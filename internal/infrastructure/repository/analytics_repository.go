package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/njorogedev/leathercraft-api/internal/domain/access"
	"github.com/njorogedev/leathercraft-api/internal/domain/entity"
	"github.com/njorogedev/leathercraft-api/internal/domain/enum"
	domainRepo "github.com/njorogedev/leathercraft-api/internal/domain/repository"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

type decimalResult struct {
	Total decimal.Decimal
}

func (r *analyticsRepository) RevenueCollected(ctx context.Context, scope access.Scope) (decimal.Decimal, error) {
	var result decimalResult
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).Scopes(Scoped(scope)).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("status = ?", enum.InvoicePaid).
		Scan(&result).Error
	return result.Total, err
}

func (r *analyticsRepository) CashCollected(ctx context.Context, scope access.Scope) (decimal.Decimal, error) {
	var result decimalResult
	err := r.db.WithContext(ctx).Model(&entity.Payment{}).Scopes(Scoped(scope)).
		Select("COALESCE(SUM(amount), 0) AS total").
		Scan(&result).Error
	return result.Total, err
}

// PendingIncome is the invoiced total still awaiting collection: open invoice
// totals minus what has already been paid against them.
func (r *analyticsRepository) PendingIncome(ctx context.Context, scope access.Scope) (decimal.Decimal, error) {
	openStatuses := []enum.InvoiceStatus{
		enum.InvoiceSent,
		enum.InvoicePartiallyPaid,
		enum.InvoiceOverdue,
	}

	var invoiced decimalResult
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).Scopes(Scoped(scope)).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("status IN ?", openStatuses).
		Scan(&invoiced).Error
	if err != nil {
		return decimal.Zero, err
	}

	var paid decimalResult
	err = r.db.WithContext(ctx).Model(&entity.Payment{}).Scopes(ScopedColumn(scope, "payments.tenant_id")).
		Select("COALESCE(SUM(payments.amount), 0) AS total").
		Joins("JOIN invoices ON invoices.id = payments.invoice_id").
		Where("invoices.status IN ?", openStatuses).
		Scan(&paid).Error
	if err != nil {
		return decimal.Zero, err
	}

	return invoiced.Total.Sub(paid.Total), nil
}

func (r *analyticsRepository) ProductCount(ctx context.Context, scope access.Scope) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Product{}).Scopes(Scoped(scope)).
		Count(&count).Error
	return count, err
}

func (r *analyticsRepository) CustomerCount(ctx context.Context, scope access.Scope) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Customer{}).Scopes(Scoped(scope)).
		Count(&count).Error
	return count, err
}

func (r *analyticsRepository) LowStockProducts(ctx context.Context, scope access.Scope, threshold, limit int) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).Scopes(Scoped(scope)).
		Where("stock_quantity < ?", threshold).
		Order("stock_quantity ASC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *analyticsRepository) SalesOrderCountsByStatus(ctx context.Context, scope access.Scope) ([]domainRepo.StatusCount, error) {
	var results []domainRepo.StatusCount
	err := r.db.WithContext(ctx).Model(&entity.SalesOrder{}).Scopes(Scoped(scope)).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("status ASC").
		Scan(&results).Error
	return results, err
}

// MonthlyConfirmedSales totals confirmed order lines per calendar month for
// the trailing twelve months. Month extraction differs between PostgreSQL and
// the SQLite driver used in tests.
func (r *analyticsRepository) MonthlyConfirmedSales(ctx context.Context, scope access.Scope) ([]domainRepo.MonthlySales, error) {
	monthExpr := "to_char(sales_orders.date, 'YYYY-MM')"
	if r.db.Dialector.Name() == "sqlite" {
		monthExpr = "strftime('%Y-%m', sales_orders.date)"
	}

	since := time.Now().AddDate(-1, 0, 0)

	var results []domainRepo.MonthlySales
	err := r.db.WithContext(ctx).Model(&entity.SalesOrder{}).Scopes(ScopedColumn(scope, "sales_orders.tenant_id")).
		Select(fmt.Sprintf("%s AS month, COALESCE(SUM(sales_order_lines.quantity * sales_order_lines.unit_price), 0) AS total", monthExpr)).
		Joins("JOIN sales_order_lines ON sales_order_lines.order_id = sales_orders.id").
		Where("sales_orders.status = ? AND sales_orders.date >= ?", enum.SalesOrderConfirmed, since).
		Group(monthExpr).
		Order("month ASC").
		Scan(&results).Error
	return results, err
}
