package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummary(t *testing.T) {
	ctx := context.Background()

	s := newTestSetup(t)
	tenantID, scope := s.createTenant("Hide & Stitch")
	_, otherScope := s.createTenant("Rival Works")
	customer := s.createCustomer(tenantID, "Amara Leatherworks")
	product := s.createProduct(tenantID, "Tote Bag", "TOTE-001", 100.00, 20)
	s.createProduct(tenantID, "Belt", "BELT-001", 45.00, 2)

	// One confirmed order, fully paid
	paidOrder, err := s.SalesOrders.Create(ctx, scope, &CreateSalesOrderInput{
		CustomerID:  customer.ID,
		OrderNumber: "SO-8001",
		Date:        time.Now(),
		Lines: []SalesOrderLineInput{
			{ProductID: product.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)
	paidInvoice, err := s.SalesOrders.Confirm(ctx, scope, paidOrder.ID)
	require.NoError(t, err)
	_, err = s.Invoices.RecordPayment(ctx, scope, paidInvoice.ID, &RecordPaymentInput{
		Amount: decimal.NewFromFloat(300.00),
	})
	require.NoError(t, err)

	// One confirmed order, partially collected
	openOrder, err := s.SalesOrders.Create(ctx, scope, &CreateSalesOrderInput{
		CustomerID:  customer.ID,
		OrderNumber: "SO-8002",
		Date:        time.Now(),
		Lines: []SalesOrderLineInput{
			{ProductID: product.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)
	openInvoice, err := s.SalesOrders.Confirm(ctx, scope, openOrder.ID)
	require.NoError(t, err)
	_, err = s.Invoices.RecordPayment(ctx, scope, openInvoice.ID, &RecordPaymentInput{
		Amount: decimal.NewFromFloat(50.00),
	})
	require.NoError(t, err)

	// One order still in draft
	_, err = s.SalesOrders.Create(ctx, scope, &CreateSalesOrderInput{
		CustomerID:  customer.ID,
		OrderNumber: "SO-8003",
		Date:        time.Now(),
		Lines: []SalesOrderLineInput{
			{ProductID: product.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	summary, err := s.Dashboard.Summary(ctx, scope)
	require.NoError(t, err)

	assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromFloat(300.00)),
		"expected revenue 300.00, got %s", summary.TotalRevenue)
	assert.True(t, summary.CashCollected.Equal(decimal.NewFromFloat(350.00)),
		"expected cash 350.00, got %s", summary.CashCollected)
	assert.True(t, summary.PendingIncome.Equal(decimal.NewFromFloat(150.00)),
		"expected pending 150.00, got %s", summary.PendingIncome)
	assert.Equal(t, int64(2), summary.ProductCount)
	assert.Equal(t, int64(1), summary.CustomerCount)

	// Belt at 2 units sits under the low stock threshold
	require.Len(t, summary.LowStock, 1)
	assert.Equal(t, "Belt", summary.LowStock[0].Name)

	statuses := map[string]int64{}
	for _, sc := range summary.OrdersByStatus {
		statuses[sc.Status] = sc.Count
	}
	assert.Equal(t, int64(2), statuses["CONFIRMED"])
	assert.Equal(t, int64(1), statuses["DRAFT"])

	require.NotEmpty(t, summary.MonthlySales)
	thisMonth := time.Now().Format("2006-01")
	var monthTotal decimal.Decimal
	for _, m := range summary.MonthlySales {
		if m.Month == thisMonth {
			monthTotal = m.Total
		}
	}
	assert.True(t, monthTotal.Equal(decimal.NewFromFloat(500.00)),
		"expected 500.00 confirmed this month, got %s", monthTotal)

	// A different tenant sees an empty dashboard
	empty, err := s.Dashboard.Summary(ctx, otherScope)
	require.NoError(t, err)
	assert.True(t, empty.TotalRevenue.IsZero())
	assert.True(t, empty.CashCollected.IsZero())
	assert.Equal(t, int64(0), empty.ProductCount)
	assert.Empty(t, empty.OrdersByStatus)
}
