package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njorogedev/leathercraft-api/internal/domain/enum"
	"github.com/njorogedev/leathercraft-api/pkg/apperror"
)

func TestSalesOrderConfirm(t *testing.T) {
	ctx := context.Background()

	t.Run("deducts stock and issues invoice", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		customer := s.createCustomer(tenantID, "Amara Leatherworks")
		product := s.createProduct(tenantID, "Tote Bag", "TOTE-001", 120.00, 10)

		order, err := s.SalesOrders.Create(ctx, scope, &CreateSalesOrderInput{
			CustomerID:  customer.ID,
			OrderNumber: "SO-1001",
			Date:        time.Now(),
			Lines: []SalesOrderLineInput{
				{ProductID: product.ID, Quantity: 3},
			},
		})
		require.NoError(t, err)
		require.Equal(t, enum.SalesOrderDraft, order.Status)

		invoice, err := s.SalesOrders.Confirm(ctx, scope, order.ID)
		require.NoError(t, err)

		assert.Equal(t, "INV-SO-1001", invoice.InvoiceNumber)
		assert.Equal(t, customer.ID, invoice.CustomerID)
		require.NotNil(t, invoice.SalesOrderID)
		assert.Equal(t, order.ID, *invoice.SalesOrderID)
		assert.True(t, invoice.TotalAmount.Equal(decimal.NewFromFloat(360.00)),
			"expected 360.00, got %s", invoice.TotalAmount)
		assert.Equal(t, invoice.Date.AddDate(0, 0, 30).Truncate(24*time.Hour),
			invoice.DueDate.Truncate(24*time.Hour))

		assert.Equal(t, 7, s.stockOf(product.ID))

		confirmed, err := s.SalesOrders.Get(ctx, scope, order.ID)
		require.NoError(t, err)
		assert.Equal(t, enum.SalesOrderConfirmed, confirmed.Status)
	})

	t.Run("rejects insufficient stock and leaves everything untouched", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		customer := s.createCustomer(tenantID, "Amara Leatherworks")
		product := s.createProduct(tenantID, "Belt", "BELT-001", 45.00, 3)

		order, err := s.SalesOrders.Create(ctx, scope, &CreateSalesOrderInput{
			CustomerID:  customer.ID,
			OrderNumber: "SO-1002",
			Date:        time.Now(),
			Lines: []SalesOrderLineInput{
				{ProductID: product.ID, Quantity: 5},
			},
		})
		require.NoError(t, err)

		_, err = s.SalesOrders.Confirm(ctx, scope, order.ID)
		require.Error(t, err)
		assert.Equal(t, "Insufficient stock for Belt (Requested: 5, Available: 3)",
			apperror.GetAppError(err).Message)

		assert.Equal(t, 3, s.stockOf(product.ID))

		reloaded, err := s.SalesOrders.Get(ctx, scope, order.ID)
		require.NoError(t, err)
		assert.Equal(t, enum.SalesOrderDraft, reloaded.Status)
	})

	t.Run("rolls back earlier deductions when a later line fails", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		customer := s.createCustomer(tenantID, "Amara Leatherworks")
		plentiful := s.createProduct(tenantID, "Wallet", "WAL-001", 60.00, 100)
		scarce := s.createProduct(tenantID, "Satchel", "SAT-001", 250.00, 1)

		order, err := s.SalesOrders.Create(ctx, scope, &CreateSalesOrderInput{
			CustomerID:  customer.ID,
			OrderNumber: "SO-1003",
			Date:        time.Now(),
			Lines: []SalesOrderLineInput{
				{ProductID: plentiful.ID, Quantity: 10},
				{ProductID: scarce.ID, Quantity: 2},
			},
		})
		require.NoError(t, err)

		_, err = s.SalesOrders.Confirm(ctx, scope, order.ID)
		require.Error(t, err)

		assert.Equal(t, 100, s.stockOf(plentiful.ID))
		assert.Equal(t, 1, s.stockOf(scarce.ID))
	})

	t.Run("rejects a second confirmation", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		customer := s.createCustomer(tenantID, "Amara Leatherworks")
		product := s.createProduct(tenantID, "Tote Bag", "TOTE-001", 120.00, 10)

		order, err := s.SalesOrders.Create(ctx, scope, &CreateSalesOrderInput{
			CustomerID:  customer.ID,
			OrderNumber: "SO-1004",
			Date:        time.Now(),
			Lines: []SalesOrderLineInput{
				{ProductID: product.ID, Quantity: 2},
			},
		})
		require.NoError(t, err)

		_, err = s.SalesOrders.Confirm(ctx, scope, order.ID)
		require.NoError(t, err)

		_, err = s.SalesOrders.Confirm(ctx, scope, order.ID)
		require.Error(t, err)
		assert.Contains(t, apperror.GetAppError(err).Message, "Only DRAFT orders can be confirmed")

		// Stock was deducted exactly once
		assert.Equal(t, 8, s.stockOf(product.ID))
	})

	t.Run("invoice total snapshots line prices at confirmation", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		customer := s.createCustomer(tenantID, "Amara Leatherworks")
		product := s.createProduct(tenantID, "Card Holder", "CARD-001", 25.00, 50)

		override := decimal.NewFromFloat(20.00)
		order, err := s.SalesOrders.Create(ctx, scope, &CreateSalesOrderInput{
			CustomerID:  customer.ID,
			OrderNumber: "SO-1005",
			Date:        time.Now(),
			Lines: []SalesOrderLineInput{
				{ProductID: product.ID, Quantity: 4, UnitPrice: &override},
			},
		})
		require.NoError(t, err)

		invoice, err := s.SalesOrders.Confirm(ctx, scope, order.ID)
		require.NoError(t, err)
		assert.True(t, invoice.TotalAmount.Equal(decimal.NewFromFloat(80.00)),
			"expected 80.00, got %s", invoice.TotalAmount)
	})

	t.Run("is invisible across tenants", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		_, otherScope := s.createTenant("Rival Works")
		customer := s.createCustomer(tenantID, "Amara Leatherworks")
		product := s.createProduct(tenantID, "Tote Bag", "TOTE-001", 120.00, 10)

		order, err := s.SalesOrders.Create(ctx, scope, &CreateSalesOrderInput{
			CustomerID:  customer.ID,
			OrderNumber: "SO-1006",
			Date:        time.Now(),
			Lines: []SalesOrderLineInput{
				{ProductID: product.ID, Quantity: 1},
			},
		})
		require.NoError(t, err)

		// Guessing the ID from another tenant yields not-found, never a leak
		_, err = s.SalesOrders.Get(ctx, otherScope, order.ID)
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)

		_, err = s.SalesOrders.Confirm(ctx, otherScope, order.ID)
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)

		assert.Equal(t, 10, s.stockOf(product.ID))
	})
}

func TestSalesOrderDraftGating(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed orders refuse edits and deletion", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		customer := s.createCustomer(tenantID, "Amara Leatherworks")
		product := s.createProduct(tenantID, "Tote Bag", "TOTE-001", 120.00, 10)

		order, err := s.SalesOrders.Create(ctx, scope, &CreateSalesOrderInput{
			CustomerID:  customer.ID,
			OrderNumber: "SO-2001",
			Date:        time.Now(),
			Lines: []SalesOrderLineInput{
				{ProductID: product.ID, Quantity: 1},
			},
		})
		require.NoError(t, err)

		_, err = s.SalesOrders.Confirm(ctx, scope, order.ID)
		require.NoError(t, err)

		newNumber := "SO-2001-B"
		_, err = s.SalesOrders.Update(ctx, scope, order.ID, &UpdateSalesOrderInput{OrderNumber: &newNumber})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)

		_, err = s.SalesOrders.AddLine(ctx, scope, order.ID, &SalesOrderLineInput{
			ProductID: product.ID, Quantity: 1,
		})
		require.Error(t, err)

		err = s.SalesOrders.Delete(ctx, scope, order.ID)
		require.Error(t, err)
	})

	t.Run("draft orders accept line edits", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		customer := s.createCustomer(tenantID, "Amara Leatherworks")
		product := s.createProduct(tenantID, "Tote Bag", "TOTE-001", 120.00, 10)
		other := s.createProduct(tenantID, "Belt", "BELT-001", 45.00, 10)

		order, err := s.SalesOrders.Create(ctx, scope, &CreateSalesOrderInput{
			CustomerID:  customer.ID,
			OrderNumber: "SO-2002",
			Date:        time.Now(),
			Lines: []SalesOrderLineInput{
				{ProductID: product.ID, Quantity: 2},
			},
		})
		require.NoError(t, err)

		order, err = s.SalesOrders.AddLine(ctx, scope, order.ID, &SalesOrderLineInput{
			ProductID: other.ID, Quantity: 1,
		})
		require.NoError(t, err)
		require.Len(t, order.Lines, 2)

		quantity := 5
		order, err = s.SalesOrders.UpdateLine(ctx, scope, order.ID, order.Lines[0].ID, &UpdateLineInput{
			Quantity: &quantity,
		})
		require.NoError(t, err)
		assert.True(t, order.TotalAmount().Equal(decimal.NewFromFloat(645.00)),
			"expected 645.00, got %s", order.TotalAmount())

		order, err = s.SalesOrders.RemoveLine(ctx, scope, order.ID, order.Lines[1].ID)
		require.NoError(t, err)
		assert.Len(t, order.Lines, 1)
	})

	t.Run("rejects non-positive line quantity", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		customer := s.createCustomer(tenantID, "Amara Leatherworks")
		product := s.createProduct(tenantID, "Tote Bag", "TOTE-001", 120.00, 10)

		_, err := s.SalesOrders.Create(ctx, scope, &CreateSalesOrderInput{
			CustomerID:  customer.ID,
			OrderNumber: "SO-2003",
			Date:        time.Now(),
			Lines: []SalesOrderLineInput{
				{ProductID: product.ID, Quantity: 0},
			},
		})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})

	t.Run("rejects an unknown customer", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		product := s.createProduct(tenantID, "Tote Bag", "TOTE-001", 120.00, 10)

		_, err := s.SalesOrders.Create(ctx, scope, &CreateSalesOrderInput{
			CustomerID:  uuid.New(),
			OrderNumber: "SO-2004",
			Date:        time.Now(),
			Lines: []SalesOrderLineInput{
				{ProductID: product.ID, Quantity: 1},
			},
		})
		require.Error(t, err)
		assert.Equal(t, "Customer not found", apperror.GetAppError(err).Message)
	})
}
