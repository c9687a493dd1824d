package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njorogedev/leathercraft-api/internal/domain/enum"
	"github.com/njorogedev/leathercraft-api/pkg/apperror"
)

func TestPurchaseOrderReceive(t *testing.T) {
	ctx := context.Background()

	t.Run("receipt adds stock for every line", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		vendor := s.createVendor(tenantID, "Brass Hardware Co")
		buckles := s.createProduct(tenantID, "Buckle", "BCK-001", 4.00, 10)
		rivets := s.createProduct(tenantID, "Rivet Pack", "RIV-001", 2.50, 0)

		order, err := s.PurchaseOrders.Create(ctx, scope, &CreatePurchaseOrderInput{
			VendorID:    vendor.ID,
			OrderNumber: "PO-3001",
			Date:        time.Now(),
			Status:      enum.PurchaseOrderOrdered,
			Lines: []PurchaseOrderLineInput{
				{ProductID: buckles.ID, Quantity: 50},
				{ProductID: rivets.ID, Quantity: 200},
			},
		})
		require.NoError(t, err)
		require.Equal(t, enum.PurchaseOrderOrdered, order.Status)

		received, err := s.PurchaseOrders.Receive(ctx, scope, order.ID)
		require.NoError(t, err)
		assert.Equal(t, enum.PurchaseOrderReceived, received.Status)

		assert.Equal(t, 60, s.stockOf(buckles.ID))
		assert.Equal(t, 200, s.stockOf(rivets.ID))
	})

	t.Run("draft orders must be placed before receipt", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		vendor := s.createVendor(tenantID, "Brass Hardware Co")
		product := s.createProduct(tenantID, "Buckle", "BCK-001", 4.00, 10)

		order, err := s.PurchaseOrders.Create(ctx, scope, &CreatePurchaseOrderInput{
			VendorID:    vendor.ID,
			OrderNumber: "PO-3002",
			Date:        time.Now(),
			Lines: []PurchaseOrderLineInput{
				{ProductID: product.ID, Quantity: 10},
			},
		})
		require.NoError(t, err)
		require.Equal(t, enum.PurchaseOrderDraft, order.Status)

		_, err = s.PurchaseOrders.Receive(ctx, scope, order.ID)
		require.Error(t, err)
		assert.Contains(t, apperror.GetAppError(err).Message, "Only ORDERED purchase orders can be received")
		assert.Equal(t, 10, s.stockOf(product.ID))

		placed, err := s.PurchaseOrders.MarkOrdered(ctx, scope, order.ID)
		require.NoError(t, err)
		assert.Equal(t, enum.PurchaseOrderOrdered, placed.Status)

		_, err = s.PurchaseOrders.Receive(ctx, scope, order.ID)
		require.NoError(t, err)
		assert.Equal(t, 20, s.stockOf(product.ID))
	})

	t.Run("a second receipt is rejected and stock moves once", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		vendor := s.createVendor(tenantID, "Brass Hardware Co")
		product := s.createProduct(tenantID, "Buckle", "BCK-001", 4.00, 0)

		order, err := s.PurchaseOrders.Create(ctx, scope, &CreatePurchaseOrderInput{
			VendorID:    vendor.ID,
			OrderNumber: "PO-3003",
			Date:        time.Now(),
			Status:      enum.PurchaseOrderOrdered,
			Lines: []PurchaseOrderLineInput{
				{ProductID: product.ID, Quantity: 25},
			},
		})
		require.NoError(t, err)

		_, err = s.PurchaseOrders.Receive(ctx, scope, order.ID)
		require.NoError(t, err)

		_, err = s.PurchaseOrders.Receive(ctx, scope, order.ID)
		require.Error(t, err)
		assert.Equal(t, 25, s.stockOf(product.ID))
	})

	t.Run("line price defaults to the product cost price", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		vendor := s.createVendor(tenantID, "Brass Hardware Co")
		product := s.createProduct(tenantID, "Buckle", "BCK-001", 4.00, 0)

		order, err := s.PurchaseOrders.Create(ctx, scope, &CreatePurchaseOrderInput{
			VendorID:    vendor.ID,
			OrderNumber: "PO-3004",
			Date:        time.Now(),
			Lines: []PurchaseOrderLineInput{
				{ProductID: product.ID, Quantity: 10},
			},
		})
		require.NoError(t, err)
		require.Len(t, order.Lines, 1)
		assert.True(t, order.Lines[0].UnitPrice.Equal(product.CostPrice),
			"expected %s, got %s", product.CostPrice, order.Lines[0].UnitPrice)
	})
}

func TestLeatherPurchaseOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("receipt completes without touching product stock", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		supplier := s.createSupplier(tenantID, "Karura Tannery")
		fullGrain := s.createLeatherType(tenantID, "Full Grain")
		product := s.createProduct(tenantID, "Tote Bag", "TOTE-001", 120.00, 5)

		order, err := s.PurchaseOrders.CreateLeatherOrder(ctx, scope, &CreateLeatherPurchaseOrderInput{
			SupplierID:  supplier.ID,
			OrderNumber: "LPO-4001",
			Date:        time.Now(),
			Status:      enum.PurchaseOrderOrdered,
			Lines: []LeatherPurchaseOrderLineInput{
				{LeatherTypeID: fullGrain.ID, Quantity: 12, UnitPrice: decimal.NewFromFloat(85.00)},
			},
		})
		require.NoError(t, err)

		received, err := s.PurchaseOrders.ReceiveLeatherOrder(ctx, scope, order.ID)
		require.NoError(t, err)
		assert.Equal(t, enum.PurchaseOrderReceived, received.Status)

		// Raw leather is tracked on the order itself, not in product stock
		assert.Equal(t, 5, s.stockOf(product.ID))
	})

	t.Run("shares the standard lifecycle gating", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		supplier := s.createSupplier(tenantID, "Karura Tannery")
		fullGrain := s.createLeatherType(tenantID, "Full Grain")

		order, err := s.PurchaseOrders.CreateLeatherOrder(ctx, scope, &CreateLeatherPurchaseOrderInput{
			SupplierID:  supplier.ID,
			OrderNumber: "LPO-4002",
			Date:        time.Now(),
			Lines: []LeatherPurchaseOrderLineInput{
				{LeatherTypeID: fullGrain.ID, Quantity: 6, UnitPrice: decimal.NewFromFloat(92.50)},
			},
		})
		require.NoError(t, err)
		require.Equal(t, enum.PurchaseOrderDraft, order.Status)

		_, err = s.PurchaseOrders.ReceiveLeatherOrder(ctx, scope, order.ID)
		require.Error(t, err)
		assert.Contains(t, apperror.GetAppError(err).Message, "Only ORDERED purchase orders can be received")

		_, err = s.PurchaseOrders.MarkLeatherOrdered(ctx, scope, order.ID)
		require.NoError(t, err)

		received, err := s.PurchaseOrders.ReceiveLeatherOrder(ctx, scope, order.ID)
		require.NoError(t, err)
		assert.Equal(t, enum.PurchaseOrderReceived, received.Status)

		_, err = s.PurchaseOrders.ReceiveLeatherOrder(ctx, scope, order.ID)
		require.Error(t, err)
	})
}

func TestStockConservation(t *testing.T) {
	ctx := context.Background()

	// A full confirm-then-receive cycle nets out to the quantities moved,
	// no more and no less.
	s := newTestSetup(t)
	tenantID, scope := s.createTenant("Hide & Stitch")
	customer := s.createCustomer(tenantID, "Amara Leatherworks")
	vendor := s.createVendor(tenantID, "Brass Hardware Co")
	product := s.createProduct(tenantID, "Wallet", "WAL-001", 60.00, 20)

	salesOrder, err := s.SalesOrders.Create(ctx, scope, &CreateSalesOrderInput{
		CustomerID:  customer.ID,
		OrderNumber: "SO-5001",
		Date:        time.Now(),
		Lines: []SalesOrderLineInput{
			{ProductID: product.ID, Quantity: 8},
		},
	})
	require.NoError(t, err)

	_, err = s.SalesOrders.Confirm(ctx, scope, salesOrder.ID)
	require.NoError(t, err)
	require.Equal(t, 12, s.stockOf(product.ID))

	purchaseOrder, err := s.PurchaseOrders.Create(ctx, scope, &CreatePurchaseOrderInput{
		VendorID:    vendor.ID,
		OrderNumber: "PO-5001",
		Date:        time.Now(),
		Status:      enum.PurchaseOrderOrdered,
		Lines: []PurchaseOrderLineInput{
			{ProductID: product.ID, Quantity: 30},
		},
	})
	require.NoError(t, err)

	_, err = s.PurchaseOrders.Receive(ctx, scope, purchaseOrder.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, s.stockOf(product.ID))
}
