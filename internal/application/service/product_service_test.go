package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njorogedev/leathercraft-api/internal/domain/access"
	"github.com/njorogedev/leathercraft-api/pkg/apperror"
	"github.com/njorogedev/leathercraft-api/pkg/pagination"
)

func TestProductService(t *testing.T) {
	ctx := context.Background()

	t.Run("create requires a tenant scope", func(t *testing.T) {
		s := newTestSetup(t)

		_, err := s.Products.Create(ctx, access.Elevated(), &CreateProductInput{
			Name:  "Tote Bag",
			SKU:   "TOTE-001",
			Price: decimal.NewFromFloat(120.00),
		})
		require.Error(t, err)
		assert.Equal(t, "Tenant context required", apperror.GetAppError(err).Message)
	})

	t.Run("sku is unique per tenant, not globally", func(t *testing.T) {
		s := newTestSetup(t)
		_, scope := s.createTenant("Hide & Stitch")
		_, otherScope := s.createTenant("Rival Works")

		_, err := s.Products.Create(ctx, scope, &CreateProductInput{
			Name: "Tote Bag", SKU: "TOTE-001", Price: decimal.NewFromFloat(120.00),
		})
		require.NoError(t, err)

		_, err = s.Products.Create(ctx, scope, &CreateProductInput{
			Name: "Tote Bag V2", SKU: "TOTE-001", Price: decimal.NewFromFloat(130.00),
		})
		require.Error(t, err)
		assert.Equal(t, 409, apperror.GetAppError(err).Code)

		// The same SKU is fine for a different tenant
		_, err = s.Products.Create(ctx, otherScope, &CreateProductInput{
			Name: "Tote Bag", SKU: "TOTE-001", Price: decimal.NewFromFloat(99.00),
		})
		require.NoError(t, err)
	})

	t.Run("update cannot touch stock", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		product := s.createProduct(tenantID, "Tote Bag", "TOTE-001", 120.00, 15)

		name := "Weekender Tote"
		price := decimal.NewFromFloat(140.00)
		updated, err := s.Products.Update(ctx, scope, product.ID, &UpdateProductInput{
			Name:  &name,
			Price: &price,
		})
		require.NoError(t, err)
		assert.Equal(t, "Weekender Tote", updated.Name)
		assert.Equal(t, 15, updated.StockQuantity)
	})

	t.Run("low stock filter", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		s.createProduct(tenantID, "Tote Bag", "TOTE-001", 120.00, 50)
		s.createProduct(tenantID, "Belt", "BELT-001", 45.00, 2)
		s.createProduct(tenantID, "Wallet", "WAL-001", 60.00, 4)

		threshold := 5
		result, err := s.Products.List(ctx, scope, &ListProductsInput{
			Pagination:    pagination.DefaultPagination(),
			LowStockBelow: &threshold,
		})
		require.NoError(t, err)
		require.Len(t, result.Items, 2)
		for _, p := range result.Items {
			assert.Less(t, p.StockQuantity, threshold)
		}
	})

	t.Run("lists are tenant scoped", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		otherTenantID, otherScope := s.createTenant("Rival Works")
		s.createProduct(tenantID, "Tote Bag", "TOTE-001", 120.00, 10)
		s.createProduct(otherTenantID, "Duffel", "DUF-001", 200.00, 5)

		mine, err := s.Products.List(ctx, scope, &ListProductsInput{
			Pagination: pagination.DefaultPagination(),
		})
		require.NoError(t, err)
		require.Len(t, mine.Items, 1)
		assert.Equal(t, "Tote Bag", mine.Items[0].Name)

		theirs, err := s.Products.List(ctx, otherScope, &ListProductsInput{
			Pagination: pagination.DefaultPagination(),
		})
		require.NoError(t, err)
		require.Len(t, theirs.Items, 1)
		assert.Equal(t, "Duffel", theirs.Items[0].Name)

		// Elevated scope sees everything
		all, err := s.Products.List(ctx, access.Elevated(), &ListProductsInput{
			Pagination: pagination.DefaultPagination(),
		})
		require.NoError(t, err)
		assert.Len(t, all.Items, 2)
	})
}
