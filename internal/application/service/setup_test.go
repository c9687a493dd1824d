package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/njorogedev/leathercraft-api/internal/domain/access"
	"github.com/njorogedev/leathercraft-api/internal/domain/entity"
	"github.com/njorogedev/leathercraft-api/internal/infrastructure/database"
	"github.com/njorogedev/leathercraft-api/internal/infrastructure/repository"
	"github.com/njorogedev/leathercraft-api/pkg/pagination"
	"github.com/njorogedev/leathercraft-api/pkg/utils"
)

func defaultParams() *pagination.PaginationParams {
	return pagination.DefaultPagination()
}

// testSetup wires services against an in-memory sqlite database
type testSetup struct {
	t  *testing.T
	db *gorm.DB

	Auth           *AuthService
	Tenants        *TenantService
	SalesOrders    *SalesOrderService
	PurchaseOrders *PurchaseOrderService
	Invoices       *InvoiceService
	Products       *ProductService
	Dashboard      *DashboardService
}

func newTestSetup(t *testing.T) *testSetup {
	t.Helper()

	// A named shared-cache DSN keeps every pooled connection on the same
	// in-memory database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrate(db))

	userRepo := repository.NewUserRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	supplierRepo := repository.NewLeatherSupplierRepository(db)
	leatherTypeRepo := repository.NewLeatherTypeRepository(db)
	salesOrderRepo := repository.NewSalesOrderRepository(db)
	purchaseOrderRepo := repository.NewPurchaseOrderRepository(db)
	leatherOrderRepo := repository.NewLeatherPurchaseOrderRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	uow := repository.NewUnitOfWork(db)

	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	return &testSetup{
		t:              t,
		db:             db,
		Auth:           NewAuthService(userRepo, tenantRepo, jwtManager),
		Tenants:        NewTenantService(tenantRepo, userRepo),
		SalesOrders:    NewSalesOrderService(salesOrderRepo, customerRepo, productRepo, uow),
		PurchaseOrders: NewPurchaseOrderService(purchaseOrderRepo, leatherOrderRepo, vendorRepo, supplierRepo, productRepo, leatherTypeRepo, uow),
		Invoices:       NewInvoiceService(invoiceRepo, paymentRepo, customerRepo, uow),
		Products:       NewProductService(productRepo),
		Dashboard:      NewDashboardService(analyticsRepo),
	}
}

func (s *testSetup) createTenant(name string) (uuid.UUID, access.Scope) {
	s.t.Helper()
	tenant := &entity.Tenant{Name: name}
	require.NoError(s.t, s.db.Create(tenant).Error)
	return tenant.ID, access.Tenant(tenant.ID)
}

func (s *testSetup) createCustomer(tenantID uuid.UUID, name string) *entity.Customer {
	s.t.Helper()
	customer := &entity.Customer{TenantID: tenantID, Name: name}
	require.NoError(s.t, s.db.Create(customer).Error)
	return customer
}

func (s *testSetup) createVendor(tenantID uuid.UUID, name string) *entity.Vendor {
	s.t.Helper()
	vendor := &entity.Vendor{TenantID: tenantID, Name: name}
	require.NoError(s.t, s.db.Create(vendor).Error)
	return vendor
}

func (s *testSetup) createSupplier(tenantID uuid.UUID, name string) *entity.LeatherSupplier {
	s.t.Helper()
	supplier := &entity.LeatherSupplier{TenantID: tenantID, Name: name}
	require.NoError(s.t, s.db.Create(supplier).Error)
	return supplier
}

func (s *testSetup) createLeatherType(tenantID uuid.UUID, name string) *entity.LeatherType {
	s.t.Helper()
	leatherType := &entity.LeatherType{TenantID: tenantID, Name: name}
	require.NoError(s.t, s.db.Create(leatherType).Error)
	return leatherType
}

func (s *testSetup) createProduct(tenantID uuid.UUID, name, sku string, price float64, stock int) *entity.Product {
	s.t.Helper()
	product := &entity.Product{
		TenantID:      tenantID,
		Name:          name,
		SKU:           sku,
		Price:         decimal.NewFromFloat(price),
		CostPrice:     decimal.NewFromFloat(price / 2),
		StockQuantity: stock,
	}
	require.NoError(s.t, s.db.Create(product).Error)
	return product
}

func (s *testSetup) stockOf(productID uuid.UUID) int {
	s.t.Helper()
	var product entity.Product
	require.NoError(s.t, s.db.First(&product, "id = ?", productID).Error)
	return product.StockQuantity
}
