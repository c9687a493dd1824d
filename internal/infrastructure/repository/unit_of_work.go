package repository

import (
	"context"

	"gorm.io/gorm"

	domainRepo "github.com/njorogedev/leathercraft-api/internal/domain/repository"
)

type unitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a transaction runner over the given database
func NewUnitOfWork(db *gorm.DB) domainRepo.UnitOfWork {
	return &unitOfWork{db: db}
}

// Execute runs fn inside a single database transaction. Repositories handed
// to fn are bound to that transaction, so guarded updates and writes either
// all commit or all roll back.
func (u *unitOfWork) Execute(ctx context.Context, fn func(tx domainRepo.TxRepositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&txRepositories{tx: tx})
	})
}

type txRepositories struct {
	tx *gorm.DB
}

func (t *txRepositories) Products() domainRepo.ProductRepository {
	return NewProductRepository(t.tx)
}

func (t *txRepositories) SalesOrders() domainRepo.SalesOrderRepository {
	return NewSalesOrderRepository(t.tx)
}

func (t *txRepositories) PurchaseOrders() domainRepo.PurchaseOrderRepository {
	return NewPurchaseOrderRepository(t.tx)
}

func (t *txRepositories) LeatherPurchaseOrders() domainRepo.LeatherPurchaseOrderRepository {
	return NewLeatherPurchaseOrderRepository(t.tx)
}

func (t *txRepositories) Invoices() domainRepo.InvoiceRepository {
	return NewInvoiceRepository(t.tx)
}

func (t *txRepositories) Payments() domainRepo.PaymentRepository {
	return NewPaymentRepository(t.tx)
}
