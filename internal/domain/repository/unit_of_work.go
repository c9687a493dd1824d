package repository

import "context"

// TxRepositories exposes repositories bound to a single database
// transaction. Lifecycle operations read, check and write through these so
// the whole transition commits or rolls back as one unit.
type TxRepositories interface {
	Products() ProductRepository
	SalesOrders() SalesOrderRepository
	PurchaseOrders() PurchaseOrderRepository
	LeatherPurchaseOrders() LeatherPurchaseOrderRepository
	Invoices() InvoiceRepository
	Payments() PaymentRepository
}

// UnitOfWork runs a function inside a database transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(tx TxRepositories) error) error
}
