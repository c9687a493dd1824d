package enum

// SalesOrderStatus represents the lifecycle status of a sales order.
// The only implemented transition is Draft -> Confirmed; Cancelled is a
// terminal value with no transition endpoint.
type SalesOrderStatus string

const (
	SalesOrderDraft     SalesOrderStatus = "DRAFT"
	SalesOrderConfirmed SalesOrderStatus = "CONFIRMED"
	SalesOrderCancelled SalesOrderStatus = "CANCELLED"
)

// Valid reports whether the status is one of the defined values.
func (s SalesOrderStatus) Valid() bool {
	switch s {
	case SalesOrderDraft, SalesOrderConfirmed, SalesOrderCancelled:
		return true
	}
	return false
}

func (s SalesOrderStatus) String() string {
	return string(s)
}
