package enum

// PurchaseOrderStatus represents the lifecycle status of a purchase order.
// Shared by the standard-goods and raw-leather variants; the only implemented
// transition is Ordered -> Received.
type PurchaseOrderStatus string

const (
	PurchaseOrderDraft     PurchaseOrderStatus = "DRAFT"
	PurchaseOrderOrdered   PurchaseOrderStatus = "ORDERED"
	PurchaseOrderReceived  PurchaseOrderStatus = "RECEIVED"
	PurchaseOrderCancelled PurchaseOrderStatus = "CANCELLED"
)

// Valid reports whether the status is one of the defined values.
func (s PurchaseOrderStatus) Valid() bool {
	switch s {
	case PurchaseOrderDraft, PurchaseOrderOrdered, PurchaseOrderReceived, PurchaseOrderCancelled:
		return true
	}
	return false
}

func (s PurchaseOrderStatus) String() string {
	return string(s)
}
