package enum

// InvoiceStatus represents the status of an invoice. Paid/PartiallyPaid are
// derived from the payment ledger; Overdue and Cancelled are set manually.
type InvoiceStatus string

const (
	InvoiceDraft         InvoiceStatus = "DRAFT"
	InvoiceSent          InvoiceStatus = "SENT"
	InvoicePaid          InvoiceStatus = "PAID"
	InvoicePartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	InvoiceOverdue       InvoiceStatus = "OVERDUE"
	InvoiceCancelled     InvoiceStatus = "CANCELLED"
)

// Valid reports whether the status is one of the defined values.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoicePartiallyPaid, InvoiceOverdue, InvoiceCancelled:
		return true
	}
	return false
}

// AcceptsPayments reports whether the payment-derived status rule applies to
// an invoice currently in this status. Cancelled invoices never accept
// payments; a payment must not silently resurrect a cancelled invoice.
func (s InvoiceStatus) AcceptsPayments() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePartiallyPaid, InvoiceOverdue, InvoicePaid:
		return true
	}
	return false
}

func (s InvoiceStatus) String() string {
	return string(s)
}
