package enum

// PaymentMethod represents how a payment was made.
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "CASH"
	PaymentMethodBank       PaymentMethod = "BANK"
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodOther      PaymentMethod = "OTHER"
)

// Valid reports whether the method is one of the defined values.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBank, PaymentMethodCreditCard, PaymentMethodOther:
		return true
	}
	return false
}

func (m PaymentMethod) String() string {
	return string(m)
}
