package enum

import "strings"

// PaymentMode is the tender recorded on a hold bill while the order is staged.
type PaymentMode string

const (
	PaymentModeCash  PaymentMode = "Cash"
	PaymentModeUPI   PaymentMode = "UPI"
	PaymentModeCard  PaymentMode = "Card"
	PaymentModeOther PaymentMode = "Other"
)

// Valid reports whether the payment mode is one of the known values.
func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentModeCash, PaymentModeUPI, PaymentModeCard, PaymentModeOther:
		return true
	}
	return false
}

// Method converts a hold-bill payment mode to the finalized bill's payment method.
func (m PaymentMode) Method() PaymentMethod {
	return PaymentMethod(strings.ToUpper(string(m)))
}

// PaymentMethod is the tender recorded on a finalized bill.
type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "CASH"
	PaymentMethodCard  PaymentMethod = "CARD"
	PaymentMethodUPI   PaymentMethod = "UPI"
	PaymentMethodOther PaymentMethod = "OTHER"
)

// Valid reports whether the payment method is one of the known values.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI, PaymentMethodOther:
		return true
	}
	return false
}
