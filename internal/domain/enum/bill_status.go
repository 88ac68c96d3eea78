package enum

// HoldBillStatus is the lifecycle state of a staged (pre-checkout) order.
// HOLD bills are mutable; RESUMED and CANCELLED bills are immutable.
type HoldBillStatus string

const (
	HoldBillStatusHold      HoldBillStatus = "HOLD"
	HoldBillStatusResumed   HoldBillStatus = "RESUMED"
	HoldBillStatusCancelled HoldBillStatus = "CANCELLED"
)

// Valid reports whether the hold-bill status is one of the known values.
func (s HoldBillStatus) Valid() bool {
	return s == HoldBillStatusHold || s == HoldBillStatusResumed || s == HoldBillStatusCancelled
}

// BillStatus is the lifecycle state of a finalized bill.
type BillStatus string

const (
	BillStatusActive    BillStatus = "ACTIVE"
	BillStatusCompleted BillStatus = "COMPLETED"
	BillStatusCancelled BillStatus = "CANCELLED"
)

// Valid reports whether the bill status is one of the known values.
func (s BillStatus) Valid() bool {
	return s == BillStatusActive || s == BillStatusCompleted || s == BillStatusCancelled
}

// PaymentStatus tracks how much of a bill has been settled.
type PaymentStatus string

const (
	PaymentStatusPending       PaymentStatus = "PENDING"
	PaymentStatusPaid          PaymentStatus = "PAID"
	PaymentStatusPartiallyPaid PaymentStatus = "PARTIALLY_PAID"
)

// Valid reports whether the payment status is one of the known values.
func (s PaymentStatus) Valid() bool {
	return s == PaymentStatusPending || s == PaymentStatusPaid || s == PaymentStatusPartiallyPaid
}
