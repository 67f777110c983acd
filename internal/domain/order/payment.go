package order

import "github.com/shopspring/decimal"

// PaymentMethod identifies how an order is paid
type PaymentMethod string

const (
	PaymentMethodCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
	PaymentMethodCreditCard     PaymentMethod = "CREDIT_CARD"
	PaymentMethodBankTransfer   PaymentMethod = "BANK_TRANSFER"
)

// PaymentStatus tracks payment settlement, independently of the order status
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// Payment is the one-to-one payment record of a shop order. Its lifetime is
// tied to the order but it is fetched as a separate resource.
type Payment struct {
	ID            int64           `json:"id"`
	OrderID       int64           `json:"orderId"`
	Method        PaymentMethod   `json:"method"`
	Status        PaymentStatus   `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transactionId,omitempty"`
}
