package order

import "github.com/shopspring/decimal"

// CheckoutRequest is the payload of the checkout workflow call. It is not a
// plain CRUD shape: the backend creates the order, its items and its payment
// record in one transaction from the selected cart item ids.
type CheckoutRequest struct {
	UserID          int64           `json:"userId"`
	Total           decimal.Decimal `json:"total"`
	ShippingAddress string          `json:"shippingAddress"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	SelectedItemIDs []int64         `json:"selectedItemIds"`
}
