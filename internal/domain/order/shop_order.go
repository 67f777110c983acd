package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status represents the status of a shop order. Legal transitions are
// enforced by the backend; the client only knows the full set so an operator
// can pick any target value.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusShipped   Status = "SHIPPED"
	StatusCompleted Status = "COMPLETED"
	StatusCanceled  Status = "CANCELED"
	StatusReturned  Status = "RETURNED"
)

// IsValid checks if the status is a known Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusShipped, StatusCompleted, StatusCanceled, StatusReturned:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// AllStatuses returns every order status an operator may set
func AllStatuses() []Status {
	return []Status{StatusPending, StatusShipped, StatusCompleted, StatusCanceled, StatusReturned}
}

// Item represents a line item of a placed order. Price and quantity are a
// snapshot taken from the cart at checkout time and never change afterwards,
// regardless of later cart or catalog edits.
type Item struct {
	ID            int64           `json:"id"`
	OrderID       int64           `json:"orderId,omitempty"`
	ProductItemID int64           `json:"productItemId"`
	ProductName   string          `json:"productName,omitempty"`
	ImageURL      string          `json:"imageUrl,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
}

// LineTotal returns Price * Quantity
func (i Item) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ShopOrder represents an order created atomically by the backend from a
// checkout request. ShippingAddress is an opaque serialized blob the client
// wrote at checkout time.
type ShopOrder struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"userId"`
	Status          Status          `json:"status"`
	Total           decimal.Decimal `json:"total"`
	ShippingAddress string          `json:"shippingAddress,omitempty"`
	OrderDate       time.Time       `json:"orderDate,omitempty"`
	Items           []Item          `json:"orderItems,omitempty"`
}

// WithStatus returns a copy of the order with only the status replaced,
// every other field untouched. Admin transitions send exactly this shape.
func (o ShopOrder) WithStatus(status Status) ShopOrder {
	o.Status = status
	return o
}
