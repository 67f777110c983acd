package checkout

import (
	"github.com/shopspring/decimal"

	domcart "github.com/shopfront/client/internal/domain/cart"
)

// Pricing holds the client-side pricing constants of the checkout flow
type Pricing struct {
	FreeShippingThreshold decimal.Decimal // subtotal strictly above this ships free
	ShippingFee           decimal.Decimal // flat fee otherwise
}

// Quote is the price breakdown shown on the checkout page. It is computed
// entirely from the already-fetched, already-selected items; there is no
// re-pricing round trip before submission, so the backend may see a total
// computed from prices that have since drifted.
type Quote struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// QuoteFor prices the selected subset: subtotal is the sum of line totals,
// shipping is zero above the free-shipping threshold and the flat fee below.
func (p Pricing) QuoteFor(items []domcart.Item) Quote {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	shipping := p.ShippingFee
	if subtotal.GreaterThan(p.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}
}
