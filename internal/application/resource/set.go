package resource

import (
	"go.uber.org/zap"

	"github.com/shopfront/client/internal/domain/cart"
	"github.com/shopfront/client/internal/domain/catalog"
	"github.com/shopfront/client/internal/domain/identity"
	"github.com/shopfront/client/internal/domain/order"
	"github.com/shopfront/client/internal/infrastructure/rest"
)

// Set bundles one slice per backend resource. Each slice is process-wide and
// singly owned; any consumer may dispatch into it.
type Set struct {
	Categories   *Slice[catalog.Category]
	Products     *Slice[catalog.Product]
	ProductItems *Slice[catalog.ProductItem]
	Carts        *Slice[cart.Cart]
	CartItems    *Slice[cart.Item]
	ShopOrders   *Slice[order.ShopOrder]
	OrderItems   *Slice[order.Item]
	Payments     *Slice[order.Payment]
	Addresses    *Slice[identity.Address]
}

// NewSet instantiates the slices against their REST endpoints. defaults is
// the page-0 query every post-mutation refresh uses.
func NewSet(client *rest.Client, defaults Query, logger *zap.Logger) *Set {
	return &Set{
		Categories:   NewSlice[catalog.Category](client, "/api/categories", defaults, logger),
		Products:     NewSlice[catalog.Product](client, "/api/products", defaults, logger),
		ProductItems: NewSlice[catalog.ProductItem](client, "/api/product-items", defaults, logger),
		Carts:        NewSlice[cart.Cart](client, "/api/carts", defaults, logger),
		CartItems:    NewSlice[cart.Item](client, "/api/cart-items", defaults, logger),
		ShopOrders:   NewSlice[order.ShopOrder](client, "/api/shop-orders", defaults, logger),
		OrderItems:   NewSlice[order.Item](client, "/api/order-items", defaults, logger),
		Payments:     NewSlice[order.Payment](client, "/api/payments", defaults, logger),
		Addresses:    NewSlice[identity.Address](client, "/api/user-addresses", defaults, logger),
	}
}
