// Package cart orchestrates the cart view: the with-items projection, item
// mutations through the cart-item slice, and the selected-items hand-off to
// checkout.
package cart

import (
	"context"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/shopfront/client/internal/application/resource"
	domcart "github.com/shopfront/client/internal/domain/cart"
	"github.com/shopfront/client/internal/domain/shared"
	"github.com/shopfront/client/internal/infrastructure/rest"
	transient "github.com/shopfront/client/internal/infrastructure/session"
)

// Service owns the client-side cart state for one user session
type Service struct {
	client *rest.Client
	items  *resource.Slice[domcart.Item]
	store  *transient.TransientStore
	bus    shared.EventPublisher
	logger *zap.Logger

	mu      sync.RWMutex
	current domcart.Cart
}

// NewService creates a cart service
func NewService(client *rest.Client, items *resource.Slice[domcart.Item], store *transient.TransientStore, bus shared.EventPublisher, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		items:  items,
		store:  store,
		bus:    bus,
		logger: logger,
	}
}

// FetchWithItems fetches the user's cart through the with-items projection
// and replaces the cached cart. The backend creates the cart lazily, so a
// user who never added anything still gets an empty cart back, not an error.
func (s *Service) FetchWithItems(ctx context.Context, userID int64) (domcart.Cart, error) {
	var fetched domcart.Cart
	path := "/api/carts/with-items/user/" + strconv.FormatInt(userID, 10)
	if err := s.client.Get(ctx, path, nil, &fetched); err != nil {
		return domcart.Cart{}, err
	}

	s.mu.Lock()
	s.current = fetched
	s.mu.Unlock()
	return fetched, nil
}

// Current returns the last fetched cart
func (s *Service) Current() domcart.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// AddItem adds a product variant to the user's cart. The backend captures the
// unit price; the client sends only variant and quantity.
func (s *Service) AddItem(ctx context.Context, userID, productItemID int64, quantity int) (domcart.Item, error) {
	if err := domcart.ValidateQuantity(quantity); err != nil {
		return domcart.Item{}, err
	}

	created, err := s.items.Create(ctx, domcart.Item{
		ProductItemID: productItemID,
		Quantity:      quantity,
	})
	if err != nil {
		return domcart.Item{}, err
	}

	s.cartChanged(ctx, userID)
	return created, nil
}

// ChangeQuantity updates the quantity of one cart line
func (s *Service) ChangeQuantity(ctx context.Context, userID, itemID int64, quantity int) (domcart.Item, error) {
	if err := domcart.ValidateQuantity(quantity); err != nil {
		return domcart.Item{}, err
	}

	updated, err := s.items.PartialUpdate(ctx, itemID, map[string]any{
		"id":       itemID,
		"quantity": quantity,
	})
	if err != nil {
		return domcart.Item{}, err
	}

	s.cartChanged(ctx, userID)
	return updated, nil
}

// RemoveItem deletes one cart line
func (s *Service) RemoveItem(ctx context.Context, userID, itemID int64) error {
	if err := s.items.Delete(ctx, itemID); err != nil {
		return err
	}
	s.cartChanged(ctx, userID)
	return nil
}

// SelectForCheckout hands the chosen cart item ids to the checkout workflow
// through the transient store. The hand-off is at-most-once: checkout
// consumes it, and entering checkout again without re-selecting finds nothing.
func (s *Service) SelectForCheckout(ids []int64) {
	s.store.Put(transient.SelectedItemsKey, ids)
}

func (s *Service) cartChanged(ctx context.Context, userID int64) {
	if err := s.bus.Publish(ctx, domcart.NewChangedEvent(userID)); err != nil {
		s.logger.Warn("failed to publish cart changed event", zap.Error(err))
	}
}
