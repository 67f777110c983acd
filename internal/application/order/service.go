// Package order orchestrates the order history views and the status
// transition used by the back-office and by user-side cancellation.
package order

import (
	"context"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/shopfront/client/internal/application/resource"
	domorder "github.com/shopfront/client/internal/domain/order"
	"github.com/shopfront/client/internal/domain/shared"
	"github.com/shopfront/client/internal/infrastructure/rest"
)

// Service wraps the shop-order slice with the non-CRUD order fetches
type Service struct {
	client *rest.Client
	orders *resource.Slice[domorder.ShopOrder]
	logger *zap.Logger

	mu      sync.RWMutex
	history []domorder.ShopOrder
}

// NewService creates an order service
func NewService(client *rest.Client, orders *resource.Slice[domorder.ShopOrder], logger *zap.Logger) *Service {
	return &Service{
		client: client,
		orders: orders,
		logger: logger,
	}
}

// FetchUserOrders fetches the order history of one user
func (s *Service) FetchUserOrders(ctx context.Context, userID int64) ([]domorder.ShopOrder, error) {
	var orders []domorder.ShopOrder
	path := "/api/shop-orders/user/" + strconv.FormatInt(userID, 10)
	if err := s.client.Get(ctx, path, nil, &orders); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.history = orders
	s.mu.Unlock()
	return orders, nil
}

// History returns the last fetched order history
func (s *Service) History() []domorder.ShopOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domorder.ShopOrder(nil), s.history...)
}

// FetchOrder fetches one order with its items into the shop-order slice
func (s *Service) FetchOrder(ctx context.Context, orderID int64) (domorder.ShopOrder, error) {
	return s.orders.Get(ctx, orderID)
}

// UpdateStatus transitions an order to the target status with exactly one
// update call carrying the fetched entity unchanged except for the status.
// Any target from the enumerated set is sent; transition legality is the
// backend's responsibility.
func (s *Service) UpdateStatus(ctx context.Context, orderID int64, status domorder.Status) (domorder.ShopOrder, error) {
	if !status.IsValid() {
		return domorder.ShopOrder{}, shared.NewDomainError("INVALID_STATUS", "Unknown order status: "+status.String())
	}

	current := s.orders.State().Entity
	if current.ID != orderID {
		fetched, err := s.orders.Get(ctx, orderID)
		if err != nil {
			return domorder.ShopOrder{}, err
		}
		current = fetched
	}

	updated, err := s.orders.Update(ctx, orderID, current.WithStatus(status))
	if err != nil {
		return domorder.ShopOrder{}, err
	}

	s.logger.Info("order status updated",
		zap.Int64("order_id", orderID),
		zap.String("status", status.String()),
	)
	return updated, nil
}

// Cancel is the user-side cancellation: the same transition op with a fixed
// target status
func (s *Service) Cancel(ctx context.Context, orderID int64) (domorder.ShopOrder, error) {
	return s.UpdateStatus(ctx, orderID, domorder.StatusCanceled)
}
