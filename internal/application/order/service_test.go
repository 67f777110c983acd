package order

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shopfront/client/internal/application/resource"
	domorder "github.com/shopfront/client/internal/domain/order"
	"github.com/shopfront/client/internal/infrastructure/rest"
)

type orderBackend struct {
	mu       sync.Mutex
	orders   map[int64]domorder.ShopOrder
	getCalls atomic.Int32
	putCalls atomic.Int32
	lastPut  *domorder.ShopOrder
}

func newOrderBackend(seed ...domorder.ShopOrder) *orderBackend {
	b := &orderBackend{orders: make(map[int64]domorder.ShopOrder)}
	for _, o := range seed {
		b.orders[o.ID] = o
	}
	return b
}

func (b *orderBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/shop-orders", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		all := make([]domorder.ShopOrder, 0, len(b.orders))
		for _, o := range b.orders {
			all = append(all, o)
		}
		_ = json.NewEncoder(w).Encode(all)
	})
	mux.HandleFunc("GET /api/shop-orders/user/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		all := make([]domorder.ShopOrder, 0, len(b.orders))
		for _, o := range b.orders {
			all = append(all, o)
		}
		_ = json.NewEncoder(w).Encode(all)
	})
	mux.HandleFunc("GET /api/shop-orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.getCalls.Add(1)
		b.mu.Lock()
		defer b.mu.Unlock()
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		o, ok := b.orders[id]
		if !ok {
			http.Error(w, `{"title":"Not Found"}`, http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(o)
	})
	mux.HandleFunc("PUT /api/shop-orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.putCalls.Add(1)
		b.mu.Lock()
		defer b.mu.Unlock()
		var o domorder.ShopOrder
		if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		b.orders[o.ID] = o
		b.lastPut = &o
		_ = json.NewEncoder(w).Encode(o)
	})
	return mux
}

func (b *orderBackend) putBody() *domorder.ShopOrder {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastPut
}

func newTestService(t *testing.T, backend *orderBackend) *Service {
	t.Helper()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	client, err := rest.New(rest.Config{BaseURL: server.URL}, zap.NewNop())
	require.NoError(t, err)

	orders := resource.NewSlice[domorder.ShopOrder](client, "/api/shop-orders", resource.Query{Size: 20, Sort: "id,asc"}, zap.NewNop())
	return NewService(client, orders, zap.NewNop())
}

func pendingOrder(id int64) domorder.ShopOrder {
	return domorder.ShopOrder{
		ID:              id,
		UserID:          7,
		Status:          domorder.StatusPending,
		Total:           decimal.NewFromInt(30),
		ShippingAddress: `{"firstName":"Ada"}`,
	}
}

func TestService_FetchUserOrders(t *testing.T) {
	backend := newOrderBackend(pendingOrder(1), pendingOrder(2))
	s := newTestService(t, backend)

	orders, err := s.FetchUserOrders(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Len(t, s.History(), 2)
}

func TestService_UpdateStatus(t *testing.T) {
	backend := newOrderBackend(pendingOrder(1))
	s := newTestService(t, backend)

	updated, err := s.UpdateStatus(context.Background(), 1, domorder.StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, domorder.StatusShipped, updated.Status)

	// Exactly one update, carrying everything but the status unchanged
	assert.Equal(t, int32(1), backend.putCalls.Load())
	body := backend.putBody()
	require.NotNil(t, body)
	assert.Equal(t, domorder.StatusShipped, body.Status)
	assert.Equal(t, int64(7), body.UserID)
	assert.True(t, body.Total.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, `{"firstName":"Ada"}`, body.ShippingAddress)
}

func TestService_UpdateStatus_UsesCachedOrder(t *testing.T) {
	backend := newOrderBackend(pendingOrder(1))
	s := newTestService(t, backend)

	_, err := s.FetchOrder(context.Background(), 1)
	require.NoError(t, err)
	fetchesBefore := backend.getCalls.Load()

	_, err = s.UpdateStatus(context.Background(), 1, domorder.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, fetchesBefore, backend.getCalls.Load(), "cached entity reused, no re-fetch")
}

func TestService_UpdateStatus_InvalidStatus(t *testing.T) {
	backend := newOrderBackend(pendingOrder(1))
	s := newTestService(t, backend)

	_, err := s.UpdateStatus(context.Background(), 1, domorder.Status("SHIPPING"))
	require.Error(t, err)
	assert.Equal(t, int32(0), backend.putCalls.Load(), "nothing sent for an unknown status")
	assert.Equal(t, int32(0), backend.getCalls.Load())
}

func TestService_Cancel(t *testing.T) {
	backend := newOrderBackend(pendingOrder(1))
	s := newTestService(t, backend)

	canceled, err := s.Cancel(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domorder.StatusCanceled, canceled.Status)
}

func TestService_FetchOrder_NotFound(t *testing.T) {
	s := newTestService(t, newOrderBackend())

	_, err := s.FetchOrder(context.Background(), 404)
	assert.True(t, rest.IsNotFound(err))
}
