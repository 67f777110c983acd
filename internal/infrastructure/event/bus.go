package event

import (
	"context"
	"reflect"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/shopfront/client/internal/domain/shared"
)

// InMemoryEventBus implements shared.EventBus with in-process pub/sub. It is
// the client-side replacement for the browser's global custom events: a
// checkout publishes a cart-changed event and any live view that subscribed
// re-fetches its own state.
type InMemoryEventBus struct {
	mu       sync.RWMutex
	handlers map[string][]shared.EventHandler
	logger   *zap.Logger
}

// NewInMemoryEventBus creates a new in-memory event bus
func NewInMemoryEventBus(logger *zap.Logger) *InMemoryEventBus {
	return &InMemoryEventBus{
		handlers: make(map[string][]shared.EventHandler),
		logger:   logger,
	}
}

// Publish delivers events to all registered handlers synchronously. A failing
// handler is logged and does not stop delivery to the others.
func (b *InMemoryEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	for _, evt := range events {
		b.mu.RLock()
		handlers := slices.Clone(b.handlers[evt.EventType()])
		b.mu.RUnlock()

		for _, handler := range handlers {
			if err := b.dispatch(ctx, handler, evt); err != nil {
				b.logger.Error("handler failed to process event",
					zap.String("event_type", evt.EventType()),
					zap.String("event_id", evt.EventID().String()),
					zap.Error(err),
				)
			}
		}
	}
	return nil
}

// Subscribe registers a handler for specific event types
func (b *InMemoryEventBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, eventType := range eventTypes {
		b.handlers[eventType] = append(b.handlers[eventType], handler)
	}
	b.logger.Debug("handler subscribed", zap.Strings("event_types", eventTypes))
}

// Unsubscribe removes a handler from every event type it was registered for
func (b *InMemoryEventBus) Unsubscribe(handler shared.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for eventType, handlers := range b.handlers {
		b.handlers[eventType] = slices.DeleteFunc(handlers, func(h shared.EventHandler) bool {
			return sameHandler(h, handler)
		})
	}
}

// sameHandler matches a registration by identity. Func-typed handlers such as
// HandlerFunc cannot be compared with ==, so they match by code pointer.
func sameHandler(a, b shared.EventHandler) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Kind() == reflect.Func {
		return va.Pointer() == vb.Pointer()
	}
	if !va.Type().Comparable() {
		return false
	}
	return a == b
}

// dispatch safely delivers an event to a handler, containing panics
func (b *InMemoryEventBus) dispatch(ctx context.Context, handler shared.EventHandler, evt shared.DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("handler panicked",
				zap.String("event_type", evt.EventType()),
				zap.Any("panic", r),
			)
		}
	}()

	return handler.Handle(ctx, evt)
}

// HandlerFunc adapts a function to the shared.EventHandler interface
type HandlerFunc func(ctx context.Context, event shared.DomainEvent) error

// Handle calls the wrapped function
func (f HandlerFunc) Handle(ctx context.Context, event shared.DomainEvent) error {
	return f(ctx, event)
}

// EventTypes returns nil; HandlerFunc subscribers name their types explicitly
func (f HandlerFunc) EventTypes() []string {
	return nil
}

// Ensure InMemoryEventBus implements EventBus
var _ shared.EventBus = (*InMemoryEventBus)(nil)
