package cart

import "github.com/shopfront/client/internal/domain/shared"

// EventTypeCartChanged is broadcast whenever the cart's contents change
// (add, quantity update, remove, or a successful checkout consuming items).
// Live views holding cart-derived state re-fetch when they see it.
const EventTypeCartChanged = "cart.changed"

// ChangedEvent signals that the cart contents of a user changed
type ChangedEvent struct {
	shared.BaseDomainEvent
	UserID int64 `json:"userId"`
}

// NewChangedEvent creates a cart changed event for the given user
func NewChangedEvent(userID int64) *ChangedEvent {
	return &ChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCartChanged),
		UserID:          userID,
	}
}
