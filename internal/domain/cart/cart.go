package cart

import (
	"github.com/shopspring/decimal"

	"github.com/shopfront/client/internal/domain/shared"
)

// Item represents one line of a cart. Price is the unit price captured by the
// backend at the time the item was added; the client never re-derives it from
// the live variant price.
type Item struct {
	ID            int64           `json:"id"`
	CartID        int64           `json:"cartId,omitempty"`
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

// Cart represents a user's cart with its items, as returned by the
// with-items projection. The backend creates it lazily on first add; the
// client never deletes it.
type Cart struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Items  []Item `json:"cartItems"`
}

// ItemCount returns the total quantity across all lines
func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// FindItem returns the item with the given id, if present
func (c Cart) FindItem(id int64) (Item, bool) {
	for _, item := range c.Items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// IntersectSelected returns the cart items whose ids appear in the selected
// set, in cart order. Ids that match no fetched item are silently dropped;
// they are stale hand-offs, not errors.
func IntersectSelected(items []Item, selectedIDs []int64) []Item {
	selected := make(map[int64]struct{}, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = struct{}{}
	}

	result := make([]Item, 0, len(selectedIDs))
	for _, item := range items {
		if _, ok := selected[item.ID]; ok {
			result = append(result, item)
		}
	}
	return result
}

// ValidateQuantity checks a requested item quantity
func ValidateQuantity(quantity int) error {
	if quantity < 1 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	return nil
}
