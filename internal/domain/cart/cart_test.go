package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_LineTotal(t *testing.T) {
	item := Item{Price: decimal.NewFromInt(10), Quantity: 3}
	assert.True(t, item.LineTotal().Equal(decimal.NewFromInt(30)))
}

func TestCart_ItemCount(t *testing.T) {
	c := Cart{Items: []Item{{Quantity: 2}, {Quantity: 5}}}
	assert.Equal(t, 7, c.ItemCount())

	assert.Equal(t, 0, Cart{}.ItemCount())
}

func TestCart_FindItem(t *testing.T) {
	c := Cart{Items: []Item{{ID: 1}, {ID: 2}}}

	item, ok := c.FindItem(2)
	require.True(t, ok)
	assert.Equal(t, int64(2), item.ID)

	_, ok = c.FindItem(99)
	assert.False(t, ok)
}

func TestIntersectSelected(t *testing.T) {
	items := []Item{{ID: 1}, {ID: 2}, {ID: 3}}

	tests := []struct {
		name     string
		selected []int64
		wantIDs  []int64
	}{
		{
			name:     "subset kept in cart order",
			selected: []int64{3, 1},
			wantIDs:  []int64{1, 3},
		},
		{
			name:     "stale ids dropped",
			selected: []int64{2, 99},
			wantIDs:  []int64{2},
		},
		{
			name:     "nothing matches",
			selected: []int64{98, 99},
			wantIDs:  []int64{},
		},
		{
			name:     "empty selection",
			selected: nil,
			wantIDs:  []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IntersectSelected(items, tt.selected)
			ids := make([]int64, 0, len(result))
			for _, item := range result {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestValidateQuantity(t *testing.T) {
	assert.NoError(t, ValidateQuantity(1))
	assert.NoError(t, ValidateQuantity(10))
	assert.Error(t, ValidateQuantity(0))
	assert.Error(t, ValidateQuantity(-3))
}

func TestNewChangedEvent(t *testing.T) {
	evt := NewChangedEvent(42)
	assert.Equal(t, EventTypeCartChanged, evt.EventType())
	assert.Equal(t, int64(42), evt.UserID)
	assert.NotZero(t, evt.EventID())
	assert.False(t, evt.OccurredAt().IsZero())
}
