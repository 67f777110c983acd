// Package session provides the client's only cross-view transfer mechanism:
// a transient in-process key-value store with read-once semantics.
package session

import "sync"

// SelectedItemsKey holds the cart item ids a user marked for purchase before
// entering checkout. Written by the cart view, consumed exactly once by the
// checkout workflow.
const SelectedItemsKey = "checkout.selectedItems"

// TransientStore is a read-once hand-off store. Put overwrites, Take consumes:
// a second Take of the same key yields nothing. It is deliberately not a
// queue; re-entering a flow without re-selecting finds the key empty.
type TransientStore struct {
	mu     sync.Mutex
	values map[string]any
}

// NewTransientStore creates an empty transient store
func NewTransientStore() *TransientStore {
	return &TransientStore{values: make(map[string]any)}
}

// Put stores a value under key, replacing any unconsumed previous value
func (s *TransientStore) Put(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Take removes and returns the value stored under key. The second return
// reports whether a value was present.
func (s *TransientStore) Take(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	if ok {
		delete(s.values, key)
	}
	return value, ok
}

// Clear drops the value under key without returning it
func (s *TransientStore) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// TakeIDs is Take for the id-set values this client actually hands off
func (s *TransientStore) TakeIDs(key string) ([]int64, bool) {
	value, ok := s.Take(key)
	if !ok {
		return nil, false
	}
	ids, ok := value.([]int64)
	return ids, ok
}
