// Package resource implements the client-side cache and CRUD-action bundle
// for one backend resource type. One generic Slice replaces the per-resource
// copies the storefront would otherwise need: resource shape, endpoint and
// pagination defaults are configuration, not code.
package resource

import (
	"context"
	"net/url"
	"slices"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/shopfront/client/internal/infrastructure/rest"
)

// Query holds the pagination parameters of a collection fetch
type Query struct {
	Page int
	Size int
	Sort string
}

// Values encodes the query as the backend's pagination convention
func (q Query) Values() url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(q.Page))
	if q.Size > 0 {
		values.Set("size", strconv.Itoa(q.Size))
	}
	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}
	return values
}

// State is the observable snapshot of a slice. Entities and Entity hold the
// last successfully fetched values; a failed request never clears them.
type State[T any] struct {
	Loading       bool
	Updating      bool
	ErrorMessage  string
	Entities      []T
	Entity        T
	TotalItems    int
	UpdateSuccess bool
}

// Slice owns the authoritative client-side cache of one resource type and
// issues its CRUD calls. Consistency is eventual via full re-fetch: every
// successful mutation triggers an unconditional List with the page-0
// defaults, discarding whatever pagination the consumer had navigated to.
//
// Concurrent mutations are not serialized. Each call flips the flags when it
// settles, so the last response to arrive owns the visible state, the same
// race the contract accepts everywhere else.
type Slice[T any] struct {
	client   *rest.Client
	endpoint string
	defaults Query
	logger   *zap.Logger

	mu    sync.RWMutex
	state State[T]
}

// NewSlice creates a slice bound to a collection endpoint such as
// "/api/products". defaults is the query used for post-mutation refreshes.
func NewSlice[T any](client *rest.Client, endpoint string, defaults Query, logger *zap.Logger) *Slice[T] {
	return &Slice[T]{
		client:   client,
		endpoint: endpoint,
		defaults: defaults,
		logger:   logger.With(zap.String("resource", endpoint)),
	}
}

// State returns a snapshot of the slice state
func (s *Slice[T]) State() State[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := s.state
	snapshot.Entities = slices.Clone(s.state.Entities)
	return snapshot
}

// List fetches a page of the collection and replaces the cached entities.
// TotalItems comes from the response header, falling back to the payload
// length when the header is absent or non-numeric.
func (s *Slice[T]) List(ctx context.Context, q Query) ([]T, error) {
	s.mu.Lock()
	s.state.Loading = true
	s.state.ErrorMessage = ""
	s.mu.Unlock()

	var entities []T
	total, err := s.client.GetList(ctx, s.endpoint, q.Values(), &entities)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	if err != nil {
		s.state.ErrorMessage = err.Error()
		return nil, err
	}
	if total == rest.TotalCountUnknown {
		total = len(entities)
	}
	s.state.Entities = entities
	s.state.TotalItems = total
	return entities, nil
}

// Get fetches a single entity by id and replaces the cached entity
func (s *Slice[T]) Get(ctx context.Context, id int64) (T, error) {
	s.mu.Lock()
	s.state.Loading = true
	s.state.ErrorMessage = ""
	s.mu.Unlock()

	var entity T
	err := s.client.Get(ctx, s.itemPath(id), nil, &entity)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	if err != nil {
		s.state.ErrorMessage = err.Error()
		var zero T
		return zero, err
	}
	s.state.Entity = entity
	return entity, nil
}

// Create POSTs a new entity. Null-valued fields are stripped by the transport.
func (s *Slice[T]) Create(ctx context.Context, entity T) (T, error) {
	return s.mutate(ctx, func(ctx context.Context) (T, error) {
		var created T
		err := s.client.Post(ctx, s.endpoint, entity, &created)
		return created, err
	})
}

// Update PUTs a full replacement of the entity with the given id
func (s *Slice[T]) Update(ctx context.Context, id int64, entity T) (T, error) {
	return s.mutate(ctx, func(ctx context.Context) (T, error) {
		var updated T
		err := s.client.Put(ctx, s.itemPath(id), entity, &updated)
		return updated, err
	})
}

// PartialUpdate PATCHes the entity with the given id. body may be the full
// entity type or any partial shape; only non-null fields are sent.
func (s *Slice[T]) PartialUpdate(ctx context.Context, id int64, body any) (T, error) {
	return s.mutate(ctx, func(ctx context.Context) (T, error) {
		var updated T
		err := s.client.Patch(ctx, s.itemPath(id), body, &updated)
		return updated, err
	})
}

// Delete removes the entity with the given id. On success the cached entity
// is zeroed and the collection re-fetched.
func (s *Slice[T]) Delete(ctx context.Context, id int64) error {
	s.beginMutation()

	err := s.client.Delete(ctx, s.itemPath(id))

	s.mu.Lock()
	s.state.Updating = false
	if err != nil {
		s.state.ErrorMessage = err.Error()
		s.mu.Unlock()
		return err
	}
	var zero T
	s.state.Entity = zero
	s.state.UpdateSuccess = true
	s.mu.Unlock()

	s.refresh(ctx)
	return nil
}

// Reset restores the initial state, e.g. when a consumer opens a blank
// create form
func (s *Slice[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State[T]{}
}

// mutate runs one mutating round trip under the shared flag contract: set
// Updating and clear ErrorMessage/UpdateSuccess up front, flip them on settle,
// then refresh the collection unconditionally on success.
func (s *Slice[T]) mutate(ctx context.Context, call func(ctx context.Context) (T, error)) (T, error) {
	s.beginMutation()

	entity, err := call(ctx)

	s.mu.Lock()
	s.state.Updating = false
	if err != nil {
		s.state.ErrorMessage = err.Error()
		s.mu.Unlock()
		var zero T
		return zero, err
	}
	s.state.Entity = entity
	s.state.UpdateSuccess = true
	s.mu.Unlock()

	s.refresh(ctx)
	return entity, nil
}

func (s *Slice[T]) beginMutation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Updating = true
	s.state.ErrorMessage = ""
	s.state.UpdateSuccess = false
}

// refresh re-fetches page 0 with the configured defaults. A refresh failure
// is recorded in the slice state like any other list failure but does not
// undo the mutation that already succeeded.
func (s *Slice[T]) refresh(ctx context.Context) {
	if _, err := s.List(ctx, s.defaults); err != nil {
		s.logger.Warn("post-mutation refresh failed", zap.Error(err))
	}
}

func (s *Slice[T]) itemPath(id int64) string {
	return s.endpoint + "/" + strconv.FormatInt(id, 10)
}
