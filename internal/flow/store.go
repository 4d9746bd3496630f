// Package flow provides the keyed latest-value store and the synchronous
// listener dispatch every pipeline stage is built on.
//
// A store and everything reachable from its listeners belong to a single
// goroutine: one ingestion drives the whole downstream chain depth-first on
// the caller's stack before returning, so there is no internal locking and
// no queueing. Listener chains routinely ingest into other stores; that
// re-entrancy is the propagation mechanism, not an error.
package flow

import (
	stderrors "errors"

	"github.com/yanun0323/errors"
)

var ErrNotFound = stderrors.New("key not found")

// Listener receives store events. Implementations must not assume
// exclusive ownership of the value: several listeners see the same one.
type Listener[V any] interface {
	ProcessAdd(v V) error
	ProcessRemove(v V) error
	ProcessUpdate(v V) error
}

// ListenerFuncs adapts plain functions to the Listener interface. Nil
// callbacks are no-ops.
type ListenerFuncs[V any] struct {
	OnAdd    func(V) error
	OnRemove func(V) error
	OnUpdate func(V) error
}

func (l ListenerFuncs[V]) ProcessAdd(v V) error {
	if l.OnAdd == nil {
		return nil
	}
	return l.OnAdd(v)
}

func (l ListenerFuncs[V]) ProcessRemove(v V) error {
	if l.OnRemove == nil {
		return nil
	}
	return l.OnRemove(v)
}

func (l ListenerFuncs[V]) ProcessUpdate(v V) error {
	if l.OnUpdate == nil {
		return nil
	}
	return l.OnUpdate(v)
}

// Store keeps the latest value per key and dispatches to listeners in
// registration order.
type Store[V any] struct {
	key       func(V) string
	values    map[string]V
	listeners []Listener[V]
}

// NewStore creates a store keyed by the value's natural key.
func NewStore[V any](key func(V) string) *Store[V] {
	return &Store[V]{
		key:    key,
		values: make(map[string]V),
	}
}

// Get returns the latest value for a key, or ErrNotFound.
func (s *Store[V]) Get(key string) (V, error) {
	v, ok := s.values[key]
	if !ok {
		return v, errors.Wrap(ErrNotFound, key)
	}
	return v, nil
}

// Len returns the number of stored keys.
func (s *Store[V]) Len() int {
	return len(s.values)
}

// Put upserts a value by its natural key without notifying listeners. The
// old entry is gone before any observer can see the store, so observers
// never read a partially updated table.
func (s *Store[V]) Put(v V) {
	s.values[s.key(v)] = v
}

// Remove deletes a key. Missing keys are fine; membership changes driven
// by the owning service carry their own notification discipline.
func (s *Store[V]) Remove(key string) {
	delete(s.values, key)
}

// AddListener appends a listener. There is no removal: observer sets are
// append-only for the life of the process.
func (s *Store[V]) AddListener(l Listener[V]) {
	s.listeners = append(s.listeners, l)
}

// Notify runs every listener's ProcessAdd in registration order. Each
// listener's full transitive effect completes before the next one runs.
// The first error aborts the rest of the chain.
func (s *Store[V]) Notify(v V) error {
	for _, l := range s.listeners {
		if err := l.ProcessAdd(v); err != nil {
			return err
		}
	}
	return nil
}

// Ingest upserts by natural key and then notifies listeners with the new
// value.
func (s *Store[V]) Ingest(v V) error {
	s.Put(v)
	return s.Notify(v)
}
