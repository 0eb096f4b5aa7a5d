/*
Package queue implements a reference counted doubly linked sequence container
with cursor traversal, slice and splice style range operations and functional queries.

A Queue is a handle. Handles obtained through Clone share one underlying list:
a mutation through any of them is visible to all. The list and its elements are
destroyed when the last handle is released.

A Queue is not safe for concurrent mutation. Clone and Release may be called from
different goroutines.
*/
package queue

import (
	"sync/atomic"

	"github.com/mgnsk/queue/list"
)

// Node is an element of a queue.
type Node[V any] = list.Element[V]

type state[V any] struct {
	list   list.List[V]
	cursor *Node[V]
	refs   atomic.Int64
	opts   queueOptions[V]
}

// Queue is a handle to a shared doubly linked list.
type Queue[V any] struct {
	s *state[V]
}

// New creates an empty queue.
func New[V any](opts ...Option[V]) Queue[V] {
	s := &state[V]{
		opts: newDefaultQueueOptions[V](),
	}

	for _, opt := range opts {
		opt.apply(&s.opts)
	}

	s.refs.Store(1)

	return Queue[V]{s: s}
}

// From creates a queue holding the values in the same order.
func From[V any](values []V, opts ...Option[V]) Queue[V] {
	q := New(opts...)

	for i := len(values) - 1; i >= 0; i-- {
		q.Unshift(values[i])
	}

	return q
}

// Of creates a queue holding values.
func Of[V any](values ...V) Queue[V] {
	return From(values)
}

// derive creates an empty queue with the options of q.
func (q Queue[V]) derive() Queue[V] {
	s := &state[V]{
		opts: q.state().opts,
	}
	s.refs.Store(1)

	return Queue[V]{s: s}
}

func (q Queue[V]) state() *state[V] {
	if q.s == nil {
		panic("queue: use of released or uninitialized queue")
	}
	return q.s
}

// Clone returns a new handle sharing the list of q.
func (q Queue[V]) Clone() Queue[V] {
	s := q.state()
	s.refs.Add(1)

	return Queue[V]{s: s}
}

// Release drops the handle. When q is the last handle to its list,
// every remaining element is destroyed.
// q must not be used after Release.
func (q *Queue[V]) Release() {
	s := q.state()
	q.s = nil

	switch refs := s.refs.Add(-1); {
	case refs == 0:
		s.clear()
	case refs < 0:
		panic("queue: released too many times")
	}
}

// Refs returns the number of live handles sharing the list of q.
func (q Queue[V]) Refs() int {
	return int(q.state().refs.Load())
}

// Size returns the number of elements in the queue.
func (q Queue[V]) Size() int {
	s := q.state()
	if s.list.Front() == nil {
		return 0
	}
	return s.list.Len()
}

// Empty reports whether the queue has no elements.
func (q Queue[V]) Empty() bool {
	return q.state().list.Front() == nil
}

// Clear removes all elements from the front.
func (q Queue[V]) Clear() {
	q.state().clear()
}

// EraseAll is a synonym for Clear.
func (q Queue[V]) EraseAll() {
	q.Clear()
}

// Free is a synonym for Clear.
func (q Queue[V]) Free() {
	q.Clear()
}

func (s *state[V]) clear() {
	for s.list.Front() != nil {
		s.destroy(s.list.Front())
	}
}

// destroy unlinks a member node, advancing the cursor past it first.
func (s *state[V]) destroy(n *Node[V]) {
	if n == s.cursor {
		s.cursor = n.Next()
	}

	s.list.Remove(n)

	value := n.Value
	var zero V
	n.Value = zero

	if s.opts.finalizer != nil {
		s.opts.finalizer(value)
	}
}
