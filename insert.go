package queue

import "github.com/bradenaw/juniper/xmath"

// InsertBefore inserts value immediately before mark and returns the new element.
// When q is empty, the value becomes its only element.
// When mark is nil or not an element of q, the value is appended.
func (q Queue[V]) InsertBefore(mark *Node[V], value V) *Node[V] {
	s := q.state()

	if s.list.Front() == nil || !s.list.Contains(mark) {
		return s.list.PushBack(value)
	}

	return s.list.InsertBefore(value, mark)
}

// Unshift inserts value at the front of q.
func (q Queue[V]) Unshift(value V) *Node[V] {
	return q.state().list.PushFront(value)
}

// Push inserts value at the back of q.
func (q Queue[V]) Push(value V) *Node[V] {
	return q.state().list.PushBack(value)
}

// Insert inserts values in order so that the first of them ends up at position index.
// The index is clamped to [0, Size()]; Size() appends.
func (q Queue[V]) Insert(index int, values ...V) {
	size := q.Size()
	index = xmath.Clamp(index, 0, size)

	var mark *Node[V]
	if index < size {
		mark = q.Get(index)
	}

	for _, v := range values {
		q.InsertBefore(mark, v)
	}
}
