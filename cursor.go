package queue

// First returns the front element or nil.
func (q Queue[V]) First() *Node[V] {
	return q.state().list.Front()
}

// Last returns the back element or nil.
func (q Queue[V]) Last() *Node[V] {
	return q.state().list.Back()
}

// Get returns the element at index by walking from the front.
// An index past the end yields the back element. It returns nil if q is empty.
func (q Queue[V]) Get(index int) *Node[V] {
	n := q.First()
	if n == nil {
		return nil
	}

	for ; index > 0 && n.Next() != nil; index-- {
		n = n.Next()
	}

	return n
}

// Cursor returns the cursor element. An unset cursor yields the front element.
func (q Queue[V]) Cursor() *Node[V] {
	s := q.state()
	if s.cursor == nil {
		return s.list.Front()
	}
	return s.cursor
}

// SetCursor moves the cursor to n. It does nothing if n is not an element of q.
func (q Queue[V]) SetCursor(n *Node[V]) {
	s := q.state()
	if s.list.Contains(n) {
		s.cursor = n
	}
}

// Next advances the cursor and returns it. An unset cursor advances to the front element.
// Advancing past the back element unsets the cursor.
func (q Queue[V]) Next() *Node[V] {
	s := q.state()
	if s.cursor == nil {
		s.cursor = s.list.Front()
	} else {
		s.cursor = s.cursor.Next()
	}
	return s.cursor
}

// Prev moves the cursor back and returns it. An unset cursor moves to the back element.
// Moving before the front element unsets the cursor.
func (q Queue[V]) Prev() *Node[V] {
	s := q.state()
	if s.cursor == nil {
		s.cursor = s.list.Back()
	} else {
		s.cursor = s.cursor.Prev()
	}
	return s.cursor
}
