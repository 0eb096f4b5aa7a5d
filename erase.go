package queue

// Remove destroys the element n.
// When n is nil or not an element of q, the back element is destroyed instead.
// If n is the cursor, the cursor moves to the next element.
func (q Queue[V]) Remove(n *Node[V]) {
	s := q.state()

	if s.list.Front() == nil {
		return
	}

	if !s.list.Contains(n) {
		n = s.list.Back()
	}

	s.destroy(n)
}

// EraseAt destroys the element at index. A negative index counts from the back.
// Out of range indices are ignored.
func (q Queue[V]) EraseAt(index int) {
	size := q.Size()

	if r, ok := SliceRange(index, size, size); ok {
		q.Remove(q.Get(r.Low))
	}
}

// EraseRange destroys the elements in the half-open window [begin, end).
// See SliceRange for index normalization.
func (q Queue[V]) EraseRange(begin, end int) {
	r, ok := SliceRange(begin, end, q.Size())
	if !ok {
		return
	}

	for range r.Count {
		q.Remove(q.Get(r.Low))
	}
}

// Shift removes the front element and returns its value.
func (q Queue[V]) Shift() (value V, ok bool) {
	return q.take(q.First())
}

// Pop removes the back element and returns its value.
func (q Queue[V]) Pop() (value V, ok bool) {
	return q.take(q.Last())
}

// Splice removes up to deleteCount elements starting at start and inserts values
// in their place. It returns the removed values.
// See SpliceRange for index normalization.
func (q Queue[V]) Splice(start, deleteCount int, values ...V) []V {
	size := q.Size()

	var removed []V
	if r, ok := SpliceRange(start, deleteCount, size); ok {
		removed = make([]V, 0, r.Count)
		for range r.Count {
			v, _ := q.take(q.Get(r.Low))
			removed = append(removed, v)
		}
	}

	if start < 0 {
		start = max(size+start, 0)
	}

	q.Insert(start, values...)

	return removed
}

func (q Queue[V]) take(n *Node[V]) (value V, ok bool) {
	if n == nil {
		return value, false
	}

	value = n.Value
	q.state().destroy(n)

	return value, true
}
