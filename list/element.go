package list

// Element is a list element.
type Element[V any] struct {
	next, prev *Element[V]
	list       *List[V]
	Value      V
}

// NewElement creates a detached list element.
func NewElement[V any](v V) *Element[V] {
	return &Element[V]{
		Value: v,
	}
}

// Next returns the next element or nil if e is the last element in its list.
func (e *Element[V]) Next() *Element[V] {
	return e.next
}

// Prev returns the previous element or nil if e is the first element in its list.
func (e *Element[V]) Prev() *Element[V] {
	return e.prev
}

// link inserts s after e.
func (e *Element[V]) link(s *Element[V]) {
	n := e.next
	e.next = s
	s.prev = e
	s.next = n
	if n != nil {
		n.prev = s
	}
}

// unlink detaches e from its neighbors.
func (e *Element[V]) unlink() {
	if e.prev != nil {
		e.prev.next = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	}
	e.next = nil
	e.prev = nil
	e.list = nil
}
