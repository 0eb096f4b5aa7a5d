package list

// List is a nil terminated doubly linked list.
//
// The zero value is a ready to use empty list.
type List[V any] struct {
	front *Element[V]
	back  *Element[V]
	len   int
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// Front returns the first element of the list or nil.
func (l *List[V]) Front() *Element[V] {
	return l.front
}

// Back returns the last element of the list or nil.
func (l *List[V]) Back() *Element[V] {
	return l.back
}

// Contains reports whether e is currently linked into list l.
func (l *List[V]) Contains(e *Element[V]) bool {
	return e != nil && e.list == l
}

// PushBack inserts a value at the back of list l and returns the new element.
func (l *List[V]) PushBack(value V) *Element[V] {
	e := NewElement(value)
	l.PushBackElem(e)
	return e
}

// PushBackElem inserts a detached element at the back of list l.
func (l *List[V]) PushBackElem(e *Element[V]) {
	l.mustBeDetached(e)
	e.list = l
	if l.back != nil {
		l.back.link(e)
	} else {
		l.front = e
	}
	l.back = e
	l.len++
}

// PushFront inserts a value at the front of list l and returns the new element.
func (l *List[V]) PushFront(value V) *Element[V] {
	e := NewElement(value)
	l.PushFrontElem(e)
	return e
}

// PushFrontElem inserts a detached element at the front of list l.
func (l *List[V]) PushFrontElem(e *Element[V]) {
	if l.front == nil {
		l.PushBackElem(e)
		return
	}
	l.InsertBeforeElem(e, l.front)
}

// InsertBefore inserts a value immediately before mark and returns the new element.
// mark must be an element of l.
func (l *List[V]) InsertBefore(value V, mark *Element[V]) *Element[V] {
	e := NewElement(value)
	l.InsertBeforeElem(e, mark)
	return e
}

// InsertBeforeElem inserts a detached element immediately before mark.
// If mark == l.Front(), e becomes the new front element.
func (l *List[V]) InsertBeforeElem(e, mark *Element[V]) {
	if !l.Contains(mark) {
		panic("list: invalid element")
	}
	l.mustBeDetached(e)

	e.list = l
	if p := mark.prev; p != nil {
		p.link(e)
	} else {
		e.next = mark
		mark.prev = e
		l.front = e
	}
	l.len++
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(e *Element[V]) bool) {
	for e := l.front; e != nil; e = e.next {
		if !f(e) {
			return
		}
	}
}

// Remove an element from the list.
func (l *List[V]) Remove(e *Element[V]) {
	if !l.Contains(e) {
		panic("list: invalid element")
	}

	if e == l.front {
		l.front = e.next
	}
	if e == l.back {
		l.back = e.prev
	}
	e.unlink()
	l.len--
}

func (l *List[V]) mustBeDetached(e *Element[V]) {
	if e.list != nil {
		panic("list: element already in a list")
	}
}
