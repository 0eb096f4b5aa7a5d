package queue

import "iter"

// NotFound is returned by IndexOf when no element matches.
const NotFound = -1

// IndexOf returns the index of the first element satisfying f or NotFound.
func (q Queue[V]) IndexOf(f func(V) bool) int {
	index, i := NotFound, 0
	q.do(func(n *Node[V]) bool {
		if f(n.Value) {
			index = i
			return false
		}
		i++
		return true
	})
	return index
}

// Count returns the number of elements satisfying f.
func (q Queue[V]) Count(f func(V) bool) int {
	count := 0
	q.do(func(n *Node[V]) bool {
		if f(n.Value) {
			count++
		}
		return true
	})
	return count
}

// Some reports whether any element satisfies f.
func (q Queue[V]) Some(f func(V) bool) bool {
	found := false
	q.do(func(n *Node[V]) bool {
		found = f(n.Value)
		return !found
	})
	return found
}

// None reports whether no element satisfies f.
// It returns false for an empty queue.
func (q Queue[V]) None(f func(V) bool) bool {
	if q.Empty() {
		return false
	}
	return !q.Some(f)
}

// Every reports whether all elements satisfy f.
// It returns false for an empty queue.
func (q Queue[V]) Every(f func(V) bool) bool {
	if q.Empty() {
		return false
	}
	all := true
	q.do(func(n *Node[V]) bool {
		all = f(n.Value)
		return all
	})
	return all
}

// Map calls f with a pointer to each value, in forward order.
// f may modify the value but must not change q.
func (q Queue[V]) Map(f func(*V)) {
	q.do(func(n *Node[V]) bool {
		f(&n.Value)
		return true
	})
}

// Data returns a copy of the values in forward order or nil if q is empty.
func (q Queue[V]) Data() []V {
	if q.Empty() {
		return nil
	}

	values := make([]V, 0, q.Size())
	q.do(func(n *Node[V]) bool {
		values = append(values, n.Value)
		return true
	})

	return values
}

// IsItem reports whether n is an element of q.
func (q Queue[V]) IsItem(n *Node[V]) bool {
	return q.state().list.Contains(n)
}

// All returns an iterator over indices and values in forward order.
// The loop body must not change q.
func (q Queue[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		i := 0
		q.do(func(n *Node[V]) bool {
			ok := yield(i, n.Value)
			i++
			return ok
		})
	}
}

// Slice returns a new queue holding the values of the half-open window [begin, end).
// See SliceRange for index normalization.
func (q Queue[V]) Slice(begin, end int) Queue[V] {
	out := q.derive()

	r, ok := SliceRange(begin, end, q.Size())
	if !ok {
		return out
	}

	n := q.Get(r.Low)
	for range r.Count {
		out.Push(n.Value)
		n = n.Next()
	}

	return out
}

// do calls f on each element in forward order until f returns false.
func (q Queue[V]) do(f func(n *Node[V]) bool) {
	q.state().list.Do(f)
}
