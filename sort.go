package queue

import "github.com/bradenaw/juniper/xsort"

// Sort returns a new queue holding the values of q ordered by less. q is unchanged.
//
// Each value is inserted before the first element it is less than, so the sort
// is stable. Sort runs in quadratic time.
func (q Queue[V]) Sort(less xsort.Less[V]) Queue[V] {
	out := q.derive()

	for n := q.First(); n != nil; n = n.Next() {
		mark := out.First()
		for mark != nil && !less(n.Value, mark.Value) {
			mark = mark.Next()
		}

		out.InsertBefore(mark, n.Value)
	}

	return out
}
