package queue

// Option is a queue configuration option.
type Option[V any] interface {
	apply(*queueOptions[V])
}

type queueOptions[V any] struct {
	finalizer func(V)
}

func newDefaultQueueOptions[V any]() queueOptions[V] {
	return queueOptions[V]{
		finalizer: nil,
	}
}

// WithFinalizer option configures a function that is called exactly once
// with the value of every element the queue destroys, whether by an erase
// operation or by the release of the last handle.
//
// The zero value configures no finalizer.
func WithFinalizer[V any](f func(V)) Option[V] {
	return funcOption[V](func(opts *queueOptions[V]) {
		opts.finalizer = f
	})
}

type funcOption[V any] func(*queueOptions[V])

func (o funcOption[V]) apply(opts *queueOptions[V]) {
	o(opts)
}
